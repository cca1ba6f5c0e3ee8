package service

import (
	"errors"

	"github.com/plasmadinah/cms-backend/internal/models"
	"github.com/plasmadinah/cms-backend/internal/repository"
	"github.com/plasmadinah/cms-backend/internal/validation"
	"gorm.io/gorm"
)

const (
	// Home page shows three articles per page, like the original site.
	ArticlesPerPage = 3
	RelatedLimit    = 3
)

type ArticleService struct {
	articleRepo repository.ArticleRepositoryInterface
}

func NewArticleService(articleRepo repository.ArticleRepositoryInterface) *ArticleService {
	return &ArticleService{articleRepo: articleRepo}
}

type ArticlePage struct {
	Articles    []models.Article
	CurrentPage int
	TotalPages  int
}

func (s *ArticleService) ListArticles(page int) (*ArticlePage, error) {
	if page < 1 {
		page = 1
	}

	total, err := s.articleRepo.CountAll()
	if err != nil {
		return nil, err
	}
	totalPages := int((total + ArticlesPerPage - 1) / ArticlesPerPage)

	articles, err := s.articleRepo.FindPage((page-1)*ArticlesPerPage, ArticlesPerPage)
	if err != nil {
		return nil, err
	}

	return &ArticlePage{
		Articles:    articles,
		CurrentPage: page,
		TotalPages:  totalPages,
	}, nil
}

func (s *ArticleService) GetArticle(id uint) (*models.Article, error) {
	article, err := s.articleRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return article, nil
}

func (s *ArticleService) GetRelated(id uint) ([]models.Article, error) {
	return s.articleRepo.FindRelated(id, RelatedLimit)
}

// RecordView bumps the raw hit counter for an article by exactly one and
// returns the new value. Repeated loads by the same viewer count again; that
// is the product behavior, not a bug.
func (s *ArticleService) RecordView(id uint) (int64, error) {
	views, err := s.articleRepo.IncrementViews(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return views, nil
}

type ArticleInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Image   string `json:"image"`
}

func (s *ArticleService) CreateArticle(input ArticleInput) (*models.Article, error) {
	input.Title = validation.TrimAndLimit(input.Title, validation.MaxTitleLength())
	input.Content = validation.TrimAndLimit(input.Content, 0)
	if input.Title == "" || input.Content == "" {
		return nil, ErrInvalidInput
	}
	if input.Image == "" {
		input.Image = "default.jpg"
	}

	article := &models.Article{
		Title:   input.Title,
		Content: input.Content,
		Image:   input.Image,
	}
	if err := s.articleRepo.Create(article); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *ArticleService) UpdateArticle(id uint, input ArticleInput) (*models.Article, error) {
	article, err := s.GetArticle(id)
	if err != nil {
		return nil, err
	}

	input.Title = validation.TrimAndLimit(input.Title, validation.MaxTitleLength())
	input.Content = validation.TrimAndLimit(input.Content, 0)
	if input.Title == "" || input.Content == "" {
		return nil, ErrInvalidInput
	}

	article.Title = input.Title
	article.Content = input.Content
	if input.Image != "" {
		article.Image = input.Image
	}
	if err := s.articleRepo.Update(article); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *ArticleService) DeleteArticle(id uint) error {
	if _, err := s.GetArticle(id); err != nil {
		return err
	}
	return s.articleRepo.Delete(id)
}
