package service

import (
	"github.com/plasmadinah/cms-backend/internal/models"
	"github.com/plasmadinah/cms-backend/internal/repository"
	"github.com/plasmadinah/cms-backend/internal/validation"
)

const CommentsPerArticle = 100

type CommentService struct {
	commentRepo repository.CommentRepositoryInterface
	articleRepo repository.ArticleRepositoryInterface
}

func NewCommentService(commentRepo repository.CommentRepositoryInterface, articleRepo repository.ArticleRepositoryInterface) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
	}
}

// SubmitComment validates and persists a comment. Callers must only broadcast
// the returned comment after a nil error: a comment that failed validation or
// persistence never reaches the room.
func (s *CommentService) SubmitComment(articleID uint, name, text string) (*models.Comment, error) {
	name = validation.TrimAndLimit(name, validation.MaxNameLength())
	text = validation.TrimAndLimit(text, validation.MaxCommentLength())
	if name == "" || text == "" {
		return nil, ErrInvalidInput
	}

	exists, err := s.articleRepo.Exists(articleID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}

	comment := &models.Comment{
		ArticleID: articleID,
		Name:      name,
		Text:      text,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) ListComments(articleID uint) ([]models.Comment, error) {
	return s.commentRepo.FindByArticle(articleID, CommentsPerArticle)
}
