package repository

import (
	"github.com/plasmadinah/cms-backend/internal/models"
	"gorm.io/gorm"
)

type ArticleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

func (r *ArticleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *ArticleRepository) FindByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.First(&article, id).Error
	return &article, err
}

func (r *ArticleRepository) FindPage(offset, limit int) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&articles).Error
	return articles, err
}

func (r *ArticleRepository) FindRelated(excludeID uint, limit int) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Where("id <> ?", excludeID).
		Order("created_at DESC").
		Limit(limit).
		Find(&articles).Error
	return articles, err
}

func (r *ArticleRepository) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Article{}).Count(&count).Error
	return count, err
}

func (r *ArticleRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Article{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *ArticleRepository) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

func (r *ArticleRepository) Delete(id uint) error {
	return r.db.Delete(&models.Article{}, id).Error
}

// IncrementViews bumps the view counter by one and returns the new value.
// The increment happens in a single UPDATE so concurrent page loads never
// lose updates.
func (r *ArticleRepository) IncrementViews(id uint) (int64, error) {
	var views int64
	res := r.db.Raw(
		"UPDATE articles SET views = views + 1 WHERE id = ? AND deleted_at IS NULL RETURNING views",
		id,
	).Scan(&views)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return views, nil
}
