package repository

import (
	"github.com/plasmadinah/cms-backend/internal/models"
)

// ArticleRepositoryInterface defines the contract for article repository operations
type ArticleRepositoryInterface interface {
	Create(article *models.Article) error
	FindByID(id uint) (*models.Article, error)
	FindPage(offset, limit int) ([]models.Article, error)
	FindRelated(excludeID uint, limit int) ([]models.Article, error)
	CountAll() (int64, error)
	Exists(id uint) (bool, error)
	Update(article *models.Article) error
	Delete(id uint) error
	IncrementViews(id uint) (int64, error)
}

// CommentRepositoryInterface defines the contract for comment repository operations
type CommentRepositoryInterface interface {
	Create(comment *models.Comment) error
	FindByArticle(articleID uint, limit int) ([]models.Comment, error)
	CountByArticle(articleID uint) (int64, error)
}

// HeroRepositoryInterface defines the contract for hero banner repository operations
type HeroRepositoryInterface interface {
	FindAllOrdered() ([]models.Hero, error)
	FindByID(id uint) (*models.Hero, error)
	Update(hero *models.Hero) error
	Count() (int64, error)
	CreateBatch(heroes []models.Hero) error
}

// ServiceRepositoryInterface defines the contract for service listing repository operations
type ServiceRepositoryInterface interface {
	FindAll() ([]models.Service, error)
	FindByID(id uint) (*models.Service, error)
	Update(service *models.Service) error
	Count() (int64, error)
	CreateBatch(services []models.Service) error
}

// MessageRepositoryInterface defines the contract for contact message repository operations
type MessageRepositoryInterface interface {
	Create(message *models.Message) error
	FindAll() ([]models.Message, error)
	Delete(id uint) error
}

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	FindByUsername(username string) (*models.User, error)
	FindByID(id uint) (*models.User, error)
}
