package repository

import (
	"github.com/plasmadinah/cms-backend/internal/models"
	"gorm.io/gorm"
)

type HeroRepository struct {
	db *gorm.DB
}

func NewHeroRepository(db *gorm.DB) *HeroRepository {
	return &HeroRepository{db: db}
}

func (r *HeroRepository) FindAllOrdered() ([]models.Hero, error) {
	var heroes []models.Hero
	err := r.db.Order("display_order ASC").Find(&heroes).Error
	return heroes, err
}

func (r *HeroRepository) FindByID(id uint) (*models.Hero, error) {
	var hero models.Hero
	err := r.db.First(&hero, id).Error
	return &hero, err
}

func (r *HeroRepository) Update(hero *models.Hero) error {
	return r.db.Save(hero).Error
}

func (r *HeroRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Hero{}).Count(&count).Error
	return count, err
}

func (r *HeroRepository) CreateBatch(heroes []models.Hero) error {
	return r.db.Create(&heroes).Error
}
