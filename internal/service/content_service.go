package service

import (
	"errors"

	"github.com/plasmadinah/cms-backend/internal/models"
	"github.com/plasmadinah/cms-backend/internal/repository"
	"github.com/plasmadinah/cms-backend/internal/validation"
	"gorm.io/gorm"
)

// ContentService covers the static storefront content: hero banners and
// service listings.
type ContentService struct {
	heroRepo    repository.HeroRepositoryInterface
	serviceRepo repository.ServiceRepositoryInterface
}

func NewContentService(heroRepo repository.HeroRepositoryInterface, serviceRepo repository.ServiceRepositoryInterface) *ContentService {
	return &ContentService{
		heroRepo:    heroRepo,
		serviceRepo: serviceRepo,
	}
}

type HomeContent struct {
	Heroes   []models.Hero    `json:"heroes" msgpack:"heroes"`
	Services []models.Service `json:"services" msgpack:"services"`
}

func (s *ContentService) GetHomeContent() (*HomeContent, error) {
	heroes, err := s.heroRepo.FindAllOrdered()
	if err != nil {
		return nil, err
	}
	services, err := s.serviceRepo.FindAll()
	if err != nil {
		return nil, err
	}
	return &HomeContent{Heroes: heroes, Services: services}, nil
}

type HeroInput struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Image    string `json:"image"`
}

func (s *ContentService) UpdateHero(id uint, input HeroInput) (*models.Hero, error) {
	hero, err := s.heroRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	input.Title = validation.TrimAndLimit(input.Title, validation.MaxTitleLength())
	if input.Title == "" {
		return nil, ErrInvalidInput
	}
	hero.Title = input.Title
	hero.Subtitle = validation.TrimAndLimit(input.Subtitle, validation.MaxTitleLength())
	if input.Image != "" {
		hero.Image = input.Image
	}
	if err := s.heroRepo.Update(hero); err != nil {
		return nil, err
	}
	return hero, nil
}

type ServiceInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

func (s *ContentService) UpdateService(id uint, input ServiceInput) (*models.Service, error) {
	svc, err := s.serviceRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	input.Title = validation.TrimAndLimit(input.Title, validation.MaxTitleLength())
	input.Description = validation.TrimAndLimit(input.Description, 0)
	if input.Title == "" || input.Description == "" {
		return nil, ErrInvalidInput
	}
	svc.Title = input.Title
	svc.Description = input.Description
	if input.Image != "" {
		svc.Image = input.Image
	}
	if err := s.serviceRepo.Update(svc); err != nil {
		return nil, err
	}
	return svc, nil
}
