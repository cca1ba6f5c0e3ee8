package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/plasmadinah/cms-backend/internal/cache"
	"github.com/plasmadinah/cms-backend/internal/httpx"
	"github.com/plasmadinah/cms-backend/internal/service"
	"github.com/plasmadinah/cms-backend/internal/storage"
)

type ContentHandler struct {
	contentService *service.ContentService
	contentCache   *cache.ContentCache
	s3             *storage.S3Storage
}

func NewContentHandler(contentService *service.ContentService, contentCache *cache.ContentCache, s3 *storage.S3Storage) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
		contentCache:   contentCache,
		s3:             s3,
	}
}

// GetHome returns the hero banners and service listings for the landing page.
func (h *ContentHandler) GetHome(c *fiber.Ctx) error {
	if cached, ok := h.contentCache.GetHome(); ok {
		return c.JSON(cached)
	}

	content, err := h.contentService.GetHomeContent()
	if err != nil {
		return httpx.Internal(c, "fetch_home_failed")
	}

	if err := h.contentCache.SetHome(content); err != nil {
		log.Printf("Error caching home content: %v", err)
	}

	return c.JSON(content)
}

func (h *ContentHandler) UpdateHero(c *fiber.Ctx) error {
	id, err := httpx.ParamUint(c, "id")
	if err != nil {
		return httpx.BadRequest(c, "invalid_hero_id", "Invalid hero id")
	}

	input := service.HeroInput{
		Title:    c.FormValue("title"),
		Subtitle: c.FormValue("subtitle"),
	}

	key, err := saveUploadedImage(c, h.s3, "heroes")
	if err != nil {
		return err
	}
	input.Image = key

	hero, err := h.contentService.UpdateHero(id, input)
	if errors.Is(err, service.ErrNotFound) {
		return httpx.NotFound(c, "hero_not_found", "Hero not found")
	}
	if errors.Is(err, service.ErrInvalidInput) {
		return httpx.BadRequest(c, "invalid_input", "Title is required")
	}
	if err != nil {
		return httpx.Internal(c, "update_hero_failed")
	}

	_ = h.contentCache.InvalidateHome()
	return c.JSON(hero)
}

func (h *ContentHandler) UpdateService(c *fiber.Ctx) error {
	id, err := httpx.ParamUint(c, "id")
	if err != nil {
		return httpx.BadRequest(c, "invalid_service_id", "Invalid service id")
	}

	input := service.ServiceInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
	}

	key, err := saveUploadedImage(c, h.s3, "services")
	if err != nil {
		return err
	}
	input.Image = key

	svc, err := h.contentService.UpdateService(id, input)
	if errors.Is(err, service.ErrNotFound) {
		return httpx.NotFound(c, "service_not_found", "Service not found")
	}
	if errors.Is(err, service.ErrInvalidInput) {
		return httpx.BadRequest(c, "invalid_input", "Title and description are required")
	}
	if err != nil {
		return httpx.Internal(c, "update_service_failed")
	}

	_ = h.contentCache.InvalidateHome()
	return c.JSON(svc)
}
