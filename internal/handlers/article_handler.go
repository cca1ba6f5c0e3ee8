package handlers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/plasmadinah/cms-backend/internal/handlers/ws"
	"github.com/plasmadinah/cms-backend/internal/httpx"
	"github.com/plasmadinah/cms-backend/internal/service"
	"github.com/plasmadinah/cms-backend/internal/storage"
)

type ArticleHandler struct {
	articleService *service.ArticleService
	commentService *service.CommentService
	s3             *storage.S3Storage
	hub            *ws.Hub
}

func NewArticleHandler(articleService *service.ArticleService, commentService *service.CommentService, s3 *storage.S3Storage, hub *ws.Hub) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
		commentService: commentService,
		s3:             s3,
		hub:            hub,
	}
}

func (h *ArticleHandler) GetArticles(c *fiber.Ctx) error {
	page := 1
	if pageStr := c.Query("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}

	result, err := h.articleService.ListArticles(page)
	if err != nil {
		return httpx.Internal(c, "fetch_articles_failed")
	}

	responses := make([]interface{}, len(result.Articles))
	for i, a := range result.Articles {
		responses[i] = a.ToResponse()
	}

	return c.JSON(fiber.Map{
		"articles":     responses,
		"current_page": result.CurrentPage,
		"total_pages":  result.TotalPages,
	})
}

// GetArticle returns the detail payload and records one view. The counter is
// bumped once per page load, then the new value is pushed to everyone in the
// article's room.
func (h *ArticleHandler) GetArticle(c *fiber.Ctx) error {
	id, err := httpx.ParamUint(c, "id")
	if err != nil {
		return httpx.BadRequest(c, "invalid_article_id", "Invalid article id")
	}

	article, err := h.articleService.GetArticle(id)
	if errors.Is(err, service.ErrNotFound) {
		return httpx.NotFound(c, "article_not_found", "Article not found")
	}
	if err != nil {
		return httpx.Internal(c, "fetch_article_failed")
	}

	comments, err := h.commentService.ListComments(id)
	if err != nil {
		return httpx.Internal(c, "fetch_comments_failed")
	}

	related, err := h.articleService.GetRelated(id)
	if err != nil {
		return httpx.Internal(c, "fetch_related_failed")
	}

	views, err := h.articleService.RecordView(id)
	if err != nil {
		// The article was just loaded; a failed increment only costs the
		// live update, not the page.
		log.Printf("Error recording view for article %d: %v", id, err)
		views = article.Views
	} else {
		h.hub.PublishViews(id, views)
	}

	commentResponses := make([]interface{}, len(comments))
	for i, cm := range comments {
		commentResponses[i] = cm.ToResponse()
	}
	relatedResponses := make([]interface{}, len(related))
	for i, a := range related {
		relatedResponses[i] = a.ToResponse()
	}

	resp := article.ToResponse()
	resp.Views = views

	return c.JSON(fiber.Map{
		"article":  resp,
		"comments": commentResponses,
		"related":  relatedResponses,
	})
}

func (h *ArticleHandler) CreateArticle(c *fiber.Ctx) error {
	input := service.ArticleInput{
		Title:   c.FormValue("title"),
		Content: c.FormValue("content"),
	}

	key, err := saveUploadedImage(c, h.s3, "articles")
	if err != nil {
		return err
	}
	input.Image = key

	article, err := h.articleService.CreateArticle(input)
	if errors.Is(err, service.ErrInvalidInput) {
		return httpx.BadRequest(c, "invalid_input", "Title and content are required")
	}
	if err != nil {
		return httpx.Internal(c, "create_article_failed")
	}

	return c.Status(fiber.StatusCreated).JSON(article.ToResponse())
}

func (h *ArticleHandler) UpdateArticle(c *fiber.Ctx) error {
	id, err := httpx.ParamUint(c, "id")
	if err != nil {
		return httpx.BadRequest(c, "invalid_article_id", "Invalid article id")
	}

	input := service.ArticleInput{
		Title:   c.FormValue("title"),
		Content: c.FormValue("content"),
	}

	key, err := saveUploadedImage(c, h.s3, "articles")
	if err != nil {
		return err
	}
	input.Image = key

	article, err := h.articleService.UpdateArticle(id, input)
	if errors.Is(err, service.ErrNotFound) {
		return httpx.NotFound(c, "article_not_found", "Article not found")
	}
	if errors.Is(err, service.ErrInvalidInput) {
		return httpx.BadRequest(c, "invalid_input", "Title and content are required")
	}
	if err != nil {
		return httpx.Internal(c, "update_article_failed")
	}

	return c.JSON(article.ToResponse())
}

func (h *ArticleHandler) DeleteArticle(c *fiber.Ctx) error {
	id, err := httpx.ParamUint(c, "id")
	if err != nil {
		return httpx.BadRequest(c, "invalid_article_id", "Invalid article id")
	}

	if err := h.articleService.DeleteArticle(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return httpx.NotFound(c, "article_not_found", "Article not found")
		}
		return httpx.Internal(c, "delete_article_failed")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
