package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/plasmadinah/cms-backend/internal/handlers/ws"
	"github.com/plasmadinah/cms-backend/internal/httpx"
	"github.com/plasmadinah/cms-backend/internal/service"
)

type CommentHandler struct {
	commentService *service.CommentService
	hub            *ws.Hub
}

func NewCommentHandler(commentService *service.CommentService, hub *ws.Hub) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		hub:            hub,
	}
}

func (h *CommentHandler) GetComments(c *fiber.Ctx) error {
	articleID, err := httpx.ParamUint(c, "id")
	if err != nil {
		return httpx.BadRequest(c, "invalid_article_id", "Invalid article id")
	}

	comments, err := h.commentService.ListComments(articleID)
	if err != nil {
		return httpx.Internal(c, "fetch_comments_failed")
	}

	responses := make([]interface{}, len(comments))
	for i, cm := range comments {
		responses[i] = cm.ToResponse()
	}

	return c.JSON(fiber.Map{
		"comments": responses,
		"count":    len(comments),
	})
}

type createCommentInput struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// CreateComment is the REST twin of the new_comment socket message: persist
// first, broadcast to the room only after the comment durably exists.
func (h *CommentHandler) CreateComment(c *fiber.Ctx) error {
	articleID, err := httpx.ParamUint(c, "id")
	if err != nil {
		return httpx.BadRequest(c, "invalid_article_id", "Invalid article id")
	}

	var input createCommentInput
	if err := c.BodyParser(&input); err != nil {
		return httpx.BadRequest(c, "invalid_request_body", "Invalid request body")
	}

	comment, err := h.commentService.SubmitComment(articleID, input.Name, input.Text)
	if errors.Is(err, service.ErrInvalidInput) {
		return httpx.BadRequest(c, "invalid_input", "Name and text are required")
	}
	if errors.Is(err, service.ErrNotFound) {
		return httpx.NotFound(c, "article_not_found", "Article not found")
	}
	if err != nil {
		return httpx.Internal(c, "create_comment_failed")
	}

	h.hub.PublishComment(articleID, comment.ToResponse())

	return c.Status(fiber.StatusCreated).JSON(comment.ToResponse())
}
