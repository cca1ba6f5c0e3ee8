package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/plasmadinah/cms-backend/internal/httpx"
	"github.com/plasmadinah/cms-backend/internal/service"
)

type MessageHandler struct {
	messageService *service.MessageService
}

func NewMessageHandler(messageService *service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

func (h *MessageHandler) SendMessage(c *fiber.Ctx) error {
	var input service.ContactInput
	if err := c.BodyParser(&input); err != nil {
		return httpx.BadRequest(c, "invalid_request_body", "Invalid request body")
	}

	message, err := h.messageService.SubmitMessage(input)
	if errors.Is(err, service.ErrInvalidInput) {
		return httpx.BadRequest(c, "invalid_input", "Name, email and body are required")
	}
	if err != nil {
		return httpx.Internal(c, "send_message_failed")
	}

	return c.Status(fiber.StatusCreated).JSON(message)
}

func (h *MessageHandler) GetMessages(c *fiber.Ctx) error {
	messages, err := h.messageService.ListMessages()
	if err != nil {
		return httpx.Internal(c, "fetch_messages_failed")
	}

	return c.JSON(fiber.Map{
		"messages": messages,
		"count":    len(messages),
	})
}

func (h *MessageHandler) DeleteMessage(c *fiber.Ctx) error {
	id, err := httpx.ParamUint(c, "id")
	if err != nil {
		return httpx.BadRequest(c, "invalid_message_id", "Invalid message id")
	}

	if err := h.messageService.DeleteMessage(id); err != nil {
		return httpx.Internal(c, "delete_message_failed")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
