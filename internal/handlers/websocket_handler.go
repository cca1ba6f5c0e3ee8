package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
	"github.com/plasmadinah/cms-backend/internal/handlers/ws"
	"github.com/plasmadinah/cms-backend/internal/httpx"
	"github.com/plasmadinah/cms-backend/internal/service"
)

const pongTimeout = 90 * time.Second

type WebSocketHandler struct {
	hub            *ws.Hub
	commentService *service.CommentService
}

func NewWebSocketHandler(commentService *service.CommentService) *WebSocketHandler {
	return &WebSocketHandler{
		hub:            ws.NewHub(),
		commentService: commentService,
	}
}

// GetHub returns the hub instance (useful for broadcasting from other handlers)
func (h *WebSocketHandler) GetHub() *ws.Hub {
	return h.hub
}

func (h *WebSocketHandler) HandleWebSocket(c *websocket.Conn) {
	connID := uuid.NewString()

	c.SetReadDeadline(time.Now().Add(pongTimeout))
	c.SetPongHandler(func(appData string) error {
		return c.SetReadDeadline(time.Now().Add(pongTimeout))
	})

	h.hub.Register(connID, c)

	// Teardown runs exactly once, whether the read loop ends normally or on
	// error, and removes the connection from every room it joined.
	defer h.hub.Unregister(connID)

	log.Printf("Connection %s opened via WebSocket", connID)

	ctx := &ws.MessageContext{
		ConnID:   connID,
		Hub:      h.hub,
		Comments: h.commentService,
	}

	for {
		_, messageBytes, err := c.ReadMessage()
		if err != nil {
			log.Printf("Error reading message from connection %s: %v", connID, err)
			break
		}

		msg, err := ws.Decode(messageBytes)
		if err != nil {
			log.Printf("Error deserializing message from connection %s: %v", connID, err)
			_ = ws.SendError(ctx, "invalid_message", "Invalid message format", err.Error())
			continue
		}

		if err := msg.Process(ctx); err != nil {
			log.Printf("Error processing message %s from connection %s: %v", msg.GetType(), connID, err)
			_ = ws.SendError(ctx, "processing_failed", "Failed to process message", err.Error())
		}
	}

	log.Printf("Connection %s closed", connID)
}

// GetRoomMembers reports which connections are watching an article. Admin
// diagnostics only.
func (h *WebSocketHandler) GetRoomMembers(c *fiber.Ctx) error {
	articleID, err := httpx.ParamUint(c, "id")
	if err != nil {
		return httpx.BadRequest(c, "invalid_article_id", "Invalid article id")
	}

	members := h.hub.Members(ws.ArticleRoom(articleID))
	return c.JSON(fiber.Map{
		"article_id": articleID,
		"members":    members,
		"count":      len(members),
	})
}
