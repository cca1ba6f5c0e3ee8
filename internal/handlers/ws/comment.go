package ws

import (
	"errors"
	"log"

	"github.com/plasmadinah/cms-backend/internal/service"
)

// MessageComment is an inbound comment submission. It is persisted before it
// is broadcast; a comment that fails validation or storage never reaches the
// room, only the submitter hears about it.
type MessageComment struct {
	ArticleID uint   `json:"article_id"`
	Name      string `json:"name"`
	Text      string `json:"text"`
}

func (msg *MessageComment) GetType() string {
	return "new_comment"
}

func (msg *MessageComment) Process(ctx *MessageContext) error {
	comment, err := ctx.Comments.SubmitComment(msg.ArticleID, msg.Name, msg.Text)
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return SendError(ctx, "invalid_input", "Name and text are required", "")
	case errors.Is(err, service.ErrNotFound):
		return SendError(ctx, "article_not_found", "Article does not exist", "")
	case err != nil:
		log.Printf("Error persisting comment from connection %s: %v", ctx.ConnID, err)
		return SendError(ctx, "storage_failed", "Could not save comment", "")
	}

	ctx.Hub.PublishComment(msg.ArticleID, comment.ToResponse())
	return nil
}
