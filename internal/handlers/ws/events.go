package ws

import (
	"encoding/json"
	"log"
	"strconv"

	"github.com/plasmadinah/cms-backend/internal/models"
)

// Outbound event types, named after the socket events the web client listens
// for.
const (
	EventCommentAdded     = "update_comment"
	EventViewCountUpdated = "update_views"
)

// ArticleRoom is the room key for viewers of one article.
func ArticleRoom(articleID uint) string {
	return "article:" + strconv.FormatUint(uint64(articleID), 10)
}

type CommentAddedPayload struct {
	ArticleID uint                   `json:"article_id"`
	Comment   models.CommentResponse `json:"comment"`
}

type ViewCountPayload struct {
	ArticleID uint  `json:"article_id"`
	Views     int64 `json:"views"`
}

func encodeEvent(eventType string, payload interface{}) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(SerializedMessage{Type: eventType, Payload: raw})
}

// PublishComment broadcasts a persisted comment to the article's room.
// Callers must have durably stored the comment first.
func (h *Hub) PublishComment(articleID uint, comment models.CommentResponse) {
	data, err := encodeEvent(EventCommentAdded, CommentAddedPayload{
		ArticleID: articleID,
		Comment:   comment,
	})
	if err != nil {
		log.Printf("Error encoding comment event for article %d: %v", articleID, err)
		return
	}
	h.Publish(ArticleRoom(articleID), data)
}

// PublishViews broadcasts a view-counter snapshot to the article's room.
func (h *Hub) PublishViews(articleID uint, views int64) {
	data, err := encodeEvent(EventViewCountUpdated, ViewCountPayload{
		ArticleID: articleID,
		Views:     views,
	})
	if err != nil {
		log.Printf("Error encoding view event for article %d: %v", articleID, err)
		return
	}
	h.Publish(ArticleRoom(articleID), data)
}
