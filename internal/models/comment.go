package models

import "time"

type Comment struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	ArticleID uint    `gorm:"not null;index" json:"article_id"`
	Article   Article `gorm:"foreignKey:ArticleID" json:"-"`

	Name string `gorm:"not null" json:"name"`
	Text string `gorm:"type:text;not null" json:"text"`
}

type CommentResponse struct {
	ID        uint      `json:"id"`
	ArticleID uint      `json:"article_id"`
	Name      string    `json:"name"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *Comment) ToResponse() CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		ArticleID: c.ArticleID,
		Name:      c.Name,
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
	}
}
