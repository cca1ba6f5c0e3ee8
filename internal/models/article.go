package models

import (
	"time"

	"gorm.io/gorm"
)

type Article struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Title   string `gorm:"not null" json:"title"`
	Content string `gorm:"type:text;not null" json:"content"`
	Image   string `gorm:"not null" json:"image"`
	Author  string `gorm:"not null;default:Admin" json:"author"`

	// Raw hit counter, bumped once per detail-page load.
	Views int64 `gorm:"not null;default:30000" json:"views"`

	Comments []Comment `gorm:"foreignKey:ArticleID" json:"-"`
}

type ArticleResponse struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Image     string    `json:"image"`
	Author    string    `json:"author"`
	Views     int64     `json:"views"`
	CreatedAt time.Time `json:"created_at"`
}

func (a *Article) ToResponse() ArticleResponse {
	return ArticleResponse{
		ID:        a.ID,
		Title:     a.Title,
		Content:   a.Content,
		Image:     a.Image,
		Author:    a.Author,
		Views:     a.Views,
		CreatedAt: a.CreatedAt,
	}
}
