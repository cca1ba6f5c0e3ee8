package models

import "time"

// Message is a contact-form submission shown on the admin dashboard.
type Message struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Name    string `gorm:"not null" json:"name"`
	Email   string `gorm:"not null" json:"email"`
	Subject string `json:"subject"`
	Body    string `gorm:"type:text;not null" json:"body"`
}
