package models

type Hero struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	Title    string `gorm:"not null" json:"title"`
	Subtitle string `json:"subtitle"`
	Image    string `gorm:"not null" json:"image"`
	Order    int    `gorm:"column:display_order;not null;default:0" json:"order"`
}
