package models

type Competition struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"unique;index;not null" json:"name"`
	Country     string  `gorm:"not null" json:"country"`
	Description *string `json:"description"`
}
