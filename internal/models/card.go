package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Card struct {
	ID         string `gorm:"primaryKey" json:"id"`
	UserID     uint   `gorm:"not null;index" json:"-"`
	Brand      string `gorm:"not null" json:"brand"`
	LastFour   string `gorm:"not null" json:"last_four"`
	HolderName string `gorm:"not null" json:"holder_name"`
	Expiry     string `gorm:"not null" json:"expiry"`
	IsDefault  bool   `json:"is_default"`
}

func (card *Card) BeforeCreate(tx *gorm.DB) (err error) {
	if card.ID == "" {
		card.ID = uuid.New().String()
	}
	return
}
