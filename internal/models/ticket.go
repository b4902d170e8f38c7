package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TicketCategory is a priced inventory bucket (seating tier) for a match.
// Price is stored in centavos; handlers expose it divided by 100.
type TicketCategory struct {
	ID                string `gorm:"primaryKey" json:"id"`
	MatchID           uint   `gorm:"not null;index" json:"match_id"`
	Name              string `gorm:"not null" json:"name"`
	AvailableQuantity int    `gorm:"not null" json:"available_quantity"`
	Price             int    `gorm:"not null" json:"price"`
}

func (category *TicketCategory) BeforeCreate(tx *gorm.DB) (err error) {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	return
}
