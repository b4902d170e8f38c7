package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Partner is a business offering a member discount. HowToUse stores a raw
// JSON document (usually a list of steps); the benefits handler normalizes it.
type Partner struct {
	ID         string `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"not null" json:"name"`
	Category   string `json:"category"`
	LogoURL    string `json:"logo_url"`
	Discount   string `json:"discount"`
	IsFeatured bool   `json:"is_featured"`
	HowToUse   string `json:"-"`
}

func (partner *Partner) BeforeCreate(tx *gorm.DB) (err error) {
	if partner.ID == "" {
		partner.ID = uuid.New().String()
	}
	return
}
