package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PressConference struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"not null" json:"title"`
	ThumbnailURL string    `json:"thumbnail_url"`
	VideoURL     string    `json:"video_url"`
	PublishedAt  time.Time `gorm:"index" json:"published_at"`
}

func (pc *PressConference) BeforeCreate(tx *gorm.DB) (err error) {
	if pc.ID == "" {
		pc.ID = uuid.New().String()
	}
	return
}

type Video struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"not null" json:"title"`
	ThumbnailURL string    `json:"thumbnail_url"`
	VideoURL     string    `json:"video_url"`
	PublishedAt  time.Time `gorm:"index" json:"published_at"`
}

func (video *Video) BeforeCreate(tx *gorm.DB) (err error) {
	if video.ID == "" {
		video.ID = uuid.New().String()
	}
	return
}
