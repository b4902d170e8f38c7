package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type News struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Category    string    `json:"category"`
	Title       string    `gorm:"not null" json:"title"`
	PublishedAt time.Time `gorm:"index" json:"published_at"`
	Author      string    `json:"author"`
	ViewCount   int       `json:"view_count"`
	ImageURL    string    `json:"image_url"`
	Content     string    `json:"content"`
	LikeCount   int       `json:"like_count"`
}

func (news *News) BeforeCreate(tx *gorm.DB) (err error) {
	if news.ID == "" {
		news.ID = uuid.New().String()
	}
	return
}

// UserNewsLike records that a member liked a news item; a row's existence is
// the "liked" state.
type UserNewsLike struct {
	UserID uint   `gorm:"primaryKey" json:"user_id"`
	NewsID string `gorm:"primaryKey" json:"news_id"`
}

func (UserNewsLike) TableName() string {
	return "user_news_likes"
}
