package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ferroviario/socio-api/internal/helpers"
	"github.com/ferroviario/socio-api/internal/models"
)

type MediaRequest struct {
	Title        string    `json:"title" binding:"required"`
	ThumbnailURL string    `json:"thumbnail_url"`
	VideoURL     string    `json:"video_url"`
	PublishedAt  time.Time `json:"published_at"`
}

func CreatePressConference(c *gin.Context) {
	var req MediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	if req.PublishedAt.IsZero() {
		req.PublishedAt = time.Now()
	}

	press := models.PressConference{
		Title:        req.Title,
		ThumbnailURL: req.ThumbnailURL,
		VideoURL:     req.VideoURL,
		PublishedAt:  req.PublishedAt,
	}

	if err := gormDB.Create(&press).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create press conference.")
		return
	}

	c.JSON(http.StatusCreated, press)
}

func CreateVideo(c *gin.Context) {
	var req MediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	if req.PublishedAt.IsZero() {
		req.PublishedAt = time.Now()
	}

	video := models.Video{
		Title:        req.Title,
		ThumbnailURL: req.ThumbnailURL,
		VideoURL:     req.VideoURL,
		PublishedAt:  req.PublishedAt,
	}

	if err := gormDB.Create(&video).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create video.")
		return
	}

	c.JSON(http.StatusCreated, video)
}
