package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ferroviario/socio-api/internal/helpers"
	"github.com/ferroviario/socio-api/internal/models"
)

type NewsRequest struct {
	Category    string    `json:"category"`
	Title       string    `json:"title" binding:"required"`
	PublishedAt time.Time `json:"published_at"`
	Author      string    `json:"author"`
	ImageURL    string    `json:"image_url"`
	Content     string    `json:"content"`
}

type NewsDetailResponse struct {
	models.News
	UserHasLiked bool `json:"user_has_liked"`
}

type LikeResponse struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"like_count"`
}

func CreateNews(c *gin.Context) {
	var req NewsRequest
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

	news := models.News{
		Category:    req.Category,
		Title:       req.Title,
		PublishedAt: req.PublishedAt,
		Author:      req.Author,
		ImageURL:    req.ImageURL,
		Content:     req.Content,
	}

	if err := gormDB.Create(&news).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create news.")
		return
	}

	c.JSON(http.StatusCreated, news)
}

// GetNews returns one news item. Every read bumps view_count and persists the
// bump, then reports whether the current member has liked the item.
func GetNews(c *gin.Context) {
	newsID := c.Param("id")

	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User not authenticated.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var news models.News
	if err := gormDB.Where("id = ?", newsID).First(&news).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "News not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving news.")
		return
	}

	news.ViewCount++
	if err := gormDB.Model(&news).Update("view_count", news.ViewCount).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update view count.")
		return
	}

	var likes int64
	err := gormDB.Model(&models.UserNewsLike{}).
		Where("user_id = ? AND news_id = ?", userID, news.ID).
		Count(&likes).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving like state.")
		return
	}

	c.JSON(http.StatusOK, NewsDetailResponse{News: news, UserHasLiked: likes > 0})
}

// ToggleNewsLike flips the member's like on a news item: an existing like row
// is removed and like_count decremented, a missing one is inserted and
// like_count incremented.
func ToggleNewsLike(c *gin.Context) {
	newsID := c.Param("id")

	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User not authenticated.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var news models.News
	if err := gormDB.Where("id = ?", newsID).First(&news).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "News not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving news.")
		return
	}

	var likes int64
	err := gormDB.Model(&models.UserNewsLike{}).
		Where("user_id = ? AND news_id = ?", userID, news.ID).
		Count(&likes).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving like state.")
		return
	}

	liked := likes > 0
	if liked {
		err = gormDB.
			Where("user_id = ? AND news_id = ?", userID, news.ID).
			Delete(&models.UserNewsLike{}).Error
		if err != nil {
			helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to remove like.")
			return
		}
		news.LikeCount--
	} else {
		like := models.UserNewsLike{UserID: userID.(uint), NewsID: news.ID}
		if err := gormDB.Create(&like).Error; err != nil {
			helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to add like.")
			return
		}
		news.LikeCount++
	}

	if err := gormDB.Model(&news).Update("like_count", news.LikeCount).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update like count.")
		return
	}

	c.JSON(http.StatusOK, LikeResponse{Liked: !liked, LikeCount: news.LikeCount})
}
