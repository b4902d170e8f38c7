package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ferroviario/socio-api/internal/helpers"
	"github.com/ferroviario/socio-api/internal/models"
)

type CheckinRequest struct {
	MatchID uint `json:"match_id" binding:"required"`
}

// CheckIn records the member's arrival at a match whose check-in window is
// open. One check-in per member per match.
func CheckIn(c *gin.Context) {
	var req CheckinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

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

	var match models.Match
	if err := gormDB.Where("id = ?", req.MatchID).First(&match).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Match not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving match.")
		return
	}

	if match.Status != models.MatchStatusCheckinOpen {
		helpers.RespondWithError(c, http.StatusBadRequest, "Check-in is not open for this match.")
		return
	}

	var existing int64
	err := gormDB.Model(&models.Checkin{}).
		Where("user_id = ? AND match_id = ?", userID, req.MatchID).
		Count(&existing).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error verifying check-in.")
		return
	}
	if existing > 0 {
		helpers.RespondWithError(c, http.StatusConflict, "Already checked in for this match.")
		return
	}

	checkin := models.Checkin{
		UserID:      userID.(uint),
		MatchID:     req.MatchID,
		CheckinTime: time.Now(),
	}

	if err := gormDB.Create(&checkin).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to check in.")
		return
	}

	checkin.QRCodeURL = fmt.Sprintf("/api/v1/checkins/%d/qr", checkin.ID)
	if err := gormDB.Model(&checkin).Update("qr_code_url", checkin.QRCodeURL).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to store check-in QR.")
		return
	}

	c.JSON(http.StatusCreated, checkin)
}
