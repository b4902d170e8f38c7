package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ferroviario/socio-api/internal/helpers"
	"github.com/ferroviario/socio-api/internal/models"
)

type AddCardRequest struct {
	CardToken string `json:"card_token" binding:"required"`
	IsDefault bool   `json:"is_default"`
}

func ListCards(c *gin.Context) {
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

	var cards []models.Card
	if err := gormDB.Where("user_id = ?", userID).Find(&cards).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving cards.")
		return
	}

	c.JSON(http.StatusOK, cards)
}

// AddCard stores a card record with mocked details. There is no tokenization
// provider behind this yet, so the submitted token is accepted but the stored
// brand/last four/holder/expiry are fixed values.
func AddCard(c *gin.Context) {
	var req AddCardRequest
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

	card := models.Card{
		UserID:     userID.(uint),
		Brand:      "VISA",
		LastFour:   "4242",
		HolderName: "SOCIO TORCEDOR",
		Expiry:     "12/28",
		IsDefault:  req.IsDefault,
	}

	if err := gormDB.Create(&card).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to add card.")
		return
	}

	c.JSON(http.StatusCreated, card)
}

func DeleteCard(c *gin.Context) {
	cardID := c.Param("id")

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

	result := gormDB.Where("id = ? AND user_id = ?", cardID, userID).Delete(&models.Card{})
	if result.Error != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete card.")
		return
	}
	if result.RowsAffected == 0 {
		helpers.RespondWithError(c, http.StatusNotFound, "Card not found.")
		return
	}

	c.Status(http.StatusNoContent)
}
