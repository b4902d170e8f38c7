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

type TicketCategoryRequest struct {
	MatchID           uint   `json:"match_id" binding:"required"`
	Name              string `json:"name" binding:"required"`
	AvailableQuantity int    `json:"available_quantity" binding:"required"`
	Price             int    `json:"price" binding:"required"`
}

type PurchaseRequest struct {
	MatchID          uint   `json:"match_id" binding:"required"`
	TicketCategoryID string `json:"ticket_category_id" binding:"required"`
	Quantity         int    `json:"quantity" binding:"required,min=1"`
	PaymentMethod    string `json:"payment_method" binding:"required"`
	CardID           string `json:"card_id"`
}

type TicketCategoryResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	AvailableQuantity int     `json:"available_quantity"`
	Price             float64 `json:"price"`
}

type SaleMatchResponse struct {
	ID            uint                     `json:"id"`
	Status        string                   `json:"status"`
	Location      string                   `json:"location"`
	HomeTeam      string                   `json:"home_team"`
	AwayTeam      string                   `json:"away_team"`
	MatchDatetime time.Time                `json:"match_datetime"`
	Categories    []TicketCategoryResponse `json:"categories"`
}

func CreateTicketCategory(c *gin.Context) {
	var req TicketCategoryRequest
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

	var match models.Match
	if err := gormDB.Where("id = ?", req.MatchID).First(&match).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Match not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving match.")
		return
	}

	category := models.TicketCategory{
		MatchID:           req.MatchID,
		Name:              req.Name,
		AvailableQuantity: req.AvailableQuantity,
		Price:             req.Price,
	}

	if err := gormDB.Create(&category).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create ticket category.")
		return
	}

	c.JSON(http.StatusCreated, category)
}

// ListTicketMatches returns matches open for sale or check-in with their
// ticket categories, prices in reais.
func ListTicketMatches(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var matches []models.Match
	err := gormDB.
		Preload("TicketCategories").
		Where("status IN ?", []string{models.MatchStatusSaleOpen, models.MatchStatusCheckinOpen}).
		Find(&matches).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving matches.")
		return
	}

	resp := make([]SaleMatchResponse, 0, len(matches))
	for _, match := range matches {
		categories := make([]TicketCategoryResponse, 0, len(match.TicketCategories))
		for _, category := range match.TicketCategories {
			categories = append(categories, TicketCategoryResponse{
				ID:                category.ID,
				Name:              category.Name,
				AvailableQuantity: category.AvailableQuantity,
				Price:             helpers.CentavosToReais(category.Price),
			})
		}
		resp = append(resp, SaleMatchResponse{
			ID:            match.ID,
			Status:        match.Status,
			Location:      match.Location,
			HomeTeam:      match.HomeTeam,
			AwayTeam:      match.AwayTeam,
			MatchDatetime: match.MatchDatetime,
			Categories:    categories,
		})
	}

	c.JSON(http.StatusOK, resp)
}

// PurchaseTickets checks availability, decrements the category inventory and
// records a confirmed order. Payment always succeeds; there is no gateway
// behind this yet.
func PurchaseTickets(c *gin.Context) {
	var req PurchaseRequest
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

	var category models.TicketCategory
	err := gormDB.
		Where("id = ? AND match_id = ?", req.TicketCategoryID, req.MatchID).
		First(&category).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Ticket category not found for this match.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving ticket category.")
		return
	}

	if category.AvailableQuantity < req.Quantity {
		helpers.RespondWithError(c, http.StatusBadRequest, "Not enough tickets available.")
		return
	}

	category.AvailableQuantity -= req.Quantity
	if err := gormDB.Model(&category).Update("available_quantity", category.AvailableQuantity).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update ticket availability.")
		return
	}

	orderID := fmt.Sprintf("ORD-%d-%d", time.Now().Unix(), userID.(uint))
	order := models.Order{
		ID:               orderID,
		UserID:           userID.(uint),
		MatchID:          req.MatchID,
		TicketCategoryID: category.ID,
		Quantity:         req.Quantity,
		PaymentMethod:    req.PaymentMethod,
		CardID:           req.CardID,
		Status:           models.OrderStatusConfirmed,
		QRCodeURL:        fmt.Sprintf("/api/v1/orders/%s/qr", orderID),
		OrderedAt:        time.Now(),
	}

	if err := gormDB.Create(&order).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create order.")
		return
	}

	c.JSON(http.StatusCreated, order)
}
