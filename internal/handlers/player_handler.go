package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ferroviario/socio-api/internal/helpers"
	"github.com/ferroviario/socio-api/internal/models"
)

type PlayerRequest struct {
	Name        string `json:"name" binding:"required"`
	Position    string `json:"position" binding:"required"`
	Number      *int   `json:"number"`
	Nationality string `json:"nationality" binding:"required"`
}

func CreatePlayer(c *gin.Context) {
	var req PlayerRequest
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

	player := models.Player{
		Name:        req.Name,
		Position:    req.Position,
		Number:      req.Number,
		Nationality: req.Nationality,
	}

	if err := gormDB.Create(&player).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create player.")
		return
	}

	c.JSON(http.StatusCreated, player)
}

func ListPlayers(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	skip, err := helpers.StringToInt(c.DefaultQuery("skip", "0"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid skip value.")
		return
	}
	limit, err := helpers.StringToInt(c.DefaultQuery("limit", "100"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid limit value.")
		return
	}

	var players []models.Player
	if err := gormDB.Offset(skip).Limit(limit).Find(&players).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving players.")
		return
	}

	c.JSON(http.StatusOK, players)
}

func GetPlayer(c *gin.Context) {
	playerID := c.Param("id")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var player models.Player
	if err := gormDB.Where("id = ?", playerID).First(&player).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Player not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving player.")
		return
	}

	c.JSON(http.StatusOK, player)
}
