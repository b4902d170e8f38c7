package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ferroviario/socio-api/internal/helpers"
	"github.com/ferroviario/socio-api/internal/models"
)

type CompetitionRequest struct {
	Name        string  `json:"name" binding:"required"`
	Country     string  `json:"country" binding:"required"`
	Description *string `json:"description"`
}

func CreateCompetition(c *gin.Context) {
	var req CompetitionRequest
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

	competition := models.Competition{
		Name:        req.Name,
		Country:     req.Country,
		Description: req.Description,
	}

	if err := gormDB.Create(&competition).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create competition.")
		return
	}

	c.JSON(http.StatusCreated, competition)
}

func ListCompetitions(c *gin.Context) {
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

	var competitions []models.Competition
	if err := gormDB.Offset(skip).Limit(limit).Find(&competitions).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving competitions.")
		return
	}

	c.JSON(http.StatusOK, competitions)
}

func GetCompetition(c *gin.Context) {
	competitionID := c.Param("id")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var competition models.Competition
	if err := gormDB.Where("id = ?", competitionID).First(&competition).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Competition not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving competition.")
		return
	}

	c.JSON(http.StatusOK, competition)
}
