package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ferroviario/socio-api/internal/helpers"
	"github.com/ferroviario/socio-api/internal/models"
)

type MatchRequest struct {
	CompetitionID uint      `json:"competition_id" binding:"required"`
	HomeTeam      string    `json:"home_team" binding:"required"`
	AwayTeam      string    `json:"away_team" binding:"required"`
	MatchDatetime time.Time `json:"match_datetime" binding:"required"`
	Location      string    `json:"location" binding:"required"`
	Status        string    `json:"status"`
	HomeScore     *int      `json:"home_score"`
	AwayScore     *int      `json:"away_score"`
	HighlightsURL *string   `json:"highlights_url"`
	IsHomeGame    bool      `json:"is_home_game"`
}

func CreateMatch(c *gin.Context) {
	var req MatchRequest
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

	if req.Status == "" {
		req.Status = models.MatchStatusUpcoming
	}

	match := models.Match{
		CompetitionID: req.CompetitionID,
		HomeTeam:      req.HomeTeam,
		AwayTeam:      req.AwayTeam,
		MatchDatetime: req.MatchDatetime,
		Location:      req.Location,
		Status:        req.Status,
		HomeScore:     req.HomeScore,
		AwayScore:     req.AwayScore,
		HighlightsURL: req.HighlightsURL,
		IsHomeGame:    req.IsHomeGame,
	}

	if err := gormDB.Create(&match).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create match.")
		return
	}

	c.JSON(http.StatusCreated, match)
}

func ListMatches(c *gin.Context) {
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

	query := gormDB.Model(&models.Match{})
	if raw := c.Query("is_home_game"); raw != "" {
		isHomeGame, err := strconv.ParseBool(raw)
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid is_home_game value.")
			return
		}
		query = query.Where("is_home_game = ?", isHomeGame)
	}

	var matches []models.Match
	if err := query.Offset(skip).Limit(limit).Find(&matches).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving matches.")
		return
	}

	c.JSON(http.StatusOK, matches)
}

func GetMatch(c *gin.Context) {
	matchID := c.Param("id")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var match models.Match
	if err := gormDB.Where("id = ?", matchID).First(&match).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Match not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving match.")
		return
	}

	c.JSON(http.StatusOK, match)
}

// GamesSchedule lists upcoming and live matches ordered by kickoff time.
func GamesSchedule(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var matches []models.Match
	err := gormDB.
		Where("status IN ?", []string{models.MatchStatusUpcoming, models.MatchStatusLive}).
		Order("match_datetime asc").
		Find(&matches).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving schedule.")
		return
	}

	c.JSON(http.StatusOK, matches)
}

func HomeGames(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var matches []models.Match
	err := gormDB.
		Where("is_home_game = ?", true).
		Where("status IN ?", []string{models.MatchStatusUpcoming, models.MatchStatusLive}).
		Order("match_datetime asc").
		Find(&matches).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving home games.")
		return
	}

	c.JSON(http.StatusOK, matches)
}
