package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ferroviario/socio-api/internal/helpers"
	"github.com/ferroviario/socio-api/internal/models"
)

type DashboardResponse struct {
	NextMatch        *models.Match            `json:"next_match,omitempty"`
	News             []models.News            `json:"news"`
	PressConferences []models.PressConference `json:"press_conferences"`
	Videos           []models.Video           `json:"videos"`
}

// Dashboard assembles the home screen: the next upcoming or live match plus
// the freshest news and media items.
func Dashboard(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var resp DashboardResponse

	var nextMatch models.Match
	err := gormDB.
		Where("status IN ?", []string{models.MatchStatusUpcoming, models.MatchStatusLive}).
		Order("match_datetime asc").
		First(&nextMatch).Error
	if err == nil {
		resp.NextMatch = &nextMatch
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving next match.")
		return
	}

	if err := gormDB.Order("published_at desc").Limit(5).Find(&resp.News).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving news.")
		return
	}
	if err := gormDB.Order("published_at desc").Limit(3).Find(&resp.PressConferences).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving press conferences.")
		return
	}
	if err := gormDB.Order("published_at desc").Limit(3).Find(&resp.Videos).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving videos.")
		return
	}

	c.JSON(http.StatusOK, resp)
}
