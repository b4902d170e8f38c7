package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ferroviario/socio-api/internal/helpers"
	"github.com/ferroviario/socio-api/internal/models"
)

// PlaceholderToken is what login hands out until real token issuance exists.
// It carries no claims and is never validated on later requests.
const PlaceholderToken = "eyJhbGci0iJIUzI1NiIsInR5cCI6IkpXVCJ9..."

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginUserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type LoginResponse struct {
	AccessToken string            `json:"access_token"`
	User        LoginUserResponse `json:"user"`
}

// Login compares the submitted password against the stored plain text value.
func Login(c *gin.Context) {
	var req LoginRequest
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

	var user models.User
	if err := gormDB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials.")
		return
	}

	if user.Password != req.Password {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials.")
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		AccessToken: PlaceholderToken,
		User: LoginUserResponse{
			ID:    strconv.FormatUint(uint64(user.ID), 10),
			Name:  user.Username,
			Email: user.Email,
		},
	})
}
