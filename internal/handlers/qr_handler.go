package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
	"gorm.io/gorm"

	"github.com/ferroviario/socio-api/internal/helpers"
	"github.com/ferroviario/socio-api/internal/models"
)

// OrderQR renders the entry QR code for one of the member's orders. The
// stored qr_code_url values on orders point here.
func OrderQR(c *gin.Context) {
	orderID := c.Param("id")

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

	var order models.Order
	if err := gormDB.Where("id = ? AND user_id = ?", orderID, userID).First(&order).Error; err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Order not found.")
		return
	}

	qrData := fmt.Sprintf("order:%s;match:%d;user:%d", order.ID, order.MatchID, order.UserID)
	qrImage, err := qrcode.Encode(qrData, qrcode.Medium, 256)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to generate QR code.")
		return
	}

	c.Data(http.StatusOK, "image/png", qrImage)
}

// CheckinQR renders the QR code for one of the member's check-ins.
func CheckinQR(c *gin.Context) {
	checkinID := c.Param("id")

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

	var checkin models.Checkin
	if err := gormDB.Where("id = ? AND user_id = ?", checkinID, userID).First(&checkin).Error; err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Check-in not found.")
		return
	}

	qrData := fmt.Sprintf("checkin:%d;match:%d;user:%d", checkin.ID, checkin.MatchID, checkin.UserID)
	qrImage, err := qrcode.Encode(qrData, qrcode.Medium, 256)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to generate QR code.")
		return
	}

	c.Data(http.StatusOK, "image/png", qrImage)
}
