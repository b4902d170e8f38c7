package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ferroviario/socio-api/internal/helpers"
)

func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Bem-vindo à API de Sócio Torcedor! Módulo Esportivo Operante.",
	})
}

// Status probes database connectivity. Probe failures are reported in the
// payload instead of propagating, so the endpoint itself never errors.
func Status(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var result int
	if err := gormDB.Raw("SELECT 1").Scan(&result).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{
			"status":   "error",
			"database": fmt.Sprintf("connection failed: %v", err),
		})
		return
	}
	if result != 1 {
		c.JSON(http.StatusOK, gin.H{"status": "error", "database": "not connected"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "connected"})
}
