package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ferroviario/socio-api/internal/helpers"
	"github.com/ferroviario/socio-api/internal/models"
)

type PartnerRequest struct {
	Name       string   `json:"name" binding:"required"`
	Category   string   `json:"category"`
	LogoURL    string   `json:"logo_url"`
	Discount   string   `json:"discount"`
	IsFeatured bool     `json:"is_featured"`
	HowToUse   []string `json:"how_to_use"`
}

type PartnerSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	LogoURL    string `json:"logo_url"`
	Discount   string `json:"discount"`
	IsFeatured bool   `json:"is_featured"`
}

type PartnerDetailResponse struct {
	PartnerSummary
	HowToUse []string `json:"how_to_use"`
}

type BenefitsResponse struct {
	Featured []PartnerSummary `json:"featured"`
	Partners []PartnerSummary `json:"partners"`
}

func CreatePartner(c *gin.Context) {
	var req PartnerRequest
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

	howToUse, err := json.Marshal(req.HowToUse)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid how_to_use value.")
		return
	}

	partner := models.Partner{
		Name:       req.Name,
		Category:   req.Category,
		LogoURL:    req.LogoURL,
		Discount:   req.Discount,
		IsFeatured: req.IsFeatured,
		HowToUse:   string(howToUse),
	}

	if err := gormDB.Create(&partner).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create partner.")
		return
	}

	c.JSON(http.StatusCreated, partnerSummary(partner))
}

func ListBenefits(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var partners []models.Partner
	if err := gormDB.Find(&partners).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving partners.")
		return
	}

	resp := BenefitsResponse{
		Featured: []PartnerSummary{},
		Partners: []PartnerSummary{},
	}
	for _, partner := range partners {
		summary := partnerSummary(partner)
		if partner.IsFeatured {
			resp.Featured = append(resp.Featured, summary)
		}
		resp.Partners = append(resp.Partners, summary)
	}

	c.JSON(http.StatusOK, resp)
}

func GetBenefit(c *gin.Context) {
	partnerID := c.Param("id")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var partner models.Partner
	if err := gormDB.Where("id = ?", partnerID).First(&partner).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Partner not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving partner.")
		return
	}

	c.JSON(http.StatusOK, PartnerDetailResponse{
		PartnerSummary: partnerSummary(partner),
		HowToUse:       normalizeHowToUse(partner.HowToUse),
	})
}

func partnerSummary(partner models.Partner) PartnerSummary {
	return PartnerSummary{
		ID:         partner.ID,
		Name:       partner.Name,
		Category:   partner.Category,
		LogoURL:    partner.LogoURL,
		Discount:   partner.Discount,
		IsFeatured: partner.IsFeatured,
	}
}

// normalizeHowToUse decodes the stored JSON document into a step list. A
// non-list value (plain string, bare JSON scalar, or unparseable text) becomes
// a single-element list.
func normalizeHowToUse(raw string) []string {
	if raw == "" {
		return []string{}
	}

	var steps []string
	if err := json.Unmarshal([]byte(raw), &steps); err == nil {
		if steps == nil {
			return []string{}
		}
		return steps
	}

	var single string
	if err := json.Unmarshal([]byte(raw), &single); err == nil {
		return []string{single}
	}

	return []string{raw}
}
