package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/autoservice/station-api/config"
	"github.com/autoservice/station-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// WarrantyCardRequest represents the request body for creating or updating
// a warranty card. Dates are exchanged as RFC 3339 timestamps.
type WarrantyCardRequest struct {
	StartDate         *time.Time `json:"start_date" binding:"required"`
	EndDate           *time.Time `json:"end_date" binding:"required"`
	VehicleID         uint       `json:"vehicle_id" binding:"required"`
	ProvidedServiceID uint       `json:"provided_service_id" binding:"required"`
}

// ListWarrantyCards handles GET /warrantiescards/ - lists all warranty cards
func ListWarrantyCards(c *gin.Context) {
	db := config.GetDB()
	var cards []models.WarrantyCard
	if err := db.Find(&cards).Error; err != nil {
		respondDatabaseError(c, "Failed to fetch warranty cards")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    cards,
	})
}

// GetWarrantyCard handles GET /warrantiescards/:id - gets a single warranty card
func GetWarrantyCard(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	db := config.GetDB()
	var card models.WarrantyCard
	if err := db.First(&card, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "WARRANTY_CARD_NOT_FOUND", "Warranty card not found")
		} else {
			respondDatabaseError(c, "Failed to fetch warranty card")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    card,
	})
}

// CreateWarrantyCard handles POST /warrantiescards/ - creates a new warranty card
func CreateWarrantyCard(c *gin.Context) {
	var req WarrantyCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	db := config.GetDB()
	if !warrantyReferencesValid(c, db, &req) {
		return
	}

	var card models.WarrantyCard
	err := db.Transaction(func(tx *gorm.DB) error {
		id, err := nextID(tx, &models.WarrantyCard{})
		if err != nil {
			return err
		}
		card = models.WarrantyCard{
			ID:                id,
			StartDate:         *req.StartDate,
			EndDate:           *req.EndDate,
			VehicleID:         req.VehicleID,
			ProvidedServiceID: req.ProvidedServiceID,
		}
		return tx.Create(&card).Error
	})
	if err != nil {
		respondDatabaseError(c, "Failed to create warranty card")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    card,
	})
}

// UpdateWarrantyCard handles PUT /warrantiescards/:id - replaces every field
// of a warranty card
func UpdateWarrantyCard(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req WarrantyCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	db := config.GetDB()
	var card models.WarrantyCard
	if err := db.First(&card, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "WARRANTY_CARD_NOT_FOUND", "Warranty card not found")
		} else {
			respondDatabaseError(c, "Failed to fetch warranty card")
		}
		return
	}

	if !warrantyReferencesValid(c, db, &req) {
		return
	}

	card.StartDate = *req.StartDate
	card.EndDate = *req.EndDate
	card.VehicleID = req.VehicleID
	card.ProvidedServiceID = req.ProvidedServiceID
	if err := db.Save(&card).Error; err != nil {
		respondDatabaseError(c, "Failed to update warranty card")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    card,
	})
}

// DeleteWarrantyCard handles DELETE /warrantiescards/:id - permanently
// removes a warranty card
func DeleteWarrantyCard(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	db := config.GetDB()
	var card models.WarrantyCard
	if err := db.First(&card, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "WARRANTY_CARD_NOT_FOUND", "Warranty card not found")
		} else {
			respondDatabaseError(c, "Failed to fetch warranty card")
		}
		return
	}

	if err := db.Delete(&card).Error; err != nil {
		respondDatabaseError(c, "Failed to delete warranty card")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Warranty card deleted successfully",
	})
}

// warrantyReferencesValid checks that the vehicle and service referenced by
// the payload exist. It writes the error response and returns false when
// they do not.
func warrantyReferencesValid(c *gin.Context, db *gorm.DB, req *WarrantyCardRequest) bool {
	if ok, err := rowExists(db, &models.Vehicle{}, req.VehicleID); err != nil {
		respondDatabaseError(c, "Failed to verify vehicle")
		return false
	} else if !ok {
		respondInvalidReference(c, "vehicle_id references a nonexistent vehicle")
		return false
	}
	if ok, err := rowExists(db, &models.ProvidedService{}, req.ProvidedServiceID); err != nil {
		respondDatabaseError(c, "Failed to verify provided service")
		return false
	} else if !ok {
		respondInvalidReference(c, "provided_service_id references a nonexistent provided service")
		return false
	}
	return true
}
