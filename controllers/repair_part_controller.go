package controllers

import (
	"errors"
	"net/http"

	"github.com/autoservice/station-api/config"
	"github.com/autoservice/station-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RepairPartRequest represents the request body for creating or updating a
// repair part. The amounts are pointers so a stock level of zero still
// satisfies the required binding.
type RepairPartRequest struct {
	Name            string `json:"name" binding:"required,max=50"`
	AmountOnStation *int   `json:"amount_on_station" binding:"required,min=0"`
	AmountOnStorage *int   `json:"amount_on_storage" binding:"required,min=0"`
}

// ListRepairParts handles GET /repairparts/ - lists all repair parts
func ListRepairParts(c *gin.Context) {
	db := config.GetDB()
	var parts []models.RepairPart
	if err := db.Find(&parts).Error; err != nil {
		respondDatabaseError(c, "Failed to fetch repair parts")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    parts,
	})
}

// GetRepairPart handles GET /repairparts/:id - gets a single repair part
func GetRepairPart(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	db := config.GetDB()
	var part models.RepairPart
	if err := db.First(&part, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "REPAIR_PART_NOT_FOUND", "Repair part not found")
		} else {
			respondDatabaseError(c, "Failed to fetch repair part")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    part,
	})
}

// CreateRepairPart handles POST /repairparts/ - creates a new repair part
func CreateRepairPart(c *gin.Context) {
	var req RepairPartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	db := config.GetDB()
	var part models.RepairPart
	err := db.Transaction(func(tx *gorm.DB) error {
		id, err := nextID(tx, &models.RepairPart{})
		if err != nil {
			return err
		}
		part = models.RepairPart{
			ID:              id,
			Name:            req.Name,
			AmountOnStation: *req.AmountOnStation,
			AmountOnStorage: *req.AmountOnStorage,
		}
		return tx.Create(&part).Error
	})
	if err != nil {
		respondDatabaseError(c, "Failed to create repair part")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    part,
	})
}

// UpdateRepairPart handles PUT /repairparts/:id - replaces every field of a repair part
func UpdateRepairPart(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req RepairPartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	db := config.GetDB()
	var part models.RepairPart
	if err := db.First(&part, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "REPAIR_PART_NOT_FOUND", "Repair part not found")
		} else {
			respondDatabaseError(c, "Failed to fetch repair part")
		}
		return
	}

	part.Name = req.Name
	part.AmountOnStation = *req.AmountOnStation
	part.AmountOnStorage = *req.AmountOnStorage
	if err := db.Save(&part).Error; err != nil {
		respondDatabaseError(c, "Failed to update repair part")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    part,
	})
}

// DeleteRepairPart handles DELETE /repairparts/:id - permanently removes a repair part
func DeleteRepairPart(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	db := config.GetDB()
	var part models.RepairPart
	if err := db.First(&part, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "REPAIR_PART_NOT_FOUND", "Repair part not found")
		} else {
			respondDatabaseError(c, "Failed to fetch repair part")
		}
		return
	}

	if err := db.Delete(&part).Error; err != nil {
		respondDatabaseError(c, "Failed to delete repair part")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Repair part deleted successfully",
	})
}
