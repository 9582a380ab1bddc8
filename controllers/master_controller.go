package controllers

import (
	"errors"
	"net/http"

	"github.com/autoservice/station-api/config"
	"github.com/autoservice/station-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// MasterRequest represents the request body for creating or updating a master
type MasterRequest struct {
	Name      string `json:"name" binding:"required,max=50"`
	Telephone string `json:"telephone" binding:"required,max=50"`
}

// ListMasters handles GET /masters/ - lists all masters
func ListMasters(c *gin.Context) {
	db := config.GetDB()
	var masters []models.Master
	if err := db.Find(&masters).Error; err != nil {
		respondDatabaseError(c, "Failed to fetch masters")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    masters,
	})
}

// GetMaster handles GET /masters/:id - gets a single master
func GetMaster(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	db := config.GetDB()
	var master models.Master
	if err := db.First(&master, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "MASTER_NOT_FOUND", "Master not found")
		} else {
			respondDatabaseError(c, "Failed to fetch master")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    master,
	})
}

// CreateMaster handles POST /masters/ - creates a new master
func CreateMaster(c *gin.Context) {
	var req MasterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	db := config.GetDB()
	var master models.Master
	err := db.Transaction(func(tx *gorm.DB) error {
		id, err := nextID(tx, &models.Master{})
		if err != nil {
			return err
		}
		master = models.Master{
			ID:        id,
			Name:      req.Name,
			Telephone: req.Telephone,
		}
		return tx.Create(&master).Error
	})
	if err != nil {
		respondDatabaseError(c, "Failed to create master")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    master,
	})
}

// UpdateMaster handles PUT /masters/:id - replaces every field of a master
func UpdateMaster(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req MasterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	db := config.GetDB()
	var master models.Master
	if err := db.First(&master, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "MASTER_NOT_FOUND", "Master not found")
		} else {
			respondDatabaseError(c, "Failed to fetch master")
		}
		return
	}

	master.Name = req.Name
	master.Telephone = req.Telephone
	if err := db.Save(&master).Error; err != nil {
		respondDatabaseError(c, "Failed to update master")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    master,
	})
}

// DeleteMaster handles DELETE /masters/:id - permanently removes a master
func DeleteMaster(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	db := config.GetDB()
	var master models.Master
	if err := db.First(&master, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "MASTER_NOT_FOUND", "Master not found")
		} else {
			respondDatabaseError(c, "Failed to fetch master")
		}
		return
	}

	if err := db.Delete(&master).Error; err != nil {
		respondDatabaseError(c, "Failed to delete master")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Master deleted successfully",
	})
}
