package controllers

import (
	"errors"
	"net/http"

	"github.com/autoservice/station-api/config"
	"github.com/autoservice/station-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ProvidedServiceRequest represents the request body for creating or
// updating a catalog service
type ProvidedServiceRequest struct {
	Name       string `json:"name" binding:"required,max=50"`
	Category   string `json:"category" binding:"required,max=50"`
	Difficulty string `json:"difficulty" binding:"required,oneof=easy medium hard"`
}

// ListProvidedServices handles GET /providedservices/ - lists the service catalog
func ListProvidedServices(c *gin.Context) {
	db := config.GetDB()
	var services []models.ProvidedService
	if err := db.Find(&services).Error; err != nil {
		respondDatabaseError(c, "Failed to fetch provided services")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    services,
	})
}

// GetProvidedService handles GET /providedservices/:id - gets a single catalog service
func GetProvidedService(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	db := config.GetDB()
	var service models.ProvidedService
	if err := db.First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "PROVIDED_SERVICE_NOT_FOUND", "Provided service not found")
		} else {
			respondDatabaseError(c, "Failed to fetch provided service")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    service,
	})
}

// CreateProvidedService handles POST /providedservices/ - adds a catalog service
func CreateProvidedService(c *gin.Context) {
	var req ProvidedServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	db := config.GetDB()
	var service models.ProvidedService
	err := db.Transaction(func(tx *gorm.DB) error {
		id, err := nextID(tx, &models.ProvidedService{})
		if err != nil {
			return err
		}
		service = models.ProvidedService{
			ID:         id,
			Name:       req.Name,
			Category:   req.Category,
			Difficulty: req.Difficulty,
		}
		return tx.Create(&service).Error
	})
	if err != nil {
		respondDatabaseError(c, "Failed to create provided service")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    service,
	})
}

// UpdateProvidedService handles PUT /providedservices/:id - replaces every
// field of a catalog service
func UpdateProvidedService(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ProvidedServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	db := config.GetDB()
	var service models.ProvidedService
	if err := db.First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "PROVIDED_SERVICE_NOT_FOUND", "Provided service not found")
		} else {
			respondDatabaseError(c, "Failed to fetch provided service")
		}
		return
	}

	service.Name = req.Name
	service.Category = req.Category
	service.Difficulty = req.Difficulty
	if err := db.Save(&service).Error; err != nil {
		respondDatabaseError(c, "Failed to update provided service")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    service,
	})
}

// DeleteProvidedService handles DELETE /providedservices/:id - removes a catalog service
func DeleteProvidedService(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	db := config.GetDB()
	var service models.ProvidedService
	if err := db.First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "PROVIDED_SERVICE_NOT_FOUND", "Provided service not found")
		} else {
			respondDatabaseError(c, "Failed to fetch provided service")
		}
		return
	}

	if err := db.Delete(&service).Error; err != nil {
		respondDatabaseError(c, "Failed to delete provided service")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Provided service deleted successfully",
	})
}
