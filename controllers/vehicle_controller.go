package controllers

import (
	"errors"
	"net/http"

	"github.com/autoservice/station-api/config"
	"github.com/autoservice/station-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// VehicleRequest represents the request body for creating or updating a vehicle
type VehicleRequest struct {
	Brand           string `json:"brand" binding:"required,max=50"`
	Model           string `json:"model" binding:"required,max=50"`
	ManufactureYear *int   `json:"manufacture_year" binding:"required"`
	ClientID        uint   `json:"client_id" binding:"required"`
}

// ListVehicles handles GET /vehicles/ - lists all vehicles
func ListVehicles(c *gin.Context) {
	db := config.GetDB()
	var vehicles []models.Vehicle
	if err := db.Find(&vehicles).Error; err != nil {
		respondDatabaseError(c, "Failed to fetch vehicles")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    vehicles,
	})
}

// GetVehicle handles GET /vehicles/:id - gets a single vehicle
func GetVehicle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	db := config.GetDB()
	var vehicle models.Vehicle
	if err := db.First(&vehicle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "VEHICLE_NOT_FOUND", "Vehicle not found")
		} else {
			respondDatabaseError(c, "Failed to fetch vehicle")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    vehicle,
	})
}

// CreateVehicle handles POST /vehicles/ - creates a new vehicle
func CreateVehicle(c *gin.Context) {
	var req VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	db := config.GetDB()
	if ok, err := rowExists(db, &models.Client{}, req.ClientID); err != nil {
		respondDatabaseError(c, "Failed to verify client")
		return
	} else if !ok {
		respondInvalidReference(c, "client_id references a nonexistent client")
		return
	}

	var vehicle models.Vehicle
	err := db.Transaction(func(tx *gorm.DB) error {
		id, err := nextID(tx, &models.Vehicle{})
		if err != nil {
			return err
		}
		vehicle = models.Vehicle{
			ID:              id,
			Brand:           req.Brand,
			Model:           req.Model,
			ManufactureYear: *req.ManufactureYear,
			ClientID:        req.ClientID,
		}
		return tx.Create(&vehicle).Error
	})
	if err != nil {
		respondDatabaseError(c, "Failed to create vehicle")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    vehicle,
	})
}

// UpdateVehicle handles PUT /vehicles/:id - replaces every field of a vehicle
func UpdateVehicle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	db := config.GetDB()
	var vehicle models.Vehicle
	if err := db.First(&vehicle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "VEHICLE_NOT_FOUND", "Vehicle not found")
		} else {
			respondDatabaseError(c, "Failed to fetch vehicle")
		}
		return
	}

	if ok, err := rowExists(db, &models.Client{}, req.ClientID); err != nil {
		respondDatabaseError(c, "Failed to verify client")
		return
	} else if !ok {
		respondInvalidReference(c, "client_id references a nonexistent client")
		return
	}

	vehicle.Brand = req.Brand
	vehicle.Model = req.Model
	vehicle.ManufactureYear = *req.ManufactureYear
	vehicle.ClientID = req.ClientID
	if err := db.Save(&vehicle).Error; err != nil {
		respondDatabaseError(c, "Failed to update vehicle")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    vehicle,
	})
}

// DeleteVehicle handles DELETE /vehicles/:id - permanently removes a vehicle
func DeleteVehicle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	db := config.GetDB()
	var vehicle models.Vehicle
	if err := db.First(&vehicle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "VEHICLE_NOT_FOUND", "Vehicle not found")
		} else {
			respondDatabaseError(c, "Failed to fetch vehicle")
		}
		return
	}

	if err := db.Delete(&vehicle).Error; err != nil {
		respondDatabaseError(c, "Failed to delete vehicle")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Vehicle deleted successfully",
	})
}
