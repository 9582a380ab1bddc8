package controllers

import (
	"errors"
	"net/http"

	"github.com/autoservice/station-api/config"
	"github.com/autoservice/station-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ResponsibleRequest represents the request body for creating or updating a responsible
type ResponsibleRequest struct {
	Name      string `json:"name" binding:"required,max=50"`
	Telephone string `json:"telephone" binding:"required,max=50"`
}

// ListResponsibles handles GET /responsibles/ - lists all responsibles
func ListResponsibles(c *gin.Context) {
	db := config.GetDB()
	var responsibles []models.Responsible
	if err := db.Find(&responsibles).Error; err != nil {
		respondDatabaseError(c, "Failed to fetch responsibles")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    responsibles,
	})
}

// GetResponsible handles GET /responsibles/:id - gets a single responsible
func GetResponsible(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	db := config.GetDB()
	var responsible models.Responsible
	if err := db.First(&responsible, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "RESPONSIBLE_NOT_FOUND", "Responsible not found")
		} else {
			respondDatabaseError(c, "Failed to fetch responsible")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    responsible,
	})
}

// CreateResponsible handles POST /responsibles/ - creates a new responsible
func CreateResponsible(c *gin.Context) {
	var req ResponsibleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	db := config.GetDB()
	var responsible models.Responsible
	err := db.Transaction(func(tx *gorm.DB) error {
		id, err := nextID(tx, &models.Responsible{})
		if err != nil {
			return err
		}
		responsible = models.Responsible{
			ID:        id,
			Name:      req.Name,
			Telephone: req.Telephone,
		}
		return tx.Create(&responsible).Error
	})
	if err != nil {
		respondDatabaseError(c, "Failed to create responsible")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    responsible,
	})
}

// UpdateResponsible handles PUT /responsibles/:id - replaces every field of a responsible
func UpdateResponsible(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ResponsibleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	db := config.GetDB()
	var responsible models.Responsible
	if err := db.First(&responsible, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "RESPONSIBLE_NOT_FOUND", "Responsible not found")
		} else {
			respondDatabaseError(c, "Failed to fetch responsible")
		}
		return
	}

	responsible.Name = req.Name
	responsible.Telephone = req.Telephone
	if err := db.Save(&responsible).Error; err != nil {
		respondDatabaseError(c, "Failed to update responsible")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    responsible,
	})
}

// DeleteResponsible handles DELETE /responsibles/:id - permanently removes a responsible
func DeleteResponsible(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	db := config.GetDB()
	var responsible models.Responsible
	if err := db.First(&responsible, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "RESPONSIBLE_NOT_FOUND", "Responsible not found")
		} else {
			respondDatabaseError(c, "Failed to fetch responsible")
		}
		return
	}

	if err := db.Delete(&responsible).Error; err != nil {
		respondDatabaseError(c, "Failed to delete responsible")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Responsible deleted successfully",
	})
}
