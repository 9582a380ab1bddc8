package controllers

import (
	"errors"
	"net/http"

	"github.com/autoservice/station-api/config"
	"github.com/autoservice/station-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ClientRequest represents the request body for creating or updating a client
type ClientRequest struct {
	Name      string `json:"name" binding:"required,max=50"`
	Telephone string `json:"telephone" binding:"required,max=50"`
}

// ListClients handles GET /clients/ - lists all clients
func ListClients(c *gin.Context) {
	db := config.GetDB()
	var clients []models.Client
	if err := db.Find(&clients).Error; err != nil {
		respondDatabaseError(c, "Failed to fetch clients")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    clients,
	})
}

// GetClient handles GET /clients/:id - gets a single client
func GetClient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	db := config.GetDB()
	var client models.Client
	if err := db.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "CLIENT_NOT_FOUND", "Client not found")
		} else {
			respondDatabaseError(c, "Failed to fetch client")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    client,
	})
}

// CreateClient handles POST /clients/ - creates a new client
func CreateClient(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	db := config.GetDB()
	var client models.Client
	err := db.Transaction(func(tx *gorm.DB) error {
		id, err := nextID(tx, &models.Client{})
		if err != nil {
			return err
		}
		client = models.Client{
			ID:        id,
			Name:      req.Name,
			Telephone: req.Telephone,
		}
		return tx.Create(&client).Error
	})
	if err != nil {
		respondDatabaseError(c, "Failed to create client")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    client,
	})
}

// UpdateClient handles PUT /clients/:id - replaces every field of a client
func UpdateClient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	db := config.GetDB()
	var client models.Client
	if err := db.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "CLIENT_NOT_FOUND", "Client not found")
		} else {
			respondDatabaseError(c, "Failed to fetch client")
		}
		return
	}

	client.Name = req.Name
	client.Telephone = req.Telephone
	if err := db.Save(&client).Error; err != nil {
		respondDatabaseError(c, "Failed to update client")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    client,
	})
}

// DeleteClient handles DELETE /clients/:id - permanently removes a client
func DeleteClient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	db := config.GetDB()
	var client models.Client
	if err := db.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "CLIENT_NOT_FOUND", "Client not found")
		} else {
			respondDatabaseError(c, "Failed to fetch client")
		}
		return
	}

	if err := db.Delete(&client).Error; err != nil {
		respondDatabaseError(c, "Failed to delete client")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Client deleted successfully",
	})
}
