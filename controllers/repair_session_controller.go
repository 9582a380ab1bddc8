package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/autoservice/station-api/config"
	"github.com/autoservice/station-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RepairSessionPartRequest is one used-part reference in a repair session payload
type RepairSessionPartRequest struct {
	RepairPartID uint `json:"repair_part_id" binding:"required"`
	Amount       int  `json:"amount" binding:"min=0"`
}

// RepairSessionRequest represents the request body for creating or updating
// a repair session. Numeric and boolean fields are pointers so zero values
// still satisfy the required binding; repair_parts and provided_services
// manage the association link rows.
type RepairSessionRequest struct {
	OrderNumber      string                     `json:"order_number" binding:"required,max=50"`
	DateStart        *time.Time                 `json:"date_start" binding:"required"`
	DateEnd          *time.Time                 `json:"date_end"`
	Malfunctions     *string                    `json:"malfunctions" binding:"omitempty,max=255"`
	OrderComment     *string                    `json:"order_comment" binding:"omitempty,max=255"`
	TotalSum         *int                       `json:"total_sum" binding:"required"`
	PaidSum          *int                       `json:"paid_sum" binding:"required"`
	IfFinished       *bool                      `json:"if_finished" binding:"required"`
	VehicleID        uint                       `json:"vehicle_id" binding:"required"`
	ResponsibleID    uint                       `json:"responsible_id" binding:"required"`
	MasterID         uint                       `json:"master_id" binding:"required"`
	RepairParts      []RepairSessionPartRequest `json:"repair_parts" binding:"omitempty,dive"`
	ProvidedServices []uint                     `json:"provided_services"`
}

// ListRepairSessions handles GET /repairsessions/ - lists all repair sessions
// with their part and service links
func ListRepairSessions(c *gin.Context) {
	db := config.GetDB()
	var sessions []models.RepairSession
	if err := db.Find(&sessions).Error; err != nil {
		respondDatabaseError(c, "Failed to fetch repair sessions")
		return
	}

	for i := range sessions {
		if err := loadSessionLinks(db, &sessions[i]); err != nil {
			respondDatabaseError(c, "Failed to load repair session links")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    sessions,
	})
}

// GetRepairSession handles GET /repairsessions/:id - gets a single repair session
func GetRepairSession(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	db := config.GetDB()
	var session models.RepairSession
	if err := db.First(&session, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "REPAIR_SESSION_NOT_FOUND", "Repair session not found")
		} else {
			respondDatabaseError(c, "Failed to fetch repair session")
		}
		return
	}

	if err := loadSessionLinks(db, &session); err != nil {
		respondDatabaseError(c, "Failed to load repair session links")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    session,
	})
}

// CreateRepairSession handles POST /repairsessions/ - creates a new repair
// session together with its part and service link rows
func CreateRepairSession(c *gin.Context) {
	var req RepairSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	db := config.GetDB()
	if !sessionReferencesValid(c, db, &req) {
		return
	}

	var session models.RepairSession
	err := db.Transaction(func(tx *gorm.DB) error {
		id, err := nextID(tx, &models.RepairSession{})
		if err != nil {
			return err
		}
		session = models.RepairSession{
			ID:            id,
			OrderNumber:   req.OrderNumber,
			DateStart:     *req.DateStart,
			DateEnd:       req.DateEnd,
			Malfunctions:  req.Malfunctions,
			OrderComment:  req.OrderComment,
			TotalSum:      *req.TotalSum,
			PaidSum:       *req.PaidSum,
			IfFinished:    *req.IfFinished,
			VehicleID:     req.VehicleID,
			ResponsibleID: req.ResponsibleID,
			MasterID:      req.MasterID,
		}
		if err := tx.Create(&session).Error; err != nil {
			return err
		}
		return writeSessionLinks(tx, session.ID, &req)
	})
	if err != nil {
		respondDatabaseError(c, "Failed to create repair session")
		return
	}

	if err := loadSessionLinks(db, &session); err != nil {
		respondDatabaseError(c, "Failed to load repair session links")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    session,
	})
}

// UpdateRepairSession handles PUT /repairsessions/:id - replaces every field
// of a repair session and its link rows
func UpdateRepairSession(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req RepairSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	db := config.GetDB()
	var session models.RepairSession
	if err := db.First(&session, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "REPAIR_SESSION_NOT_FOUND", "Repair session not found")
		} else {
			respondDatabaseError(c, "Failed to fetch repair session")
		}
		return
	}

	if !sessionReferencesValid(c, db, &req) {
		return
	}

	session.OrderNumber = req.OrderNumber
	session.DateStart = *req.DateStart
	session.DateEnd = req.DateEnd
	session.Malfunctions = req.Malfunctions
	session.OrderComment = req.OrderComment
	session.TotalSum = *req.TotalSum
	session.PaidSum = *req.PaidSum
	session.IfFinished = *req.IfFinished
	session.VehicleID = req.VehicleID
	session.ResponsibleID = req.ResponsibleID
	session.MasterID = req.MasterID

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&session).Error; err != nil {
			return err
		}
		if err := deleteSessionLinks(tx, session.ID); err != nil {
			return err
		}
		return writeSessionLinks(tx, session.ID, &req)
	})
	if err != nil {
		respondDatabaseError(c, "Failed to update repair session")
		return
	}

	if err := loadSessionLinks(db, &session); err != nil {
		respondDatabaseError(c, "Failed to load repair session links")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    session,
	})
}

// DeleteRepairSession handles DELETE /repairsessions/:id - permanently
// removes a repair session and its link rows
func DeleteRepairSession(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	db := config.GetDB()
	var session models.RepairSession
	if err := db.First(&session, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "REPAIR_SESSION_NOT_FOUND", "Repair session not found")
		} else {
			respondDatabaseError(c, "Failed to fetch repair session")
		}
		return
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := deleteSessionLinks(tx, session.ID); err != nil {
			return err
		}
		return tx.Delete(&session).Error
	})
	if err != nil {
		respondDatabaseError(c, "Failed to delete repair session")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Repair session deleted successfully",
	})
}

// sessionReferencesValid checks that the vehicle, responsible, master and
// every linked part and service exist. It writes the error response and
// returns false when any reference dangles.
func sessionReferencesValid(c *gin.Context, db *gorm.DB, req *RepairSessionRequest) bool {
	refs := []struct {
		model   interface{}
		id      uint
		message string
	}{
		{&models.Vehicle{}, req.VehicleID, "vehicle_id references a nonexistent vehicle"},
		{&models.Responsible{}, req.ResponsibleID, "responsible_id references a nonexistent responsible"},
		{&models.Master{}, req.MasterID, "master_id references a nonexistent master"},
	}
	for _, ref := range refs {
		if ok, err := rowExists(db, ref.model, ref.id); err != nil {
			respondDatabaseError(c, "Failed to verify repair session references")
			return false
		} else if !ok {
			respondInvalidReference(c, ref.message)
			return false
		}
	}
	for _, part := range req.RepairParts {
		if ok, err := rowExists(db, &models.RepairPart{}, part.RepairPartID); err != nil {
			respondDatabaseError(c, "Failed to verify repair parts")
			return false
		} else if !ok {
			respondInvalidReference(c, fmt.Sprintf("repair_part_id %d references a nonexistent repair part", part.RepairPartID))
			return false
		}
	}
	for _, serviceID := range req.ProvidedServices {
		if ok, err := rowExists(db, &models.ProvidedService{}, serviceID); err != nil {
			respondDatabaseError(c, "Failed to verify provided services")
			return false
		} else if !ok {
			respondInvalidReference(c, fmt.Sprintf("provided_services id %d references a nonexistent provided service", serviceID))
			return false
		}
	}
	return true
}

// writeSessionLinks inserts the link rows for the session's parts and services
func writeSessionLinks(tx *gorm.DB, sessionID uint, req *RepairSessionRequest) error {
	for _, part := range req.RepairParts {
		link := models.RepairSessionPart{
			RepairSessionID: sessionID,
			RepairPartID:    part.RepairPartID,
			Amount:          part.Amount,
		}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
	}
	for _, serviceID := range req.ProvidedServices {
		link := models.RepairSessionService{
			RepairSessionID:   sessionID,
			ProvidedServiceID: serviceID,
		}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
	}
	return nil
}

// deleteSessionLinks removes every link row belonging to the session
func deleteSessionLinks(tx *gorm.DB, sessionID uint) error {
	if err := tx.Where("repair_session_id = ?", sessionID).
		Delete(&models.RepairSessionPart{}).Error; err != nil {
		return err
	}
	return tx.Where("repair_session_id = ?", sessionID).
		Delete(&models.RepairSessionService{}).Error
}

// loadSessionLinks fills the session's transient link slices from the
// association tables. The slices are always non-nil so responses carry
// empty arrays rather than null.
func loadSessionLinks(db *gorm.DB, session *models.RepairSession) error {
	var partLinks []models.RepairSessionPart
	if err := db.Where("repair_session_id = ?", session.ID).Find(&partLinks).Error; err != nil {
		return err
	}
	session.RepairParts = make([]models.RepairSessionPartLink, 0, len(partLinks))
	for _, link := range partLinks {
		session.RepairParts = append(session.RepairParts, models.RepairSessionPartLink{
			RepairPartID: link.RepairPartID,
			Amount:       link.Amount,
		})
	}

	var serviceLinks []models.RepairSessionService
	if err := db.Where("repair_session_id = ?", session.ID).Find(&serviceLinks).Error; err != nil {
		return err
	}
	session.ProvidedServices = make([]uint, 0, len(serviceLinks))
	for _, link := range serviceLinks {
		session.ProvidedServices = append(session.ProvidedServices, link.ProvidedServiceID)
	}
	return nil
}
