package controllers

import (
	"net/http"
	"testing"

	"github.com/autoservice/station-api/models"
	"github.com/stretchr/testify/assert"
)

func TestCreateProvidedService(t *testing.T) {
	setupTestDB(t)
	router := setupTestRouter()
	router.POST("/providedservices/", CreateProvidedService)

	tests := []struct {
		name           string
		difficulty     string
		expectedStatus int
	}{
		{"easy difficulty accepted", "easy", http.StatusCreated},
		{"medium difficulty accepted", "medium", http.StatusCreated},
		{"hard difficulty accepted", "hard", http.StatusCreated},
		{"unknown difficulty rejected", "invalid-value", http.StatusBadRequest},
		{"empty difficulty rejected", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(router, http.MethodPost, "/providedservices/", map[string]interface{}{
				"name":       "Oil change",
				"category":   "maintenance",
				"difficulty": tt.difficulty,
			})
			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusBadRequest {
				assert.Equal(t, "VALIDATION_ERROR", errorCode(t, w))
			} else {
				data := responseData(t, w)
				assert.Equal(t, tt.difficulty, data["difficulty"])
			}
		})
	}
}

func TestInvalidDifficultyNeverReachesStore(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter()
	router.POST("/providedservices/", CreateProvidedService)

	w := performRequest(router, http.MethodPost, "/providedservices/", map[string]interface{}{
		"name":       "Engine rebuild",
		"category":   "engine",
		"difficulty": "impossible",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.ProvidedService{}).Count(&count)
	assert.Equal(t, int64(0), count, "Rejected payload must not be persisted")
}

func TestUpdateProvidedService(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter()
	router.PUT("/providedservices/:id", UpdateProvidedService)

	db.Create(&models.ProvidedService{ID: 1, Name: "Oil change", Category: "maintenance", Difficulty: models.DifficultyEasy})

	w := performRequest(router, http.MethodPut, "/providedservices/1", map[string]interface{}{
		"name":       "Full oil service",
		"category":   "maintenance",
		"difficulty": "medium",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var service models.ProvidedService
	db.First(&service, 1)
	assert.Equal(t, "Full oil service", service.Name)
	assert.Equal(t, models.DifficultyMedium, service.Difficulty)
}

func TestProvidedServiceNotFound(t *testing.T) {
	setupTestDB(t)
	router := setupTestRouter()
	router.GET("/providedservices/:id", GetProvidedService)
	router.DELETE("/providedservices/:id", DeleteProvidedService)

	w := performRequest(router, http.MethodGet, "/providedservices/12", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "PROVIDED_SERVICE_NOT_FOUND", errorCode(t, w))

	w = performRequest(router, http.MethodDelete, "/providedservices/12", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "PROVIDED_SERVICE_NOT_FOUND", errorCode(t, w))
}
