package controllers

import (
	"net/http"
	"testing"

	"github.com/autoservice/station-api/models"
	"github.com/stretchr/testify/assert"
)

func TestCreateVehicle(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter()
	router.POST("/vehicles/", CreateVehicle)

	db.Create(&models.Client{ID: 1, Name: "Ivan", Telephone: "0991234567"})

	w := performRequest(router, http.MethodPost, "/vehicles/", map[string]interface{}{
		"brand":            "Toyota",
		"model":            "Corolla",
		"manufacture_year": 2020,
		"client_id":        1,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	data := responseData(t, w)
	assert.Equal(t, float64(1), data["id"])
	assert.Equal(t, "Toyota", data["brand"])
	assert.Equal(t, float64(1), data["client_id"], "Foreign key should be echoed as a plain integer")
}

func TestCreateVehicleRejectsDanglingClient(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter()
	router.POST("/vehicles/", CreateVehicle)

	w := performRequest(router, http.MethodPost, "/vehicles/", map[string]interface{}{
		"brand":            "Toyota",
		"model":            "Corolla",
		"manufacture_year": 2020,
		"client_id":        999,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(t, w))

	var count int64
	db.Model(&models.Vehicle{}).Count(&count)
	assert.Equal(t, int64(0), count, "Vehicle with a dangling client must not be persisted")
}

func TestUpdateVehicle(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter()
	router.PUT("/vehicles/:id", UpdateVehicle)

	db.Create(&models.Client{ID: 1, Name: "Ivan", Telephone: "0991234567"})
	db.Create(&models.Client{ID: 2, Name: "Petro", Telephone: "0507654321"})
	db.Create(&models.Vehicle{ID: 1, Brand: "Toyota", Model: "Corolla", ManufactureYear: 2020, ClientID: 1})

	w := performRequest(router, http.MethodPut, "/vehicles/1", map[string]interface{}{
		"brand":            "Toyota",
		"model":            "Camry",
		"manufacture_year": 2021,
		"client_id":        2,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var vehicle models.Vehicle
	db.First(&vehicle, 1)
	assert.Equal(t, "Camry", vehicle.Model)
	assert.Equal(t, 2021, vehicle.ManufactureYear)
	assert.Equal(t, uint(2), vehicle.ClientID)
}

func TestUpdateVehicleRejectsDanglingClient(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter()
	router.PUT("/vehicles/:id", UpdateVehicle)

	db.Create(&models.Client{ID: 1, Name: "Ivan", Telephone: "0991234567"})
	db.Create(&models.Vehicle{ID: 1, Brand: "Toyota", Model: "Corolla", ManufactureYear: 2020, ClientID: 1})

	w := performRequest(router, http.MethodPut, "/vehicles/1", map[string]interface{}{
		"brand":            "Toyota",
		"model":            "Corolla",
		"manufacture_year": 2020,
		"client_id":        42,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(t, w))
}

func TestVehicleNotFound(t *testing.T) {
	setupTestDB(t)
	router := setupTestRouter()
	router.GET("/vehicles/:id", GetVehicle)

	w := performRequest(router, http.MethodGet, "/vehicles/3", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "VEHICLE_NOT_FOUND", errorCode(t, w))
}
