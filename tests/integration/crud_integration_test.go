package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/autoservice/station-api/config"
	"github.com/autoservice/station-api/controllers"
	"github.com/autoservice/station-api/models"
	"github.com/autoservice/station-api/tests/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// CRUDIntegrationTestSuite exercises the full create/read/update/delete flow
// across related entities through the HTTP layer
type CRUDIntegrationTestSuite struct {
	suite.Suite
	router *gin.Engine
	db     *gorm.DB
}

// SetupSuite runs once before all tests
func (suite *CRUDIntegrationTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	testutil.MustSetTestEnvironment(suite.T())
}

// SetupTest runs before each test
func (suite *CRUDIntegrationTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&models.Client{},
		&models.Master{},
		&models.Responsible{},
		&models.ProvidedService{},
		&models.RepairPart{},
		&models.Vehicle{},
		&models.WarrantyCard{},
		&models.RepairSession{},
		&models.RepairSessionPart{},
		&models.RepairSessionService{},
	)
	suite.NoError(err)

	config.SetDB(db)

	suite.router = gin.New()

	clients := suite.router.Group("/clients")
	{
		clients.GET("/", controllers.ListClients)
		clients.GET("/:id", controllers.GetClient)
		clients.POST("/", controllers.CreateClient)
		clients.PUT("/:id", controllers.UpdateClient)
		clients.DELETE("/:id", controllers.DeleteClient)
	}
	masters := suite.router.Group("/masters")
	{
		masters.POST("/", controllers.CreateMaster)
	}
	responsibles := suite.router.Group("/responsibles")
	{
		responsibles.POST("/", controllers.CreateResponsible)
	}
	vehicles := suite.router.Group("/vehicles")
	{
		vehicles.GET("/:id", controllers.GetVehicle)
		vehicles.POST("/", controllers.CreateVehicle)
	}
	repairSessions := suite.router.Group("/repairsessions")
	{
		repairSessions.GET("/:id", controllers.GetRepairSession)
		repairSessions.POST("/", controllers.CreateRepairSession)
	}
}

func (suite *CRUDIntegrationTestSuite) postJSON(path string, body map[string]interface{}) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.NoError(err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *CRUDIntegrationTestSuite) getJSON(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *CRUDIntegrationTestSuite) decodeData(w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	suite.NoError(err)
	data, ok := response["data"].(map[string]interface{})
	suite.True(ok, "Response data should be an object: %s", w.Body.String())
	return data
}

// TestClientVehicleRepairSessionFlow builds the full chain of related
// entities the way a front desk would during an intake
func (suite *CRUDIntegrationTestSuite) TestClientVehicleRepairSessionFlow() {
	// Client
	w := suite.postJSON("/clients/", map[string]interface{}{
		"name":      "Ivan",
		"telephone": "0991234567",
	})
	suite.Equal(http.StatusCreated, w.Code)
	client := suite.decodeData(w)
	suite.Equal(float64(1), client["id"])

	// Vehicle owned by the client
	w = suite.postJSON("/vehicles/", map[string]interface{}{
		"brand":            "Toyota",
		"model":            "Corolla",
		"manufacture_year": 2020,
		"client_id":        1,
	})
	suite.Equal(http.StatusCreated, w.Code)
	vehicle := suite.decodeData(w)
	suite.Equal(float64(1), vehicle["id"])

	// Staff
	w = suite.postJSON("/responsibles/", map[string]interface{}{
		"name":      "Oksana",
		"telephone": "0663334455",
	})
	suite.Equal(http.StatusCreated, w.Code)

	w = suite.postJSON("/masters/", map[string]interface{}{
		"name":      "Taras",
		"telephone": "0972223344",
	})
	suite.Equal(http.StatusCreated, w.Code)

	// Repair session tying it all together
	w = suite.postJSON("/repairsessions/", map[string]interface{}{
		"order_number":   "RS-001",
		"date_start":     "2026-03-01T09:00:00Z",
		"total_sum":      1000,
		"paid_sum":       500,
		"if_finished":    false,
		"vehicle_id":     1,
		"responsible_id": 1,
		"master_id":      1,
	})
	suite.Equal(http.StatusCreated, w.Code)
	session := suite.decodeData(w)
	suite.Equal(float64(1), session["id"])
	suite.Equal("RS-001", session["order_number"])

	// Read the session back
	w = suite.getJSON("/repairsessions/1")
	suite.Equal(http.StatusOK, w.Code)
	session = suite.decodeData(w)
	suite.Equal(float64(1), session["vehicle_id"])
	suite.Equal(float64(500), session["paid_sum"])
}

// TestRepairSessionRejectsUnknownVehicle checks the dangling-reference guard
// through the full router
func (suite *CRUDIntegrationTestSuite) TestRepairSessionRejectsUnknownVehicle() {
	w := suite.postJSON("/responsibles/", map[string]interface{}{"name": "Oksana", "telephone": "066"})
	suite.Equal(http.StatusCreated, w.Code)
	w = suite.postJSON("/masters/", map[string]interface{}{"name": "Taras", "telephone": "097"})
	suite.Equal(http.StatusCreated, w.Code)

	w = suite.postJSON("/repairsessions/", map[string]interface{}{
		"order_number":   "RS-002",
		"date_start":     "2026-03-01T09:00:00Z",
		"total_sum":      100,
		"paid_sum":       0,
		"if_finished":    false,
		"vehicle_id":     999,
		"responsible_id": 1,
		"master_id":      1,
	})
	suite.Equal(http.StatusBadRequest, w.Code)

	var count int64
	suite.db.Model(&models.RepairSession{}).Count(&count)
	suite.Equal(int64(0), count)
}

// TestDeletedClientIsGone covers delete followed by get through the router
func (suite *CRUDIntegrationTestSuite) TestDeletedClientIsGone() {
	w := suite.postJSON("/clients/", map[string]interface{}{
		"name":      "Ivan",
		"telephone": "0991234567",
	})
	suite.Equal(http.StatusCreated, w.Code)

	req := httptest.NewRequest(http.MethodDelete, "/clients/1", nil)
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)
	suite.Equal(http.StatusOK, rec.Code)

	w = suite.getJSON("/clients/1")
	suite.Equal(http.StatusNotFound, w.Code)
}

// TearDownTest runs after each test
func (suite *CRUDIntegrationTestSuite) TearDownTest() {
	config.SetDB(nil)
}

func TestCRUDIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CRUDIntegrationTestSuite))
}
