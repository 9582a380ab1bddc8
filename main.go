package main

import (
	"log"
	"net/http"

	"github.com/autoservice/station-api/config"
	"github.com/autoservice/station-api/controllers"
	"github.com/autoservice/station-api/models"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Basic logging
	log.Println("Starting Auto Service Station API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	db := config.GetDB()
	if err := db.AutoMigrate(
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
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	// Initialize Gin router
	router := setupRouter()

	// Start server
	port := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter builds the Gin engine with CORS and every resource route group
func setupRouter() *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
	}))

	// Health check endpoint
	router.GET("/health", healthCheck)

	// Database status endpoint
	router.GET("/database/status", databaseStatus)

	clients := router.Group("/clients")
	{
		clients.GET("/", controllers.ListClients)
		clients.GET("/:id", controllers.GetClient)
		clients.POST("/", controllers.CreateClient)
		clients.PUT("/:id", controllers.UpdateClient)
		clients.DELETE("/:id", controllers.DeleteClient)
	}

	masters := router.Group("/masters")
	{
		masters.GET("/", controllers.ListMasters)
		masters.GET("/:id", controllers.GetMaster)
		masters.POST("/", controllers.CreateMaster)
		masters.PUT("/:id", controllers.UpdateMaster)
		masters.DELETE("/:id", controllers.DeleteMaster)
	}

	providedServices := router.Group("/providedservices")
	{
		providedServices.GET("/", controllers.ListProvidedServices)
		providedServices.GET("/:id", controllers.GetProvidedService)
		providedServices.POST("/", controllers.CreateProvidedService)
		providedServices.PUT("/:id", controllers.UpdateProvidedService)
		providedServices.DELETE("/:id", controllers.DeleteProvidedService)
	}

	repairParts := router.Group("/repairparts")
	{
		repairParts.GET("/", controllers.ListRepairParts)
		repairParts.GET("/:id", controllers.GetRepairPart)
		repairParts.POST("/", controllers.CreateRepairPart)
		repairParts.PUT("/:id", controllers.UpdateRepairPart)
		repairParts.DELETE("/:id", controllers.DeleteRepairPart)
	}

	responsibles := router.Group("/responsibles")
	{
		responsibles.GET("/", controllers.ListResponsibles)
		responsibles.GET("/:id", controllers.GetResponsible)
		responsibles.POST("/", controllers.CreateResponsible)
		responsibles.PUT("/:id", controllers.UpdateResponsible)
		responsibles.DELETE("/:id", controllers.DeleteResponsible)
	}

	vehicles := router.Group("/vehicles")
	{
		vehicles.GET("/", controllers.ListVehicles)
		vehicles.GET("/:id", controllers.GetVehicle)
		vehicles.POST("/", controllers.CreateVehicle)
		vehicles.PUT("/:id", controllers.UpdateVehicle)
		vehicles.DELETE("/:id", controllers.DeleteVehicle)
	}

	warrantyCards := router.Group("/warrantiescards")
	{
		warrantyCards.GET("/", controllers.ListWarrantyCards)
		warrantyCards.GET("/:id", controllers.GetWarrantyCard)
		warrantyCards.POST("/", controllers.CreateWarrantyCard)
		warrantyCards.PUT("/:id", controllers.UpdateWarrantyCard)
		warrantyCards.DELETE("/:id", controllers.DeleteWarrantyCard)
	}

	repairSessions := router.Group("/repairsessions")
	{
		repairSessions.GET("/", controllers.ListRepairSessions)
		repairSessions.GET("/:id", controllers.GetRepairSession)
		repairSessions.POST("/", controllers.CreateRepairSession)
		repairSessions.PUT("/:id", controllers.UpdateRepairSession)
		repairSessions.DELETE("/:id", controllers.DeleteRepairSession)
	}

	return router
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Auto Service Station API is running",
	})
}

// databaseStatus checks database connectivity and returns table information
func databaseStatus(c *gin.Context) {
	db := config.GetDB()

	// Get the underlying SQL database to check connection
	sqlDB, err := db.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to get database instance",
			},
		})
		return
	}

	// Ping the database to verify connection
	if err := sqlDB.Ping(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_CONNECTION_ERROR",
				"message": "Database connection failed",
			},
		})
		return
	}

	// Get list of tables
	var tables []string
	if err := db.Raw("SELECT tablename FROM pg_tables WHERE schemaname = 'public'").Scan(&tables).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_QUERY_ERROR",
				"message": "Failed to query tables",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database connected",
		"tables":  tables,
	})
}
