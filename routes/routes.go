package routes

import (
	"AgendaDental/cache"
	"AgendaDental/config"
	"AgendaDental/controllers"
	"AgendaDental/handlers"
	"AgendaDental/middlewares"
	"AgendaDental/repositories"
	"AgendaDental/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(cache *cache.Cache, config *config.AppConfig, db *gorm.DB) http.Handler {
	// Set Gin to release mode
	gin.SetMode(gin.ReleaseMode)

	// Create a Gin router
	router := gin.Default()

	// Create and apply CORS middleware configuration
	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   []string{"http://localhost:3000", "https://agenda.example.com"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	// Apply rate limiter middleware
	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15,
		Burst:             30,
	}))

	// Apply logging middleware
	router.Use(middlewares.LoggingMiddleware())

	// Initialize repositories, services, and handlers
	accountRepo := repositories.NewAccountRepository(db, cache)
	patientRepo := repositories.NewPatientRepository(db, cache)
	procedureRepo := repositories.NewProcedureRepository(db, cache)
	appointmentRepo := repositories.NewAppointmentRepository(db, cache)
	waitlistRepo := repositories.NewWaitlistRepository(db)
	statsRepo := repositories.NewStatsRepository(db)

	waitlistService := services.NewWaitlistService(waitlistRepo)

	apiController := &controllers.APIController{
		Auth:        handlers.NewAuthHandler(services.NewAuthService(accountRepo)),
		Patient:     handlers.NewPatientHandler(services.NewPatientService(patientRepo)),
		Procedure:   handlers.NewProcedureHandler(services.NewProcedureService(procedureRepo)),
		Appointment: handlers.NewAppointmentHandler(services.NewAppointmentService(appointmentRepo, waitlistService)),
		Waitlist:    handlers.NewWaitlistHandler(waitlistService),
		Dashboard:   handlers.NewDashboardHandler(services.NewDashboardService(statsRepo)),
	}
	apiController.RegisterRoutes(router)

	controllers.SetupRootRoute(router)

	return router
}
