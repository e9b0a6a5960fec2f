package main

import (
	"AgendaDental/cache"
	"AgendaDental/config"
	"AgendaDental/database"
	"AgendaDental/jobs"
	"AgendaDental/repositories"
	"AgendaDental/routes"
	"AgendaDental/utils"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

func main() {
	// Load configuration from environment variables
	config, err := loadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Hash the seed admin password before touching the database
	adminPasswordHash, err := utils.HashPassword(config.AdminPassword)
	if err != nil {
		log.Fatalf("failed to hash admin password: %v", err)
	}

	// Initialize the database
	db, err := database.InitDB(context.Background(), config.DBURL, config.AdminEmail, adminPasswordHash)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Initialize Redis
	if err := database.InitializeRedis(config.RedisAddress); err != nil {
		log.Fatalf("failed to initialize Redis client: %v", err)
	}

	// Initialize the cache utility
	cache, err := cache.NewCache()
	if err != nil {
		log.Fatalf("failed to initialize cache: %v", err)
	}

	// Wire the routes
	handler := routes.SetupRoutes(cache, config, db)

	// Start the daily reminder job
	reminderCron := jobs.StartReminderJob(repositories.NewAppointmentRepository(db, cache))

	// Configure and start the server
	srv := &http.Server{
		Addr:           config.ServerAddress,
		Handler:        handler,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxHeaderBytes: 1 << 20,
		IdleTimeout:    30 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		log.Printf("Starting server on %s", config.ServerAddress)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listenAndServe(): %v", err)
		}
	}()

	// Graceful shutdown handling
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	// Stop scheduling reminder runs before the server goes down
	reminderCron.Stop()

	// Create a context with a timeout for shutdown
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	log.Println("Shutting down server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server shutdown failed: %+v", err)
	}

	wg.Wait() // Wait for all goroutines to finish before exiting
	log.Println("Server exited gracefully")
}

// loadConfig loads configuration from environment variables.
func loadConfig() (*config.AppConfig, error) {
	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		return nil, errors.New("missing DB_URL environment variable")
	}

	redisAddress := os.Getenv("REDIS_URL")
	if redisAddress == "" {
		return nil, errors.New("missing REDIS_URL environment variable")
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@dental.clinic"
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		return nil, errors.New("missing ADMIN_PASSWORD environment variable")
	}

	serverAddress := os.Getenv("SERVER_ADDRESS")
	if serverAddress == "" {
		serverAddress = ":8930"
	}

	return &config.AppConfig{
		DBURL:         dbURL,
		RedisAddress:  redisAddress,
		ServerAddress: serverAddress,
		AdminEmail:    adminEmail,
		AdminPassword: adminPassword,
	}, nil
}
