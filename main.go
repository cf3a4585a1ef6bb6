package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"resort-backend/config"
	"resort-backend/controllers"
	"resort-backend/middleware"
	"resort-backend/routes"
	"resort-backend/services"
	"resort-backend/session"
	"resort-backend/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "dev-secret-change-me"
		log.Println("⚠️  JWT_SECRET not set; using insecure development secret")
	}

	// Connect database (config.ConnectDatabase should set config.DB)
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied (if configured).")

	// Session registry ticks every authenticated bearer token through the
	// idle state machine.
	sessions := session.NewRegistry(session.DefaultTimeout, session.WarningWindow)
	jwtService := utils.NewJWTService(jwtSecret, 12*time.Hour)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, sessions, db)

	// Initialize services
	guestService := services.NewGuestService(db)
	bookingService := services.NewBookingService(db)
	paymentService := services.NewPaymentService(db)
	reviewService := services.NewReviewService(db)
	promotionService := services.NewPromotionService(db)
	inventoryService := services.NewInventoryService(db)
	reportService := services.NewReportService(db)
	activityService := services.NewActivityService(db)

	// Initialize controllers
	ctrls := routes.Controllers{
		Auth:      controllers.NewAuthController(db, jwtService, sessions, activityService),
		Booking:   controllers.NewBookingController(bookingService, guestService, activityService),
		Guest:     controllers.NewGuestController(guestService),
		Payment:   controllers.NewPaymentController(paymentService, activityService),
		Review:    controllers.NewReviewController(reviewService, activityService),
		Promotion: controllers.NewPromotionController(promotionService, activityService),
		Inventory: controllers.NewInventoryController(inventoryService, activityService),
		Report:    controllers.NewReportController(reportService, activityService),
		Activity:  controllers.NewActivityController(activityService),
	}

	// Build router
	router := routes.SetupRouter(ctrls, authMiddleware)

	// Port from env (prefer), fallback to 8080
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	// Create context with timeout for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
