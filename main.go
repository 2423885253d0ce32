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

	"hms-backend/config"
	"hms-backend/controllers"
	"hms-backend/routes"
	"hms-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("config.DB is nil after ConnectDatabase()")
	}
	log.Println("database connection established, migrations applied")

	opts := config.LoadOptions()

	// Services
	availabilitySvc := services.NewAvailabilityService(db)
	bookingSvc := services.NewBookingService(db, services.BookingOptions{
		RecomputeRoomStatusOnCancel: opts.RecomputeRoomStatusOnCancel,
	})
	roomSvc := services.NewRoomService(db)
	guestSvc := services.NewGuestService(db)
	paymentSvc := services.NewPaymentService(db)
	catalog := services.NewServiceCatalog(db)
	cleaningSvc := services.NewCleaningService(db)

	// Controllers
	roomController := controllers.NewRoomController(roomSvc, availabilitySvc)
	bookingController := controllers.NewBookingController(bookingSvc)
	guestController := controllers.NewGuestController(guestSvc)
	paymentController := controllers.NewPaymentController(paymentSvc)
	serviceController := controllers.NewServiceController(catalog)
	cleaningController := controllers.NewCleaningController(cleaningSvc)

	router := routes.SetupRouter(
		roomController,
		bookingController,
		guestController,
		paymentController,
		serviceController,
		cleaningController,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server stopped gracefully")
}
