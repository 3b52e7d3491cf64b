package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // Loads .env files for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/training-center-booking/internal/booking"
	"github.com/iliyamo/training-center-booking/internal/config"
	"github.com/iliyamo/training-center-booking/internal/database"
	"github.com/iliyamo/training-center-booking/internal/handler"
	"github.com/iliyamo/training-center-booking/internal/middleware"
	"github.com/iliyamo/training-center-booking/internal/queue"
	"github.com/iliyamo/training-center-booking/internal/repository"
	"github.com/iliyamo/training-center-booking/internal/router"
	queue_publisher "github.com/iliyamo/training-center-booking/internal/service"
)

func main() {
	_ = godotenv.Load() // optional .env; real deployments set env vars directly
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional: a nil client disables caching and rate limiting.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; cache and rate limiting disabled")
	}

	centerRepo := repository.NewCenterRepo(db)
	courseRepo := repository.NewCourseRepo(db)
	enrollRepo := repository.NewEnrollmentRepo(db)

	store := repository.NewBookingStore(db, courseRepo, enrollRepo)
	coordinator := booking.NewCoordinator(store)

	publicH := &handler.PublicHandler{Centers: centerRepo, Courses: courseRepo}
	bookingH := handler.NewBookingHandler(coordinator, enrollRepo, queue_publisher.PublishEnrollmentBooked)
	enrollH := &handler.EnrollmentHandler{Enrollments: enrollRepo}

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterPublic(e, publicH, middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	router.RegisterBooking(e, bookingH, enrollH, middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	// Drain enrollment.booked into logs/enrollment.log in the background.
	go func() {
		if err := queue.StartEnrollmentConsumer(); err != nil {
			log.Printf("enrollment-consumer: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err)
	}
}
