package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/evhub/event-booking/internal/config"
	"github.com/evhub/event-booking/internal/database"
	"github.com/evhub/event-booking/internal/handler"
	"github.com/evhub/event-booking/internal/middleware"
	"github.com/evhub/event-booking/internal/queue"
	"github.com/evhub/event-booking/internal/repository"
	"github.com/evhub/event-booking/internal/router"
)

func main() {
	// .env is optional; real deployments set the variables directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional: a nil client disables caching and rate limiting.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; cache and rate limiting disabled")
	}

	userRepo := repository.NewUserRepo(db)
	tokenRepo := repository.NewTokenRepo(db)
	eventRepo := repository.NewEventRepo(db)
	bookingRepo := repository.NewBookingRepo(db)

	authHandler := handler.NewAuthHandler(cfg, userRepo, tokenRepo)
	publicEvents := handler.NewPublicEventHandler(eventRepo)
	adminEvents := handler.NewAdminEventHandler(eventRepo)
	bookings := handler.NewBookingHandler(bookingRepo, eventRepo)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authHandler, cfg.JWTSecret)
	router.RegisterPublic(e, publicEvents, middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	router.RegisterAdmin(e, adminEvents, cfg.JWTSecret)
	router.RegisterBookings(e, bookings, cfg.JWTSecret)

	// Background consumer appends confirmed bookings to logs/booking.log.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
