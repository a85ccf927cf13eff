package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/kenemosam/saluni/internal/config"
	"github.com/kenemosam/saluni/internal/email"
	"github.com/kenemosam/saluni/internal/handler"
	authhandler "github.com/kenemosam/saluni/internal/handler/auth"
	bookinghandler "github.com/kenemosam/saluni/internal/handler/booking"
	cataloghandler "github.com/kenemosam/saluni/internal/handler/catalog"
	paymenthandler "github.com/kenemosam/saluni/internal/handler/payment"
	reviewhandler "github.com/kenemosam/saluni/internal/handler/review"
	salonhandler "github.com/kenemosam/saluni/internal/handler/salon"
	"github.com/kenemosam/saluni/internal/middleware"
	"github.com/kenemosam/saluni/internal/repository/postgres"
	"github.com/kenemosam/saluni/internal/router"
	authservice "github.com/kenemosam/saluni/internal/service/auth"
	bookingservice "github.com/kenemosam/saluni/internal/service/booking"
	catalogservice "github.com/kenemosam/saluni/internal/service/catalog"
	paymentservice "github.com/kenemosam/saluni/internal/service/payment"
	reviewservice "github.com/kenemosam/saluni/internal/service/review"
	salonservice "github.com/kenemosam/saluni/internal/service/salon"
	"github.com/kenemosam/saluni/pkg/auth"
	"github.com/kenemosam/saluni/pkg/logger"
	"github.com/kenemosam/saluni/pkg/metrics"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.NewLogger(nil)

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	customerRepo := postgres.NewCustomerRepository(db)
	salonRepo := postgres.NewSalonRepository(db)
	serviceRepo := postgres.NewServiceRepository(db)
	stylistRepo := postgres.NewStylistRepository(db)
	availabilityRepo := postgres.NewAvailabilityRepository(db)
	bookingRepo := postgres.NewBookingRepository(db)
	paymentRepo := postgres.NewPaymentRepository(db)
	reviewRepo := postgres.NewReviewRepository(db)
	outboxRepo := postgres.NewOutboxRepository(db)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		Secret:             cfg.JWT.Secret,
		RefreshSecret:      cfg.JWT.RefreshSecret,
		ExpiryHours:        cfg.JWT.ExpiryHours,
		RefreshExpiryHours: cfg.JWT.RefreshExpiryHours,
	})

	notifier := email.NewService(cfg.Email, salonRepo, appLogger)

	authSvc := authservice.NewService(customerRepo, jwtService)
	salonSvc := salonservice.NewService(salonRepo, reviewRepo)
	catalogSvc := catalogservice.NewService(salonRepo, serviceRepo, stylistRepo, availabilityRepo)
	bookingSvc := bookingservice.NewService(
		bookingRepo, availabilityRepo, serviceRepo, stylistRepo, salonRepo, outboxRepo, notifier)
	paymentSvc := paymentservice.NewService(paymentRepo, bookingRepo)
	reviewSvc := reviewservice.NewService(reviewRepo, bookingRepo)

	appMetrics := metrics.NewMetrics("saluni", "api")

	authMiddleware := middleware.NewAuthMiddleware(jwtService)

	h := handler.NewHandler(db)
	authHandler := authhandler.NewHandler(authSvc)
	salonHandler := salonhandler.NewHandler(salonSvc)
	catalogHandler := cataloghandler.NewHandler(catalogSvc)
	bookingHandler := bookinghandler.NewHandler(bookingSvc, appMetrics)
	paymentHandler := paymenthandler.NewHandler(paymentSvc)
	reviewHandler := reviewhandler.NewHandler(reviewSvc)

	routerCfg := router.DefaultConfig()
	if cfg.Server.TimeoutSeconds > 0 {
		routerCfg.Timeout = time.Duration(cfg.Server.TimeoutSeconds) * time.Second
	}

	r := router.NewRouter(
		authMiddleware,
		h,
		authHandler,
		salonHandler,
		catalogHandler,
		bookingHandler,
		paymentHandler,
		reviewHandler,
		routerCfg,
	)
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		appLogger.Info("starting server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
