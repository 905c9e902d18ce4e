package main

import (
	"context"
	"encoding/hex"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/maborges/travelmart/config"
	"github.com/maborges/travelmart/internal/auth"
	"github.com/maborges/travelmart/internal/events"
	handler "github.com/maborges/travelmart/internal/handler/http"
	"github.com/maborges/travelmart/internal/logger"
	"github.com/maborges/travelmart/internal/repository"
	"github.com/maborges/travelmart/internal/repository/postgres"
	"github.com/maborges/travelmart/internal/service"
	"go.uber.org/zap"
)

const defaultTokenKey = "2f9ad43c0f28e6f1b07fce551e06ad44"

func main() {

	// create new config
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer logger.Log.Sync()

	// create context
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// initialize database
	db, err := postgres.New(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Log.Fatal("Error initializing database", zap.Error(err))
	}
	defer db.Close()

	// migrate database
	err = db.Migrate()
	if err != nil {
		logger.Log.Fatal("Error migrating database", zap.Error(err))
	}

	tokenKeyHex := cfg.TokenKey
	if tokenKeyHex == "" {
		tokenKeyHex = defaultTokenKey
	}
	tokenKey, err := hex.DecodeString(tokenKeyHex)
	if err != nil {
		logger.Log.Fatal("Error extracting token key", zap.Error(err))
	}
	token := auth.NewAuthToken(tokenKey)

	// payment events, noop unless NATS is configured
	var publisher service.EventPublisher = events.NopPublisher{}
	if cfg.NATSURL != "" {
		natsPublisher, err := events.NewNATSPublisher(cfg.NATSURL)
		if err != nil {
			logger.Log.Fatal("Error connecting to NATS", zap.Error(err))
		}
		defer natsPublisher.Close()
		publisher = natsPublisher
	}

	// dependency injection
	// user
	userRepo := repository.NewUserRepository(db)
	userService := service.NewUserService(userRepo, token)
	userHandler := handler.NewUserHandler(userService)

	// checkout
	saleRepo := repository.NewSaleRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	installmentRepo := repository.NewInstallmentRepository(db)
	mileageRepo := repository.NewMileageRepository(db)
	checkoutService := service.NewCheckoutService(saleRepo, paymentRepo, installmentRepo, mileageRepo, db, publisher)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService)

	// installments
	installmentService := service.NewInstallmentService(saleRepo, paymentRepo, installmentRepo, db, publisher)
	installmentHandler := handler.NewInstallmentHandler(installmentService)

	// mileage
	mileageService := service.NewMileageService(mileageRepo)
	mileageHandler := handler.NewMileageHandler(mileageService)

	router := chi.NewRouter()

	router.Use(handler.Logging(logger.Log))

	router.Post("/api/cliente/registro", userHandler.RegisterUser())
	router.Post("/api/cliente/login", userHandler.LoginUser())

	// routes that require authentication
	router.Group(func(group chi.Router) {
		group.Use(handler.AuthMiddleware(token))
		group.Post("/api/cliente/checkout", checkoutHandler.Checkout())
		group.Get("/api/cliente/millas", mileageHandler.GetMileageBalance())
		group.Get("/api/cliente/ventas/{id}/cuotas", installmentHandler.ListSaleInstallments())
		group.Post("/api/cliente/cuotas/{id}/pagar", installmentHandler.PayInstallment())
	})

	logger.Log.Info("Running server", zap.String("addr", cfg.ServerAddr))

	if err := http.ListenAndServe(cfg.ServerAddr, router); err != nil {
		logger.Log.Fatal("Error starting server", zap.Error(err))
	}
}
