package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"restaurant-api/config"
	"restaurant-api/events"
	"restaurant-api/handlers"
	"restaurant-api/logger"
	"restaurant-api/repository"
	"restaurant-api/routes"
	"restaurant-api/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("error", "json", os.Stderr).Error("load config", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	db, err := config.OpenDB(cfg.DB)
	if err != nil {
		log.Error("init database", "driver", cfg.DB.Driver, "error", err)
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Error("sql DB", "error", err)
		os.Exit(1)
	}
	defer sqlDB.Close()
	log.Info("database connected and migrated", "driver", cfg.DB.Driver)

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.RabbitMQURL != "" {
		rp, err := events.DialRabbit(cfg.RabbitMQURL, cfg.RabbitMQExchange)
		if err != nil {
			log.Error("connect rabbitmq", "error", err)
			os.Exit(1)
		}
		publisher = rp
		log.Info("publishing order events", "exchange", cfg.RabbitMQExchange)
	}
	defer publisher.Close()

	tableRepo := repository.NewGormTableRepository(db)
	customerRepo := repository.NewGormCustomerRepository(db)
	menuRepo := repository.NewGormMenuRepository(db)
	bookingRepo := repository.NewGormBookingRepository(db)
	orderRepo := repository.NewGormOrderRepository(db)
	userRepo := repository.NewGormUserRepository(db)

	authService := service.NewAuthService(userRepo)
	if cfg.AdminEmail != "" {
		created, err := authService.EnsureAdmin(context.Background(), cfg.AdminName, cfg.AdminEmail, cfg.AdminPassword)
		if err != nil {
			log.Error("bootstrap admin", "error", err)
			os.Exit(1)
		}
		if created {
			log.Info("bootstrap admin created", "email", cfg.AdminEmail)
		}
	}

	h := &handlers.Handler{
		Tables:    service.NewTableService(tableRepo),
		Customers: service.NewCustomerService(customerRepo),
		Menus:     service.NewMenuService(menuRepo),
		Bookings:  service.NewBookingService(bookingRepo, tableRepo, customerRepo),
		Orders:    service.NewOrderService(orderRepo, menuRepo, tableRepo, customerRepo, publisher, log),
		Auth:      authService,
		JWTSecret: cfg.JWTSecret,
		Log:       log,
	}

	r := routes.NewRouter(h, routes.Options{
		AuthEnabled: cfg.AuthEnabled,
		JWTSecret:   cfg.JWTSecret,
		Log:         log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server running", "addr", "http://localhost:"+cfg.Port, "auth_enabled", cfg.AuthEnabled)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown", "error", err)
	}
}
