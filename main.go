package main

import (
	"context"
	"time"

	"github.com/hotelio/frontdesk/config"
	"github.com/hotelio/frontdesk/internal/consumer"
	"github.com/hotelio/frontdesk/internal/handler"
	"github.com/hotelio/frontdesk/internal/middleware"
	"github.com/hotelio/frontdesk/internal/repository"
	"github.com/hotelio/frontdesk/internal/service"
	"github.com/hotelio/frontdesk/pkg/database"
	"github.com/hotelio/frontdesk/pkg/rabbitmq"
	"github.com/hotelio/frontdesk/pkg/redisstore"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	db := database.NewPostgresDB(cfg.DSN())

	// Notifications are best effort: without a broker the API still runs.
	var publisher service.Publisher
	if cfg.RabbitURL != "" {
		pub, err := rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.WithError(err).Warn("rabbitmq unavailable, notifications disabled")
		} else {
			defer pub.Close()
			publisher = pub

			mqConsumer, err := rabbitmq.NewConsumer(cfg.RabbitURL)
			if err != nil {
				log.WithError(err).Warn("rabbitmq consumer unavailable")
			} else {
				defer mqConsumer.Close()
				msgs, err := mqConsumer.Consume()
				if err != nil {
					log.WithError(err).Warn("failed to start consuming notifications")
				} else {
					consumer.NewNotificationConsumer(log).Start(msgs)
				}
			}
		}
	}
	notifier := service.NewNotifier(publisher, log)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.WithError(err).Fatal("redis unavailable; step-up authorization requires it")
	}
	cancel()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	productRepo := repository.NewProductRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)
	shiftRepo := repository.NewShiftRepository(db)

	// Services
	pricing := service.NewPricingCalculator()
	gate := service.NewAuthorizationGate()
	stepUp := service.NewStepUpService(userRepo, redisstore.NewStepUpStore(redisClient), cfg.StepUpTTL)
	authSvc := service.NewAuthService(userRepo, []byte(cfg.JWTSecret), cfg.TokenTTL)
	roomSvc := service.NewRoomService(roomRepo)
	customerSvc := service.NewCustomerService(customerRepo)
	productSvc := service.NewProductService(productRepo, gate)
	ledgerSvc := service.NewLedgerService(bookingRepo, roomRepo, customerRepo, productRepo, ledgerRepo, pricing, gate, stepUp, notifier)
	shiftSvc := service.NewShiftService(shiftRepo, ledgerRepo, notifier)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.NewErrorHandler(log)
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.WithFields(logrus.Fields{
				"method": v.Method,
				"uri":    v.URI,
				"status": v.Status,
			}).Info("request")
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "frontdesk"})
	})

	authMw := middleware.NewAuthMiddleware(authSvc)
	handler.NewAuthHandler(authSvc, stepUp).RegisterRoutes(e, authMw)

	api := e.Group("/api/v1", authMw.Authenticate)
	handler.NewRoomHandler(roomSvc).RegisterRoutes(api.Group("/rooms"), authMw)
	handler.NewBookingHandler(ledgerSvc).RegisterRoutes(api.Group("/bookings"))
	handler.NewShiftHandler(shiftSvc).RegisterRoutes(api.Group("/shifts"), authMw)
	handler.NewCatalogHandler(customerSvc, productSvc).RegisterRoutes(api)
	handler.NewAdminHandler(authSvc).RegisterRoutes(api.Group("/admin", authMw.RequireOperator))

	log.Infof("frontdesk starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
