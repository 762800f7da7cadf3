package routes

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "fieldserve/docs" // This will be auto-generated
	"fieldserve/internal/adapter/http/handlers"
	repository2 "fieldserve/internal/adapter/persistence/repository"
	appconfig "fieldserve/internal/config"
	"fieldserve/internal/infrastructure/cache"
	"fieldserve/internal/infrastructure/database"
	"fieldserve/internal/infrastructure/messaging"
	"fieldserve/internal/infrastructure/payments"
	"fieldserve/internal/usecase"
	"fieldserve/internal/usecase/interfaces"
)

var router = gin.Default()

// Run wires the dependency graph and starts the server.
func Run(cfg *appconfig.Config, logger *zap.Logger) {
	setMiddlewares(logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes(cfg, logger)

	if err := router.Run(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
		logger.Fatal("failed to start the application", zap.Error(err))
	}
}

func getRoutes(cfg *appconfig.Config, logger *zap.Logger) {
	ctx := context.Background()

	pool, err := database.ConnectPostgres(ctx, cfg.DB)
	if err != nil {
		logger.Fatal("postgres connection failed", zap.Error(err))
	}
	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		logger.Fatal("dynamodb client setup failed", zap.Error(err))
	}

	workOrderRepo := repository2.NewWorkOrderPostgresRepository(pool)
	settingsRepo := repository2.NewSettingsPostgresRepository(pool)
	notificationRepo := repository2.NewNotificationDynamoRepository(ddb, cfg.DynamoDB.NotificationsTable)

	// Redis is optional: without it settings are read straight from Postgres
	// and de-duplication falls back to a process-local window.
	var settingsSource interfaces.ISettingsSource = settingsRepo
	var deduper interfaces.IDeduper = cache.NewMemoryDeduper()
	if rdb, err := cache.ConnectRedis(ctx, cfg.Redis); err != nil {
		logger.Warn("redis unavailable, using in-process fallbacks", zap.Error(err))
	} else {
		settingsSource = repository2.NewCachedSettingsSource(settingsRepo, rdb, logger)
		deduper = cache.NewRedisDeduper(rdb)
	}

	var email, sms interfaces.ITransport
	if publisher, err := messaging.NewAMQPPublisher(cfg.MQ); err != nil {
		logger.Warn("rabbitmq unavailable, outbound notification channels disabled", zap.Error(err))
	} else {
		email = messaging.NewEmailTransport(publisher, cfg.MQ.EmailQueue)
		sms = messaging.NewSMSTransport(publisher, cfg.MQ.SMSQueue)
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPago.AccessToken)
	if err != nil {
		logger.Warn("Mercado Pago gateway not configured", zap.Error(err))
	} else {
		paymentGateway = mpGateway
	}

	dispatcher := usecase.NewNotificationDispatcher(notificationRepo, deduper, settingsSource, email, sms, logger)
	workOrderUseCase := usecase.NewWorkOrderUseCase(workOrderRepo, settingsSource, logger)
	orchestrator := usecase.NewTransitionOrchestrator(workOrderRepo, settingsSource, dispatcher, paymentGateway, logger)

	workOrderHandler := handlers.NewWorkOrderHandler(workOrderUseCase)
	transitionHandler := handlers.NewTransitionHandler(orchestrator)
	notificationHandler := handlers.NewNotificationHandler(dispatcher)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, workOrderHandler, transitionHandler, notificationHandler)
}

func setMiddlewares(logger *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}
