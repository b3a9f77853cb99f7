package main

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/qwikyankit/qwiky-backend/internal/app/config"
	"github.com/qwikyankit/qwiky-backend/internal/app/consumer"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/modules/mdorder"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/modules/mdpayment"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/modules/mduser"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/repo/rpaddress"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/repo/rporder"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/repo/rppayment"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/repo/rpservice"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/repo/rpuser"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/services/svaddress"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/services/svcatalog"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/services/svorder"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/services/svpayment"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/services/svslot"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/services/svuser"
	"github.com/qwikyankit/qwiky-backend/internal/app/infra/gateway/cashfree"
	"github.com/qwikyankit/qwiky-backend/internal/app/infra/mq/lmstfy"
	"github.com/qwikyankit/qwiky-backend/internal/app/infra/persistence/mysql"
	"github.com/qwikyankit/qwiky-backend/internal/app/infra/persistence/redis"
	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/logger"
	"github.com/qwikyankit/qwiky-backend/internal/app/server/handlers/address"
	"github.com/qwikyankit/qwiky-backend/internal/app/server/handlers/catalog"
	"github.com/qwikyankit/qwiky-backend/internal/app/server/handlers/order"
	"github.com/qwikyankit/qwiky-backend/internal/app/server/handlers/payment"
	"github.com/qwikyankit/qwiky-backend/internal/app/server/handlers/slot"
	"github.com/qwikyankit/qwiky-backend/internal/app/server/handlers/user"
	"github.com/qwikyankit/qwiky-backend/internal/app/server/routers"
)

// App 应用实例（HTTP 引擎 + 后台消费者）
type App struct {
	Engine               *gin.Engine
	NotificationConsumer *consumer.NotificationConsumer
}

// InitializeApp 手工装配依赖图
// infra → repo → module → service → handler → router，返回清理函数
func InitializeApp(cfg *config.Config) (*App, func(), error) {
	appLogger, err := logger.NewZapLogger(cfg.App.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger failed: %w", err)
	}

	db, err := mysql.NewDB(cfg.MySQL.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("init database failed: %w", err)
	}

	redisClient, err := redis.NewPubSubClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		_ = mysql.Close(db)
		return nil, nil, fmt.Errorf("init redis failed: %w", err)
	}

	lmstfyClient := lmstfy.NewClient(cfg.Lmstfy.Host, cfg.Lmstfy.Namespace, cfg.Lmstfy.Token)
	notifier := lmstfy.NewNotifier(lmstfyClient, cfg.Lmstfy.NotifyQueue)

	gateway := cashfree.NewClient(&cfg.Cashfree, appLogger)

	// Repository 层
	userRepo := rpuser.NewUserRepository(db)
	addressRepo := rpaddress.NewAddressRepository(db)
	serviceRepo := rpservice.NewServiceRepository(db)
	orderRepo := rporder.NewOrderRepository(db)
	paymentRepo := rppayment.NewPaymentRepository(db)

	// Module 层
	userModule := mduser.NewUserModule(userRepo)
	orderModule := mdorder.NewOrderModule(orderRepo, userRepo, serviceRepo, addressRepo, paymentRepo)
	paymentModule := mdpayment.NewPaymentModule(paymentRepo, userRepo, serviceRepo, addressRepo)

	// Service 层
	userService := svuser.NewUserService(userModule, appLogger)
	addressService := svaddress.NewAddressService(addressRepo, userRepo, appLogger)
	catalogService := svcatalog.NewCatalogService(serviceRepo)
	slotService := svslot.NewSlotService()
	orderService := svorder.NewOrderService(orderModule, appLogger)

	notifyURL := fmt.Sprintf("%s/api/v1/payment/webhook", cfg.Server.BaseURL)
	paymentService := svpayment.NewPaymentService(
		paymentModule,
		gateway,
		redisClient,
		notifier,
		appLogger,
		cfg.Server.FrontendURL,
		notifyURL,
	)

	// Handler 层
	userHandler := user.NewUserHandler(userService)
	addressHandler := address.NewAddressHandler(addressService)
	catalogHandler := catalog.NewCatalogHandler(catalogService)
	slotHandler := slot.NewSlotHandler(slotService)
	orderHandler := order.NewOrderHandler(orderService)
	paymentHandler := payment.NewPaymentHandler(paymentService, appLogger)

	engine := routers.SetupRoutes(
		userHandler,
		addressHandler,
		catalogHandler,
		slotHandler,
		orderHandler,
		paymentHandler,
		appLogger,
		cfg.Server.FrontendURL,
	)

	notificationConsumer := consumer.NewNotificationConsumer(
		lmstfyClient,
		&consumer.Config{
			QueueName:    cfg.Lmstfy.NotifyQueue,
			Timeout:      cfg.Lmstfy.Timeout,
			TTR:          cfg.Lmstfy.TTR,
			PollInterval: cfg.Lmstfy.PollBackoff,
		},
		appLogger,
	)

	cleanup := func() {
		_ = redisClient.Close()
		_ = mysql.Close(db)
		_ = appLogger.Sync()
	}

	return &App{
		Engine:               engine,
		NotificationConsumer: notificationConsumer,
	}, cleanup, nil
}
