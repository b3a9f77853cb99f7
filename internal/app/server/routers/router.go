package routers

import (
	"github.com/gin-gonic/gin"

	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/logger"
	"github.com/qwikyankit/qwiky-backend/internal/app/server/handlers/address"
	"github.com/qwikyankit/qwiky-backend/internal/app/server/handlers/catalog"
	"github.com/qwikyankit/qwiky-backend/internal/app/server/handlers/order"
	"github.com/qwikyankit/qwiky-backend/internal/app/server/handlers/payment"
	"github.com/qwikyankit/qwiky-backend/internal/app/server/handlers/slot"
	"github.com/qwikyankit/qwiky-backend/internal/app/server/handlers/user"
	"github.com/qwikyankit/qwiky-backend/internal/app/server/middlewares"
)

// SetupRoutes 配置所有路由，使用 Route Group 分类
func SetupRoutes(
	userHandler *user.UserHandler,
	addressHandler *address.AddressHandler,
	catalogHandler *catalog.CatalogHandler,
	slotHandler *slot.SlotHandler,
	orderHandler *order.OrderHandler,
	paymentHandler *payment.PaymentHandler,
	log logger.Logger,
	frontendURL string,
) *gin.Engine {
	r := gin.New()

	r.Use(middlewares.Recovery(log))
	r.Use(middlewares.RequestLogger(log))
	r.Use(middlewares.CORS(frontendURL))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "qwiky-backend",
			"message": "Service is running",
		})
	})

	v1 := r.Group("/api/v1")
	{
		users := v1.Group("/users")
		{
			users.POST("/signup", userHandler.Signup)
			users.GET("/:id", userHandler.Get)
			users.PUT("/:id", userHandler.Update)
		}

		addresses := v1.Group("/addresses")
		{
			addresses.POST("", addressHandler.Create)
			addresses.GET("/:userId", addressHandler.ListByUser)
			addresses.PUT("/:id", addressHandler.Update)
		}

		services := v1.Group("/services")
		{
			services.GET("", catalogHandler.List)
			services.GET("/:id", catalogHandler.Get)
		}

		slots := v1.Group("/slots")
		{
			slots.GET("/:locality", slotHandler.List)
		}

		orders := v1.Group("/orders")
		{
			orders.POST("", orderHandler.Create)
			orders.GET("/user/:userId", orderHandler.ListByUser)
			orders.GET("/details/:orderId", orderHandler.GetDetails)
		}

		payments := v1.Group("/payment")
		{
			payments.POST("/create-order", paymentHandler.CreateOrder)
			payments.GET("/verify/:orderRef", paymentHandler.Verify)
			payments.POST("/webhook", paymentHandler.Webhook)
		}
	}

	return r
}
