package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/utppedidos/backend/cache"
	"github.com/utppedidos/backend/controllers"
	"github.com/utppedidos/backend/middlewares"
)

func SetupRouter(db *gorm.DB, statsCache cache.Cache) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	authCtrl := controllers.NewAuthController(db)
	userCtrl := controllers.NewUserController(db)
	cafeteriaCtrl := controllers.NewCafeteriaController(db)
	scheduleCtrl := controllers.NewScheduleController(db)
	productCtrl := controllers.NewProductController(db)
	orderCtrl := controllers.NewOrderController(db)
	statsCtrl := controllers.NewStatsController(db, statsCache)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api")

	// Login/register get a stricter limiter on top of the global one.
	auth := api.Group("/")
	auth.Use(middlewares.NewStrictRateLimiter())
	{
		auth.POST("/register", authCtrl.Register)
		auth.POST("/login", authCtrl.Login)
	}

	api.GET("/cafeterias", cafeteriaCtrl.GetAllCafeterias)
	api.GET("/products/:cafeteria_id", productCtrl.GetProductsByCafeteria)
	api.GET("/schedules", scheduleCtrl.GetAllSchedules)
	api.GET("/stats", statsCtrl.GetStats)

	protected := api.Group("/")
	protected.Use(middlewares.AuthMiddleware())
	{
		protected.GET("/profile", userCtrl.GetProfile)
		protected.POST("/order", orderCtrl.CreateOrder)
		protected.GET("/orders", orderCtrl.GetUserOrders)
		protected.PUT("/order/:id/status", orderCtrl.UpdateOrderStatus)
	}

	return r
}
