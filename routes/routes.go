package routes

import (
	"sentinel-vault-service/config"
	"sentinel-vault-service/controllers"
	_ "sentinel-vault-service/docs"
	"sentinel-vault-service/middleware"
	"sentinel-vault-service/services/container"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter 初始化并返回配置好的路由
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// 初始化 Gin
	r := gin.Default()

	// 添加 CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})
	// 设置正确的Content-Type，确保UTF-8编码
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		c.Next()
	})
	// 创建服务容器
	serviceContainer := container.NewServiceContainer(db, cfg, nil)
	// 初始化中间件
	middleware.InitAuthMiddleware(cfg, serviceContainer.GetRedisService())
	// 添加 Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册路由
	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes 配置所有API路由
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// API 路由根路径
	api := r.Group("/api")
	// 注册公共路由
	registerPublicRoutes(api, container)
	// 注册需要认证的路由
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes 注册公共路由
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 健康检查
	api.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// 认证路由，登录入口按IP限流防止暴力破解
	api.POST("/auth/signup", controllers.HandleAuthFunc(container, "signup"))
	api.POST("/auth/verify-email", controllers.HandleAuthFunc(container, "verifyEmail"))
	api.POST("/auth/login", middleware.RateLimit(1, 5), controllers.HandleAuthFunc(container, "login"))

	// 现场上报入口，与设备对接，不要求控制台会话
	api.POST("/requests", controllers.HandleRequestFunc(container, "createRequest"))
}

// registerAuthenticatedRoutes 注册需要认证的路由
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 任意已认证角色
	auth := api.Group("/")
	auth.Use(middleware.Authentication())

	// 会话路由
	auth.GET("/auth/session", controllers.HandleAuthFunc(container, "session"))
	auth.POST("/auth/logout", controllers.HandleAuthFunc(container, "logout"))

	// 救援请求信息流，所有仪表盘轮询此接口
	auth.GET("/requests", controllers.HandleRequestFunc(container, "listRequests"))
	auth.GET("/requests/:id", controllers.HandleRequestFunc(container, "getRequest"))

	// 医疗物资清单，本期只读
	auth.GET("/health-inventory", controllers.HandleInventoryFunc(container, "listHealthInventory"))

	// 协调频道，警察与指挥中心可用
	police := api.Group("/")
	police.Use(middleware.AuthenticatePolice())
	police.GET("/chat", controllers.HandleChatFunc(container, "listMessages"))
	police.POST("/chat", controllers.HandleChatFunc(container, "postMessage"))

	// 指挥中心专属路由
	admin := api.Group("/")
	admin.Use(middleware.AuthenticateAdmin())
	admin.GET("/inventory", controllers.HandleInventoryFunc(container, "listInventory"))
	admin.POST("/inventory/restock", controllers.HandleInventoryFunc(container, "restock"))
	admin.PUT("/requests/:id/status", controllers.HandleRequestFunc(container, "updateStatus"))
	admin.POST("/requests/:id/allocate", controllers.HandleAllocationFunc(container, "allocate"))
	admin.GET("/allocations", controllers.HandleAllocationFunc(container, "listAllocations"))
}
