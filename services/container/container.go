package container

import (
	"context"
	"log"
	"sync"
	"time"

	"sentinel-vault-service/config"
	"sentinel-vault-service/services"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// ServiceContainer 管理所有服务的依赖注入
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	redis  *redis.Client

	// 基础服务
	jwtService   services.InterfaceJWTService
	redisService services.InterfaceRedisService

	// 现场广播服务
	mqttService services.InterfaceMQTTService

	// 业务服务
	userService       services.InterfaceUserService
	requestService    services.InterfaceRequestService
	inventoryService  services.InterfaceInventoryService
	allocationService services.InterfaceAllocationService
	chatService       services.InterfaceChatService

	mu sync.RWMutex
}

// NewServiceContainer 创建新的服务容器。
// redisClient 可为空，为空时根据配置构建客户端。
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if db == nil {
		panic("数据库连接为空")
	}

	if cfg == nil {
		panic("配置为空")
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
		redis:  redisClient,
	}
	container.initializeServices()
	return container
}

// initializeServices 初始化所有服务
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// 初始化基础服务
	c.jwtService = services.NewJWTService(c.config)
	if c.redis != nil {
		c.redisService = &services.RedisService{Client: c.redis, Ctx: context.Background()}
	} else {
		c.redisService = services.NewRedisService(c.config)
	}

	// Redis不可达只降级: 吊销检查失败开放，缓存读写在调用点记录告警
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := c.redisService.(*services.RedisService).Client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis连接测试失败: %v，缓存与令牌吊销将尽力而为", err)
	}

	// 初始化现场广播服务，未配置Broker则完全跳过
	if c.config.MQTTBrokerURL != "" {
		c.mqttService = services.NewMQTTService(c.config)
		if err := c.mqttService.Connect(); err != nil {
			log.Printf("MQTT服务连接失败: %v", err)
		}
	}

	// 初始化业务服务
	c.userService = services.NewUserService(c.db, c.config, c.redisService)
	c.requestService = services.NewRequestService(c.db, c.config, c.mqttService)
	c.inventoryService = services.NewInventoryService(c.db, c.config, c.redisService)
	c.allocationService = services.NewAllocationService(c.db, c.config)
	c.chatService = services.NewChatService(c.db, c.config, c.mqttService)
}

// GetService 获取指定名称的服务
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "jwt":
		return c.jwtService
	case "redis":
		return c.redisService
	case "mqtt":
		return c.mqttService
	case "user":
		return c.userService
	case "request":
		return c.requestService
	case "inventory":
		return c.inventoryService
	case "allocation":
		return c.allocationService
	case "chat":
		return c.chatService
	default:
		return nil
	}
}

// GetDB 获取数据库连接
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}

// GetJWTService 获取JWT服务
func (c *ServiceContainer) GetJWTService() services.InterfaceJWTService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.jwtService
}

// GetRedisService 获取Redis服务，可能为空
func (c *ServiceContainer) GetRedisService() services.InterfaceRedisService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.redisService
}

// GetUserService 获取账户服务
func (c *ServiceContainer) GetUserService() services.InterfaceUserService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.userService
}

// GetRequestService 获取救援请求服务
func (c *ServiceContainer) GetRequestService() services.InterfaceRequestService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.requestService
}

// GetInventoryService 获取库存服务
func (c *ServiceContainer) GetInventoryService() services.InterfaceInventoryService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.inventoryService
}

// GetAllocationService 获取分配服务
func (c *ServiceContainer) GetAllocationService() services.InterfaceAllocationService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.allocationService
}

// GetChatService 获取协调频道服务
func (c *ServiceContainer) GetChatService() services.InterfaceChatService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.chatService
}
