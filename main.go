// @title           Sentinel Vault Coordination Service API
// @version         1.0
// @description     Role-based coordination backend for disaster-response operations: victim request feed, resource inventory and allocation, and a police coordination channel

// @contact.name   API Support
// @contact.email  support@sentinel-vault.org

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer: ` prefix
package main

import (
	"fmt"
	"log"
	"os"
	"sentinel-vault-service/config"
	"sentinel-vault-service/models"
	"sentinel-vault-service/routes"
	"sentinel-vault-service/utils"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	// 初始化日志配置
	if err := config.SetupLogger(); err != nil {
		fmt.Printf("初始化日志配置失败: %v\n", err)
		os.Exit(1)
	}

	// 加载.env文件
	if err := godotenv.Load(); err != nil {
		config.Warning("无法加载.env文件: %v", err)
		// 即使加载失败也继续执行，可能环境变量已经通过其他方式设置
	} else {
		config.Info("成功加载.env文件")
	}

	// 获取配置
	cfg := config.GetConfig()

	// 连接数据库
	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("无法连接数据库: %v", err)
	}

	// 根据配置执行不同的数据库操作
	if cfg.DBMigrationMode == "drop" {
		// 删除并重建表
		log.Println("警告: 在drop模式下运行，将删除并重建所有表")
		if err := dropAndRecreateTables(db); err != nil {
			log.Fatalf("删除并重建表失败: %v", err)
		}
	} else {
		// 默认AutoMigrate，只会添加新列和新表，不会删除或修改列
		log.Println("在标准模式下运行，将只添加新列和新表")
		if err := autoMigrate(db); err != nil {
			log.Fatalf("自动迁移失败: %v", err)
		}
	}

	// 确保系统中有指挥中心账户，并载入初始数据集
	ensureAdminExists(db, cfg)
	seedReferenceData(db)

	// 初始化路由
	r := routes.SetupRouter(db, cfg)

	// 获取端口配置
	port := cfg.ServerPort
	if port == "" {
		port = "8080" // 默认端口
	}

	// 启动服务器
	config.Info("服务器启动在: http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		config.Error("启动服务器失败: %v", err)
		os.Exit(1)
	}
}

// initDB 初始化数据库连接
func initDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.GetDSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	fmt.Println("Database connection established")
	return db, nil
}

// autoMigrate 自动迁移所有模型（只添加新列和新表）
func autoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.VictimRequest{},
		&models.InventoryItem{},
		&models.HealthInventoryItem{},
		&models.AllocationRecord{},
		&models.ChatMessage{},
	)

	if err != nil {
		return err
	}

	fmt.Println("Database migration completed")
	return nil
}

// dropAndRecreateTables 删除并重建所有表
func dropAndRecreateTables(db *gorm.DB) error {
	// 警告: 这将删除所有数据
	log.Println("警告: 正在删除并重建所有表，所有数据将丢失")

	// 禁用外键检查以允许删除表
	db.Exec("SET FOREIGN_KEY_CHECKS = 0")
	defer db.Exec("SET FOREIGN_KEY_CHECKS = 1")

	// 获取所有表名
	var tables []string
	err := db.Raw("SHOW TABLES").Scan(&tables).Error
	if err != nil {
		return fmt.Errorf("failed to get table names: %w", err)
	}

	// 删除所有表
	for _, table := range tables {
		log.Printf("正在删除表: %s", table)
		err := db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS `%s`", table)).Error
		if err != nil {
			return fmt.Errorf("failed to drop table %s: %w", table, err)
		}
	}

	// 重新创建所有表
	log.Println("正在重新创建所有表")
	return autoMigrate(db)
}

// ensureAdminExists 确保系统中至少有一个指挥中心账户
func ensureAdminExists(db *gorm.DB, cfg *config.Config) {
	var count int64
	db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count)

	// 如果没有指挥中心账户，则创建一个默认账户
	if count == 0 {
		defaultPassword := "admin123" // 默认密码
		if cfg.DefaultAdminPassword != "" {
			defaultPassword = cfg.DefaultAdminPassword
		}

		hashedPassword, err := utils.HashPassword(defaultPassword)
		if err != nil {
			log.Printf("无法为默认账户哈希密码: %v", err)
			return
		}

		admin := models.User{
			Email:    cfg.DefaultAdminEmail,
			Password: hashedPassword,
			Role:     models.RoleAdmin,
			Verified: true,
		}

		result := db.Create(&admin)
		if result.Error != nil {
			log.Printf("无法创建默认账户: %v", result.Error)
			return
		}

		log.Printf("已创建默认指挥中心账户 (邮箱: %s)", admin.Email)
	}
}

// seedReferenceData 载入初始数据集: 库存、医疗物资与示例请求
func seedReferenceData(db *gorm.DB) {
	var count int64

	// 通用物资库存
	db.Model(&models.InventoryItem{}).Count(&count)
	if count == 0 {
		items := []models.InventoryItem{
			{Name: "Boats", Quantity: 5, Unit: "units"},
			{Name: "Food Kits", Quantity: 300, Unit: "kits"},
			{Name: "Life Jackets", Quantity: 150, Unit: "units"},
			{Name: "Flashlights", Quantity: 80, Unit: "units"},
		}
		if err := db.Create(&items).Error; err != nil {
			log.Printf("载入初始库存失败: %v", err)
		} else {
			log.Println("已载入初始库存数据")
		}
	}

	// 医疗物资
	db.Model(&models.HealthInventoryItem{}).Count(&count)
	if count == 0 {
		items := []models.HealthInventoryItem{
			{Name: "First Aid Kits", Available: 50, Needed: 80, Unit: "kits"},
			{Name: "IV Fluids", Available: 120, Needed: 200, Unit: "bags"},
			{Name: "Antibiotics", Available: 500, Needed: 500, Unit: "doses"},
			{Name: "Oxygen Tanks", Available: 10, Needed: 25, Unit: "cylinders"},
		}
		if err := db.Create(&items).Error; err != nil {
			log.Printf("载入医疗物资失败: %v", err)
		} else {
			log.Println("已载入医疗物资数据")
		}
	}

	// 示例救援请求
	db.Model(&models.VictimRequest{}).Count(&count)
	if count == 0 {
		now := time.Now()
		requests := []models.VictimRequest{
			{RequestID: "REQ-101", Status: models.StatusCritical, Needs: "Rescue, Medical", PeopleCount: "6-10", Location: "23.2156,72.6369", Timestamp: now},
			{RequestID: "REQ-102", Status: models.StatusUrgent, Needs: "Food, Water", PeopleCount: "2-4", Location: "23.2324,72.6511", Timestamp: now},
			{RequestID: "REQ-103", Status: models.StatusSafe, Needs: "Transportation", PeopleCount: "1", Location: "23.1950,72.6200", Timestamp: now},
			{RequestID: "REQ-104", Status: models.StatusCritical, Needs: "Heavy Excavation", PeopleCount: "12+", Location: "23.2450,72.6600", Timestamp: now},
		}
		if err := db.Create(&requests).Error; err != nil {
			log.Printf("载入示例请求失败: %v", err)
		} else {
			log.Println("已载入示例救援请求")
		}
	}
}
