package main

import (
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"sharegeb/internal/config"
	"sharegeb/internal/model"
	"sharegeb/internal/server"
	"sharegeb/internal/service"
	"sharegeb/pkg/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db := database.Connect(cfg)
	if err := migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	if cfg.AppEnv == "development" {
		if err := seedAdminUser(db); err != nil {
			log.Fatalf("failed to seed admin user: %v", err)
		}
		if err := seedDiscounts(db); err != nil {
			log.Fatalf("failed to seed discounts: %v", err)
		}
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		redisClient = redis.NewClient(opts)
	} else {
		log.Println("REDIS_URL not set, sessions are held in process memory")
	}

	srv := server.NewServer(cfg, db, redisClient)

	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Driver{},
		&model.Vehicle{},
		&model.Ride{},
		&model.RidePassenger{},
		&model.Payment{},
		&model.Rating{},
		&model.ChatMessage{},
		&model.Notification{},
		&model.Discount{},
		&model.DiscountUsage{},
	)
}

func seedAdminUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.User{}).
		Where("email = ?", "admin@sharegeb.local").
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("Admin user already exists, skipping seed")
		return nil
	}

	hash, err := service.HashPassword("admin123")
	if err != nil {
		return err
	}

	admin := model.User{
		FullName:     "Administrator",
		Email:        "admin@sharegeb.local",
		Phone:        "0000000000",
		PasswordHash: hash,
		Role:         model.RoleAdmin,
		Avatar:       model.DefaultAvatar,
	}

	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Println("Admin user seeded (admin@sharegeb.local / admin123)")
	return nil
}

func seedDiscounts(db *gorm.DB) error {
	defaults := []model.Discount{
		{Code: "WELCOME10", DiscountPercentage: 10, MaxDiscountAmount: 50000, ValidFrom: time.Now(), ValidTo: time.Now().AddDate(0, 6, 0), MaxUsage: 1},
		{Code: "SHAREGEB25", DiscountPercentage: 25, MaxDiscountAmount: 100000, ValidFrom: time.Now(), ValidTo: time.Now().AddDate(0, 1, 0), MaxUsage: 3},
	}

	for _, d := range defaults {
		var count int64
		if err := db.Model(&model.Discount{}).
			Where("code = ?", d.Code).
			Count(&count).Error; err != nil {
			return err
		}

		if count == 0 {
			if err := db.Create(&d).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
