package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sharegeb/internal/model"
	"sharegeb/internal/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// In-memory sqlite gives each connection its own database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
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
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func mustRegister(t *testing.T, svc AuthService, email, phone string) *model.User {
	t.Helper()

	user, err := svc.Register(context.Background(), RegisterInput{
		FullName: "Test User",
		Email:    email,
		Phone:    phone,
		Password: "secret-password",
	})
	if err != nil {
		t.Fatalf("Register(%s) failed: %v", email, err)
	}
	return user
}

func newAuthService(t *testing.T, db *gorm.DB) (AuthService, repository.UserRepository) {
	t.Helper()
	repo := repository.NewUserRepository(db)
	return NewAuthService(repo, nil), repo
}
