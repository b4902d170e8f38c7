package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ferroviario/socio-api/internal/models"
)

const (
	maxConnectAttempts = 10
	connectRetryDelay  = 5 * time.Second

	mockMemberEmail    = "socio@ferroviario.com.br"
	mockMemberUsername = "socio_torcedor"
	mockMemberPassword = "tubarao123"
)

type Config struct {
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`
	Port        string `envconfig:"PORT" default:"8080"`
}

func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// InitDatabase connects with a bounded retry loop so the service survives the
// database container coming up after it, then migrates the schema and seeds
// the fixed member account.
func InitDatabase(cfg *Config, logger *zap.Logger) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	for attempt := 1; attempt <= maxConnectAttempts; attempt++ {
		db, err = gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
		if err == nil {
			logger.Info("database connection established", zap.Int("attempt", attempt))
			break
		}
		logger.Warn("database not ready, waiting",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", maxConnectAttempts),
			zap.Error(err),
		)
		time.Sleep(connectRetryDelay)
	}
	if err != nil {
		return nil, fmt.Errorf("could not connect to database after %d attempts: %w", maxConnectAttempts, err)
	}

	err = db.AutoMigrate(
		&models.Player{},
		&models.Competition{},
		&models.Match{},
		&models.User{},
		&models.Card{},
		&models.News{},
		&models.UserNewsLike{},
		&models.PressConference{},
		&models.Video{},
		&models.TicketCategory{},
		&models.Order{},
		&models.Checkin{},
		&models.Partner{},
	)
	if err != nil {
		return nil, err
	}

	seedMemberAccount(db)

	return db, nil
}

// seedMemberAccount guarantees the fixed member (id 1) exists on a fresh
// database, since every member endpoint resolves the current user to it.
func seedMemberAccount(db *gorm.DB) {
	var existing models.User
	if result := db.Where("email = ?", mockMemberEmail).First(&existing); result.Error == nil {
		return
	}

	fullName := "Sócio Torcedor"
	db.Create(&models.User{
		Username: mockMemberUsername,
		Email:    mockMemberEmail,
		Password: mockMemberPassword,
		FullName: &fullName,
	})
}
