package db

import (
	"fmt"

	"github.com/sisdineng/api-compras/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect abre a conexão com o Postgres usando as credenciais resolvidas
// via ambiente ou Secrets Manager.
func Connect(cfg config.DatabaseConfig) (*gorm.DB, error) {
	username, password, err := retrieveCredentials(cfg.SecretID)
	if err != nil {
		return nil, fmt.Errorf("credenciais do banco: %w", err)
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.Host, username, password, cfg.Name, cfg.Port, cfg.SSLMode)
	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}

	return database, nil
}
