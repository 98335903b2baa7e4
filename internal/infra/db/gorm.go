package db

import (
	"fmt"

	"app/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DSN は設定から接続文字列を組み立てる。DATABASE_URL があれば最優先で使う。
func DSN(cfg config.Config) string {
	if cfg.DatabaseURL != "" {
		return cfg.DatabaseURL
	}

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.PostgresHost,
		cfg.PostgresPort,
		cfg.PostgresUser,
		cfg.PostgresPassword,
		cfg.PostgresDB,
		cfg.PostgresSSLMode,
	)
}

// Connect はDBに接続して *gorm.DB を返す。
func Connect(cfg config.Config) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(DSN(cfg)), &gorm.Config{})
}
