package config

import (
	"fmt"
	"os"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（3001）

	StoreDriver string // postgres / memory

	DatabaseURL      string // 設定されていればPostgres個別項目より優先
	PostgresHost     string // DBホスト（localhost）
	PostgresPort     string // DBポート（5432）
	PostgresUser     string // DBユーザー
	PostgresPassword string // DBパスワード
	PostgresDB       string // DB名
	PostgresSSLMode  string // disable など

	GoEnv string // dev/prod
	FEURL string // フロントURL（CORSで使う）
}

// Loadは環境変数から読む
func Load() (Config, error) {
	cfg := Config{
		Port:        getenv("PORT", "3001"),
		StoreDriver: getenv("STORE_DRIVER", DriverPostgres),

		DatabaseURL:      os.Getenv("DATABASE_URL"),
		PostgresHost:     getenv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getenv("POSTGRES_PORT", "5432"),
		PostgresUser:     getenv("POSTGRES_USER", "postgres"),
		PostgresPassword: getenv("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:       getenv("POSTGRES_DB", "shop"),
		PostgresSSLMode:  getenv("POSTGRES_SSLMODE", "disable"),

		GoEnv: getenv("GO_ENV", "dev"),
		FEURL: getenv("FE_URL", "http://localhost:3000"),
	}

	switch cfg.StoreDriver {
	case DriverPostgres, DriverMemory:
	default:
		return Config{}, fmt.Errorf("STORE_DRIVER must be %q or %q", DriverPostgres, DriverMemory)
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
