package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string // dev / prod
	Port     string
	DBDriver string // mysql / sqlite
	DBDSN    string
}

// Load 读取 .env（没有就用系统环境变量），缺省值走本地内嵌库
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Env:      getenv("APP_ENV", "dev"),
		Port:     getenv("APP_PORT", "8080"),
		DBDriver: getenv("DB_DRIVER", "sqlite"),
		DBDSN:    getenv("DB_DSN", "board.db"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
