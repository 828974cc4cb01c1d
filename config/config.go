package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddr string
	Database   *DatabaseConfig
}

type DatabaseConfig struct {
	Driver   string
	Path     string
	Server   string
	Database string
	User     string
	Password string
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// NewConfig carrega as configurações do ambiente (e de um .env opcional),
// com sqlite como armazenamento padrão.
func NewConfig() *Config {
	godotenv.Load()

	return &Config{
		ServerAddr: getenv("SERVER_ADDR", ":8000"),
		Database: &DatabaseConfig{
			Driver:   getenv("DB_DRIVER", "sqlite"),
			Path:     getenv("DB_PATH", "contacts.db"),
			Server:   getenv("DB_SERVER", "localhost:3306"),
			Database: getenv("DB_NAME", "contacts"),
			User:     getenv("DB_USER", "contacts"),
			Password: getenv("DB_PASSWORD", ""),
		},
	}
}
