package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"famcash/pkg/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	Env        string
	DB         DBConfig
	State      StateConfig
	BcryptCost int
}

type DBConfig struct {
	Path    string
	LogMode bool
}

type StateConfig struct {
	// Path of the JSON file backing the device key-value store
	// (session snapshot, theme mode, legacy category cache).
	Path string
}

func Load(log logger.Logger) (Config, error) {
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	} else {
		log.Info("config: loaded .env")
	}

	return Config{
		Env: getEnv("ENV", "development"),
		DB: DBConfig{
			Path:    getEnv("DB_PATH", "data/famcash.db"),
			LogMode: getEnvBool("DB_LOG_MODE", false),
		},
		State: StateConfig{
			Path: getEnv("STATE_PATH", "data/state.json"),
		},
		BcryptCost: getEnvInt("BCRYPT_COST", 12),
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
