package config

import "os"

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort        string
	MySQLDSN          string
	SwaggerHost       string
	SeedAdminName     string
	SeedAdminPassword string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		MySQLDSN:          getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/adboard?charset=utf8mb4&parseTime=True&loc=Local"),
		SwaggerHost:       os.Getenv("SWAGGER_HOST"),
		SeedAdminName:     getEnv("SEED_ADMIN_NAME", "admin"),
		SeedAdminPassword: getEnv("SEED_ADMIN_PASSWORD", "admin-secret"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
