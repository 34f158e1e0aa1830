package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/shopauth/shopauth/internal/pkg/models"
)

// InitConfig loads configuration from an env file (local) and the environment
func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "shopauth")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 0)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 0)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 0)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "")

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 10080) // 7 days in minutes
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "shopauth")

	// WhatsApp provider config
	configs.WhatsApp.APIURL = GetEnv("WHATSAPP_API_URL", "")
	configs.WhatsApp.APIToken = GetEnv("WHATSAPP_API_TOKEN", "")
	configs.WhatsApp.PhoneNumberID = GetEnv("WHATSAPP_PHONE_NUMBER_ID", "")
	configs.WhatsApp.TemplateID = GetEnv("WHATSAPP_TEMPLATE_ID", "")

	// Shopify config
	configs.Shopify.StoreHost = GetEnv("SHOPIFY_STORE_HOST", "")
	configs.Shopify.AccessToken = GetEnv("SHOPIFY_ACCESS_TOKEN", "")
	configs.Shopify.APIVersion = GetEnv("SHOPIFY_API_VERSION", "2026-01")

	// OTP config
	configs.OTP.ExpiryMinutes = GetEnvAsInt("OTP_EXPIRY_MINUTES", 5)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	return configs
}

// Validate checks that every secret-bearing setting is present.
// Absence must fail startup, never silently proceed with an empty value.
func Validate(configs *models.Config) error {
	required := map[string]string{
		"JWT_SECRET":           configs.JWT.Secret,
		"SHOPIFY_STORE_HOST":   configs.Shopify.StoreHost,
		"SHOPIFY_ACCESS_TOKEN": configs.Shopify.AccessToken,
		"WHATSAPP_API_URL":     configs.WhatsApp.APIURL,
		"WHATSAPP_API_TOKEN":   configs.WhatsApp.APIToken,
	}

	for name, value := range required {
		if value == "" {
			return fmt.Errorf("required configuration %s is not set", name)
		}
	}

	return nil
}

// Helper functions to get environment variables with different types

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
