package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	WhatsApp WhatsAppConfig
	Shopify  ShopifyConfig
	OTP      OTPConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains session token configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// WhatsAppConfig contains the template-message provider configuration
type WhatsAppConfig struct {
	APIURL        string
	APIToken      string
	PhoneNumberID string
	TemplateID    string
}

// ShopifyConfig contains the commerce platform configuration
type ShopifyConfig struct {
	StoreHost   string // e.g. mystore.myshopify.com
	AccessToken string
	APIVersion  string
}

// OTPConfig contains passcode lifecycle configuration
type OTPConfig struct {
	ExpiryMinutes int
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
