// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage drivers
const (
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

// Verification code delivery
const (
	OTPDeliveryDisplay = "display"
	OTPDeliverySMTP    = "smtp"
)

// Config holds all configuration for our application
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Storage  StorageConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Security SecurityConfig
	Auth     AuthConfig
	OTP      OTPConfig
	Email    EmailConfig
	Checkout CheckoutConfig
	Catalog  CatalogConfig
	Events   EventsConfig
	Receipt  ReceiptConfig
	Logging  LoggingConfig
}

// AppConfig contains application-level configuration
type AppConfig struct {
	Name        string
	Version     string
	Environment string
	Debug       bool
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	RequestTimeout time.Duration
}

// StorageConfig selects the durable key-value backend
type StorageConfig struct {
	Driver    string
	KeyPrefix string
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host         string
	Port         string
	Name         string
	User         string
	Password     string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  time.Duration
}

// RedisConfig contains Redis configuration
type RedisConfig struct {
	Host         string
	Port         string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
}

// JWTConfig contains JWT token configuration
type JWTConfig struct {
	Secret            string
	AccessTokenExpiry time.Duration
}

// SecurityConfig contains security-related configuration
type SecurityConfig struct {
	BcryptCost         int
	RateLimitPerMinute int
	CORSAllowedOrigins []string
	CORSAllowedMethods []string
	CORSAllowedHeaders []string
	TrustedProxies     []string
}

// AuthConfig picks how account passwords are stored
type AuthConfig struct {
	PasswordScheme string
}

// OTPConfig contains one-time code settings. Zero TTL and MaxAttempts disable those checks.
type OTPConfig struct {
	TTL         time.Duration
	MaxAttempts int
	ExposeCode  bool
	Delivery    string
}

// EmailConfig contains SMTP settings used to deliver verification codes
type EmailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPUseTLS   bool
	FromEmail    string
	FromName     string
}

// CheckoutConfig contains pricing and payment simulation settings
type CheckoutConfig struct {
	TaxRate           float64
	PaymentDelay      time.Duration
	PaymentTimeout    time.Duration
	PointsUnit        int64
	HistoryLimit      int
	MinCardLength     int
	ApplyPromoToTotal bool
}

// CatalogConfig contains menu browsing settings
type CatalogConfig struct {
	MaxPrice       int64
	CurrencySymbol string
}

// EventsConfig contains the order event publisher settings
type EventsConfig struct {
	KafkaBrokers []string
	Topic        string
}

// ReceiptConfig contains receipt rendering settings
type ReceiptConfig struct {
	PDFEnabled bool
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string
	Format string
	File   string
}

// Load loads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment variables")
	}

	config := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "FoodHub Storefront"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
			Debug:       getEnvAsBool("APP_DEBUG", true),
		},
		Server: ServerConfig{
			Port:           getEnv("APP_PORT", "8080"),
			ReadTimeout:    getEnvAsDuration("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:   getEnvAsDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:    getEnvAsDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
			RequestTimeout: getEnvAsDuration("SERVER_REQUEST_TIMEOUT", 30*time.Second),
		},
		Storage: StorageConfig{
			Driver:    strings.ToLower(getEnv("STORAGE_DRIVER", StorageMemory)),
			KeyPrefix: getEnv("STORAGE_KEY_PREFIX", "foodhub"),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			Name:         getEnv("DB_NAME", "foodhub_db"),
			User:         getEnv("DB_USER", "foodhub_user"),
			Password:     getEnv("DB_PASSWORD", "foodhub_password"),
			SSLMode:      getEnv("DB_SSL_MODE", "disable"),
			MaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			MaxLifetime:  getEnvAsDuration("DB_MAX_LIFETIME", 300*time.Second),
		},
		Redis: RedisConfig{
			Host:         getEnv("REDIS_HOST", ""),
			Port:         getEnv("REDIS_PORT", "6379"),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           getEnvAsInt("REDIS_DB", 0),
			PoolSize:     getEnvAsInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getEnvAsInt("REDIS_MIN_IDLE_CONNS", 5),
		},
		JWT: JWTConfig{
			Secret:            getEnv("JWT_SECRET", "foodhub-development-secret-change-in-production"),
			AccessTokenExpiry: getEnvAsDuration("JWT_ACCESS_EXPIRE", 24*time.Hour),
		},
		Security: SecurityConfig{
			BcryptCost:         getEnvAsInt("BCRYPT_COST", 12),
			RateLimitPerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 100),
			CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5500"}),
			CORSAllowedMethods: getEnvAsSlice("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
			CORSAllowedHeaders: getEnvAsSlice("CORS_ALLOWED_HEADERS", []string{"Origin", "Content-Type", "Accept", "Authorization"}),
			TrustedProxies:     getEnvAsSlice("TRUSTED_PROXIES", []string{}),
		},
		Auth: AuthConfig{
			PasswordScheme: strings.ToLower(getEnv("AUTH_PASSWORD_SCHEME", "bcrypt")),
		},
		OTP: OTPConfig{
			TTL:         getEnvAsDuration("OTP_TTL", 0),
			MaxAttempts: getEnvAsInt("OTP_MAX_ATTEMPTS", 0),
			ExposeCode:  getEnvAsBool("OTP_EXPOSE_CODE", true),
			Delivery:    strings.ToLower(getEnv("OTP_DELIVERY", OTPDeliveryDisplay)),
		},
		Email: EmailConfig{
			SMTPHost:     getEnv("SMTP_HOST", ""),
			SMTPPort:     getEnvAsInt("SMTP_PORT", 587),
			SMTPUsername: getEnv("SMTP_USERNAME", ""),
			SMTPPassword: getEnv("SMTP_PASSWORD", ""),
			SMTPUseTLS:   getEnvAsBool("SMTP_USE_TLS", false),
			FromEmail:    getEnv("FROM_EMAIL", "noreply@foodhub.local"),
			FromName:     getEnv("FROM_NAME", "FoodHub"),
		},
		Checkout: CheckoutConfig{
			TaxRate:           getEnvAsFloat("CHECKOUT_TAX_RATE", 0.10),
			PaymentDelay:      getEnvAsDuration("CHECKOUT_PAYMENT_DELAY", 1600*time.Millisecond),
			PaymentTimeout:    getEnvAsDuration("CHECKOUT_PAYMENT_TIMEOUT", 10*time.Second),
			PointsUnit:        getEnvAsInt64("CHECKOUT_POINTS_UNIT", 1000),
			HistoryLimit:      getEnvAsInt("CHECKOUT_HISTORY_LIMIT", 100),
			MinCardLength:     getEnvAsInt("CHECKOUT_MIN_CARD_LENGTH", 8),
			ApplyPromoToTotal: getEnvAsBool("CHECKOUT_APPLY_PROMO_TO_TOTAL", false),
		},
		Catalog: CatalogConfig{
			MaxPrice:       getEnvAsInt64("CATALOG_MAX_PRICE", 30000),
			CurrencySymbol: getEnv("CATALOG_CURRENCY_SYMBOL", "₦"),
		},
		Events: EventsConfig{
			KafkaBrokers: getEnvAsSlice("EVENTS_KAFKA_BROKERS", []string{}),
			Topic:        getEnv("EVENTS_TOPIC", "foodhub.orders"),
		},
		Receipt: ReceiptConfig{
			PDFEnabled: getEnvAsBool("RECEIPT_PDF_ENABLED", false),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "debug"),
			Format: getEnv("LOG_FORMAT", "json"),
			File:   getEnv("LOG_FILE", ""),
		},
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	// Validate JWT secret
	if len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters long")
	}

	switch c.Storage.Driver {
	case StorageMemory:
	case StorageRedis:
		if c.Redis.Host == "" {
			return fmt.Errorf("REDIS_HOST is required for the redis storage driver")
		}
	case StoragePostgres:
		if c.Database.Host == "" {
			return fmt.Errorf("DB_HOST is required")
		}
		if c.Database.Name == "" {
			return fmt.Errorf("DB_NAME is required")
		}
		if c.Database.User == "" {
			return fmt.Errorf("DB_USER is required")
		}
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.Storage.Driver)
	}

	if c.Auth.PasswordScheme != "bcrypt" && c.Auth.PasswordScheme != "plaintext" {
		return fmt.Errorf("unsupported AUTH_PASSWORD_SCHEME %q", c.Auth.PasswordScheme)
	}

	switch c.OTP.Delivery {
	case OTPDeliveryDisplay:
	case OTPDeliverySMTP:
		if c.Email.SMTPHost == "" {
			return fmt.Errorf("SMTP_HOST is required when OTP_DELIVERY=smtp")
		}
	default:
		return fmt.Errorf("unsupported OTP_DELIVERY %q", c.OTP.Delivery)
	}

	if c.Checkout.TaxRate < 0 || c.Checkout.TaxRate > 1 {
		return fmt.Errorf("CHECKOUT_TAX_RATE must be between 0 and 1")
	}
	if c.Checkout.PointsUnit <= 0 {
		return fmt.Errorf("CHECKOUT_POINTS_UNIT must be positive")
	}
	if c.Checkout.HistoryLimit <= 0 {
		return fmt.Errorf("CHECKOUT_HISTORY_LIMIT must be positive")
	}

	// Validate server port
	if c.Server.Port == "" {
		return fmt.Errorf("APP_PORT is required")
	}

	return nil
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// RedisEnabled reports whether a redis host is configured
func (c *Config) RedisEnabled() bool {
	return c.Redis.Host != ""
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	}
	return defaultValue
}
