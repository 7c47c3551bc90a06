package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"gstbill/internal/domain"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	S3      S3Config
	Log     LogConfig
	CORS    CORSConfig
	Email   EmailConfig
	Seller  SellerConfig
	Billing BillingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// S3Config holds receipt attachment storage settings.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
}

// SellerConfig identifies the business issuing documents. The seller's state
// of supply feeds the jurisdiction split; it is explicit configuration, not a
// constant baked into the arithmetic.
type SellerConfig struct {
	Name          string `mapstructure:"name"`
	GSTIN         string `mapstructure:"gstin"`
	StateOfSupply string `mapstructure:"state_of_supply"`
	Address       string `mapstructure:"address"`
	Email         string `mapstructure:"email"`
}

// Profile converts the config into the domain seller profile.
func (s *SellerConfig) Profile() domain.SellerProfile {
	return domain.SellerProfile{
		Name:          s.Name,
		GSTIN:         s.GSTIN,
		StateOfSupply: s.StateOfSupply,
		Address:       s.Address,
		Email:         s.Email,
	}
}

// BillingConfig holds document numbering and rounding defaults.
type BillingConfig struct {
	RoundOffDefault bool   `mapstructure:"round_off_default"`
	NumberPrefix    string `mapstructure:"number_prefix"`
}

// Load reads configuration from environment variables with the GSTBILL_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("GSTBILL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "gstbill")
	v.SetDefault("db.password", "gstbill_secret")
	v.SetDefault("db.name", "gstbill_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// S3 defaults (expense receipt attachments)
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "gstbill-receipts")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 10)
	v.SetDefault("s3.presign_expiry", 3600)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "ap-south-1")
	v.SetDefault("email.from_address", "billing@example.com")
	v.SetDefault("email.from_name", "GSTBill")

	// Seller profile defaults (must be overridden in production)
	v.SetDefault("seller.name", "")
	v.SetDefault("seller.gstin", "")
	v.SetDefault("seller.state_of_supply", "")
	v.SetDefault("seller.address", "")
	v.SetDefault("seller.email", "")

	// Billing defaults
	v.SetDefault("billing.round_off_default", true)
	v.SetDefault("billing.number_prefix", "INV")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":               "GSTBILL_SERVER_PORT",
		"server.read_timeout":       "GSTBILL_SERVER_READ_TIMEOUT",
		"server.write_timeout":      "GSTBILL_SERVER_WRITE_TIMEOUT",
		"server.environment":        "GSTBILL_SERVER_ENVIRONMENT",
		"db.host":                   "GSTBILL_DB_HOST",
		"db.port":                   "GSTBILL_DB_PORT",
		"db.user":                   "GSTBILL_DB_USER",
		"db.password":               "GSTBILL_DB_PASSWORD",
		"db.name":                   "GSTBILL_DB_NAME",
		"db.sslmode":                "GSTBILL_DB_SSLMODE",
		"db.max_open":               "GSTBILL_DB_MAX_OPEN",
		"db.max_idle":               "GSTBILL_DB_MAX_IDLE",
		"s3.region":                 "GSTBILL_S3_REGION",
		"s3.bucket":                 "GSTBILL_S3_BUCKET",
		"s3.endpoint":               "GSTBILL_S3_ENDPOINT",
		"s3.access_key":             "GSTBILL_S3_ACCESS_KEY",
		"s3.secret_key":             "GSTBILL_S3_SECRET_KEY",
		"s3.max_file_size_mb":       "GSTBILL_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":         "GSTBILL_S3_PRESIGN_EXPIRY",
		"log.level":                 "GSTBILL_LOG_LEVEL",
		"log.format":                "GSTBILL_LOG_FORMAT",
		"cors.allowed_origins":      "GSTBILL_CORS_ALLOWED_ORIGINS",
		"email.provider":            "GSTBILL_EMAIL_PROVIDER",
		"email.region":              "GSTBILL_EMAIL_REGION",
		"email.from_address":        "GSTBILL_EMAIL_FROM_ADDRESS",
		"email.from_name":           "GSTBILL_EMAIL_FROM_NAME",
		"seller.name":               "GSTBILL_SELLER_NAME",
		"seller.gstin":              "GSTBILL_SELLER_GSTIN",
		"seller.state_of_supply":    "GSTBILL_SELLER_STATE_OF_SUPPLY",
		"seller.address":            "GSTBILL_SELLER_ADDRESS",
		"seller.email":              "GSTBILL_SELLER_EMAIL",
		"billing.round_off_default": "GSTBILL_BILLING_ROUND_OFF_DEFAULT",
		"billing.number_prefix":     "GSTBILL_BILLING_NUMBER_PREFIX",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if GSTBILL_SERVER_PORT
	// is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("GSTBILL_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitAndTrim(v.GetString("cors.allowed_origins")),
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
	}
	cfg.Seller = SellerConfig{
		Name:          v.GetString("seller.name"),
		GSTIN:         v.GetString("seller.gstin"),
		StateOfSupply: v.GetString("seller.state_of_supply"),
		Address:       v.GetString("seller.address"),
		Email:         v.GetString("seller.email"),
	}
	cfg.Billing = BillingConfig{
		RoundOffDefault: v.GetBool("billing.round_off_default"),
		NumberPrefix:    v.GetString("billing.number_prefix"),
	}

	return cfg, nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
