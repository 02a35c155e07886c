package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration. It is built once in main and
// treated as immutable afterwards.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	RefreshTokenSecret         string
	RefreshTokenExpiryDuration time.Duration

	// SecureCookie controls the Secure flag on the jwt / refresh_token cookies.
	SecureCookie bool

	// External OAuth Providers
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `mapstructure:"GOOGLE_REDIRECT_URL"`
	FrontendBaseURL    string `mapstructure:"FRONTEND_BASE_URL"`

	// Payment gateway (Midtrans-compatible)
	MidtransServerKey string
	MidtransBaseURL   string

	RedisURL string
	AMQPURL  string
}

// LoadConfig loads configuration from environment variables and .env file if present.
// It fails when JWT_SECRET or REFRESH_TOKEN_SECRET are missing: issuing tokens
// with a guessable default or silently reusing the access secret for refresh
// tokens would make every deployment forgeable.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_EXPIRY_DURATION", "5m")
	viper.SetDefault("JWT_ISSUER", "rodstore-backend")
	viper.SetDefault("REFRESH_TOKEN_EXPIRY_DURATION", "120h")
	viper.SetDefault("SECURE_COOKIE", false)
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("MIDTRANS_SERVER_KEY", "")
	viper.SetDefault("MIDTRANS_BASE_URL", "https://app.sandbox.midtrans.com")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("AMQP_URL", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	cfg.RefreshTokenSecret = viper.GetString("REFRESH_TOKEN_SECRET")
	if cfg.RefreshTokenSecret == "" {
		return nil, fmt.Errorf("REFRESH_TOKEN_SECRET environment variable is required")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 5 * time.Minute
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}

	refreshExpiryStr := viper.GetString("REFRESH_TOKEN_EXPIRY_DURATION")
	refreshExpiryDuration, err := time.ParseDuration(refreshExpiryStr)
	if err != nil {
		refreshExpiryDuration = 120 * time.Hour
		log.Printf("Warning: Invalid value for REFRESH_TOKEN_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", refreshExpiryStr, refreshExpiryDuration.String())
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	cfg.RefreshTokenExpiryDuration = refreshExpiryDuration
	cfg.SecureCookie = viper.GetBool("SECURE_COOKIE")

	cfg.GoogleClientID = viper.GetString("GOOGLE_CLIENT_ID")
	cfg.GoogleClientSecret = viper.GetString("GOOGLE_CLIENT_SECRET")
	cfg.GoogleRedirectURL = viper.GetString("GOOGLE_REDIRECT_URL")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")

	if cfg.GoogleClientID == "" {
		log.Println("Warning: GOOGLE_CLIENT_ID not set. Google OAuth will not function.")
	}
	if cfg.GoogleClientSecret == "" {
		log.Println("Warning: GOOGLE_CLIENT_SECRET not set. Google OAuth will not function.")
	}
	if cfg.GoogleRedirectURL == "" {
		log.Println("Warning: GOOGLE_REDIRECT_URL not set. Google OAuth will not function.")
	}

	cfg.MidtransServerKey = viper.GetString("MIDTRANS_SERVER_KEY")
	if cfg.MidtransServerKey == "" {
		log.Println("Warning: MIDTRANS_SERVER_KEY not set. Checkout will not function.")
	}
	cfg.MidtransBaseURL = viper.GetString("MIDTRANS_BASE_URL")

	cfg.RedisURL = viper.GetString("REDIS_URL")
	cfg.AMQPURL = viper.GetString("AMQP_URL")

	return cfg, nil
}
