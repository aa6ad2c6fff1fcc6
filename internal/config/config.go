package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"strings" // For splitting list values

	"github.com/joho/godotenv" // For loading .env files
)

// DefaultSecretKey is used when SECRET_KEY is not set
const DefaultSecretKey = "supersecretkey"

// Config holds the application configuration
type Config struct {
	AppPort            string   // Application port
	SecretKey          string   // Secret used to sign session cookies
	GoogleClientID     string   // OAuth client id
	GoogleClientSecret string   // OAuth client secret
	GoogleDiscoveryURL string   // OpenID discovery document URL
	OAuthRedirectURL   string   // Callback URL registered with the provider
	DatabaseDSN        string   // MySQL data source name
	RedisAddr          string   // Redis server address
	RedisPass          string   // Redis password
	RedisDB            int      // Redis database number
	SessionTTLHours    int      // Session lifetime in hours
	EnforceAdmin       bool     // Gate privileged routes behind the admin flag
	AutoMigrate        bool     // Run schema migration at server start
	CORSOrigins        []string // Origins allowed to send credentialed requests
	LogLevel           string   // Logrus level name
	IsProd             bool     // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	port := getenv("APP_PORT", "5000")
	return &Config{
		AppPort:            port,
		SecretKey:          getenv("SECRET_KEY", DefaultSecretKey),
		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleDiscoveryURL: os.Getenv("GOOGLE_DISCOVERY_URL"),
		OAuthRedirectURL:   getenv("OAUTH_REDIRECT_URL", "http://localhost:"+port+"/authorize"),
		DatabaseDSN:        databaseDSN(),
		RedisAddr:          getenv("REDIS_ADDR", "localhost:6379"),
		RedisPass:          os.Getenv("REDIS_PASS"),
		RedisDB:            redisDB,
		SessionTTLHours:    getenvInt("SESSION_TTL_HOURS", 24),
		EnforceAdmin:       os.Getenv("ENFORCE_ADMIN") == "true",
		AutoMigrate:        os.Getenv("AUTO_MIGRATE") == "true",
		CORSOrigins:        splitList(os.Getenv("CORS_ORIGINS")),
		LogLevel:           getenv("LOG_LEVEL", "info"),
		IsProd:             os.Getenv("IS_PROD") == "true", // Is production environment
	}
}

// databaseDSN prefers DATABASE_DSN and falls back to the split DB_* variables
func databaseDSN() string {
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		return dsn
	}
	return os.Getenv("DB_USER") + ":" + os.Getenv("DB_PASSWORD") +
		"@tcp(" + os.Getenv("DB_HOST") + ":" + os.Getenv("DB_PORT") + ")/" + os.Getenv("DB_NAME")
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
