package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                string
	AllowedOrigin       string   // Frontend origin allowed by CORS (credentials enabled)
	TrustedProxies      []string // Proxies whose X-Forwarded-For is trusted for client IPs
	FrontendURL         string   // Base URL used in book share QR codes
	DatabaseDriver      string   // "postgres" or "sqlite3"
	DatabaseURL         string
	RedisURL            string // Optional, public catalog cache
	PublicBooksCacheTTL int    // Public catalog cache TTL in seconds
	JWTSecret           string // Secret key for JWT token signing
	JWTTTL              int    // JWT token expiration time in hours
	CookieSecure        bool   // Send the jwt cookie with Secure (required for SameSite=None)
	LogLevel            string
	RateLimitRPS        float64 // Rate limit for general API endpoints (requests per second)
	RateLimitBurst      int     // Burst size for rate limiting
	RateLimitAuthRPS    float64 // Rate limit for auth endpoints (stricter)
	RateLimitAuthBurst  int     // Burst size for auth endpoints
}

func Load() *Config {
	// Try to load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or defaults")
	}

	return &Config{
		Port:                getEnv("PORT", "5000"),
		AllowedOrigin:       getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),
		TrustedProxies:      getEnvList("TRUSTED_PROXIES"),
		FrontendURL:         getEnv("FRONTEND_URL", "http://localhost:3000"),
		DatabaseDriver:      getEnv("DATABASE_DRIVER", "postgres"),
		DatabaseURL:         getEnv("DATABASE_URL", ""),
		RedisURL:            getEnv("REDIS_URL", ""),
		PublicBooksCacheTTL: getEnvInt("PUBLIC_BOOKS_CACHE_TTL_SECONDS", 300),
		JWTSecret:           getEnv("JWT_SECRET", ""),
		JWTTTL:              getEnvInt("JWT_TTL_HOURS", 30*24), // 30 days
		CookieSecure:        getEnvBool("COOKIE_SECURE", true),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		RateLimitRPS:        getEnvFloat("RATE_LIMIT_RPS", 100.0/900.0), // 100 requests per 15 minutes
		RateLimitBurst:      getEnvInt("RATE_LIMIT_BURST", 100),
		RateLimitAuthRPS:    getEnvFloat("RATE_LIMIT_AUTH_RPS", 20.0/900.0),
		RateLimitAuthBurst:  getEnvInt("RATE_LIMIT_AUTH_BURST", 20),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
