package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays configuration values from environment variables.
//
// Supported variables:
//
//	PORT                    listen port; kept for compatibility with earlier
//	                        deployments, expands to ":<port>"
//	ENDPOINT_ADDR           full bind address, overrides PORT
//	DATABASE_DSN            PostgreSQL DSN
//	SECRET_KEY              JWT HMAC secret
//	TOKEN_VALIDITY_MINUTES  access token lifetime, minutes
func parseEnv(config *Config) {
	if port := os.Getenv("PORT"); port != "" {
		config.EndpointAddr = ":" + port
	}
	if addr := os.Getenv("ENDPOINT_ADDR"); addr != "" {
		config.EndpointAddr = addr
	}
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		config.DatabaseDSN = dsn
	}
	if key := os.Getenv("SECRET_KEY"); key != "" {
		config.SecretKey = key
	}
	if m := os.Getenv("TOKEN_VALIDITY_MINUTES"); m != "" {
		if minutes, err := strconv.Atoi(m); err == nil {
			config.TokenValidityDuration = time.Duration(minutes) * time.Minute
		}
	}
}
