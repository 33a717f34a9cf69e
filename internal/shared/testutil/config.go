package testutil

import (
	"time"

	"github.com/changhyeonkim/memome/go-api-server/internal/config"
)

// NewTestConfig creates a test configuration
// This removes the need for environment variables during testing
func NewTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name: "memome-api-test",
			Env:  "test",
			Port: 8080,
		},
		Database: config.DatabaseConfig{
			Driver:          config.DriverSQLite,
			Service:         ":memory:",
			MaxIdleConns:    1,
			MaxOpenConns:    1,
			ConnMaxLifetime: time.Hour,
			ConnMaxIdleTime: 10 * time.Minute,
			IsAutoMigrate:   true,
		},
		JWT: config.JWTConfig{
			Secret:        "test-jwt-secret-key-must-be-at-least-32-characters-long",
			Expiry:        24 * time.Hour,
			RefreshExpiry: 168 * time.Hour,
		},
		OAuth: config.OAuthConfig{
			SessionSecret: "test-session-secret-key-at-least-32-characters",
			SessionMaxAge: 10 * time.Minute,
			Google: config.OAuthClientConfig{
				ClientID:     "google-client-id",
				ClientSecret: "google-client-secret",
				RedirectURL:  "http://localhost:8080/auth/google/callback",
				Scopes:       []string{"openid", "profile", "email"},
			},
			Kakao: config.OAuthClientConfig{
				ClientID:     "kakao-client-id",
				ClientSecret: "kakao-client-secret",
				RedirectURL:  "http://localhost:8080/auth/kakao/callback",
				Scopes:       []string{"openid", "profile_nickname", "account_email"},
			},
		},
		CORS: config.CORSConfig{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
			MaxAge:           86400,
		},
		RateLimit: config.RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             100,
		},
		Server: config.ServerConfig{
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			GracefulTimeout: 30 * time.Second,
		},
	}
}
