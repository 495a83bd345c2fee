package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

type Config struct {
	Port        string
	MongoURI    string
	MongoDBName string
	JWTSecret   string
	JWTIssuer   string
	JWTTTL      time.Duration
}

// Load reads environment variables, optionally from a .env file if present.
// MONGO_URI and JWT_SECRET are mandatory: the service refuses to start
// without a configured store and an intentionally chosen signing secret.
func Load() (Config, error) {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:        getEnv("PORT", "4000"),
		MongoURI:    os.Getenv("MONGO_URI"),
		MongoDBName: getEnv("MONGO_DB_NAME", "spendsmart"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTIssuer:   getEnv("JWT_ISSUER", "spendsmart"),
		JWTTTL:      time.Duration(getEnvInt("JWT_TTL_HOURS", 7*24)) * time.Hour,
	}
	if cfg.MongoURI == "" {
		return Config{}, errors.New("MONGO_URI is not set")
	}
	if cfg.JWTSecret == "" {
		// No generated fallback: tokens signed with an ad-hoc key would stop
		// verifying after a restart.
		return Config{}, errors.New("JWT_SECRET is not set")
	}
	// A database segment in the URI takes precedence; MONGO_DB_NAME only
	// applies when the URI carries none.
	if name := dbNameFromURI(cfg.MongoURI); name != "" {
		cfg.MongoDBName = name
	}
	return cfg, nil
}

func dbNameFromURI(uri string) string {
	cs, err := connstring.Parse(uri)
	if err != nil {
		return ""
	}
	return cs.Database
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
