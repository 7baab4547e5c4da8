package environment

import (
	"os"
	"strings"
	"time"
)

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func GetPort() string {
	return getEnv("PORT", "8080")
}

func GetAppEnv() string {
	return getEnv("APP_ENV", "development")
}

func IsProduction() bool {
	return GetAppEnv() == "production"
}

// GetStoreDriver returns one of firestore, sqlite, postgres, memory.
func GetStoreDriver() string {
	return strings.ToLower(getEnv("STORE_DRIVER", "firestore"))
}

func GetStoreTimeout() time.Duration {
	return getDuration("STORE_TIMEOUT", 5*time.Second)
}

// GetKVCollection names the Firestore collection or SQL table holding records.
func GetKVCollection() string {
	return getEnv("KV_COLLECTION", "kv_store")
}

func GetSQLitePath() string {
	return getEnv("SQLITE_PATH", "restofinder.db")
}

func GetDatabaseURL() string {
	return os.Getenv("DATABASE_URL")
}

func GetFirebaseKey() string {
	return os.Getenv("FIREBASE_CREDENTIALS_BASE64")
}

func GetFirebaseProjectID() string {
	return os.Getenv("FIREBASE_PROJECT_ID")
}

// GetAuthProvider returns firebase or local.
func GetAuthProvider() string {
	return strings.ToLower(getEnv("AUTH_PROVIDER", "firebase"))
}

func GetJWTSecret() string {
	return os.Getenv("JWT_SECRET")
}

func GetTokenTTL() time.Duration {
	return getDuration("TOKEN_TTL", 24*time.Hour)
}

// GetServiceKeys returns the credentials accepted on service endpoints.
func GetServiceKeys() []string {
	var keys []string
	for _, name := range []string{"SERVICE_ROLE_KEY", "ANON_KEY"} {
		if key := strings.TrimSpace(os.Getenv(name)); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}

func GetSeedFile() string {
	return os.Getenv("SEED_FILE")
}

func GetCORSAllowOrigins() []string {
	raw := getEnv("CORS_ALLOW_ORIGINS", "*")
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
