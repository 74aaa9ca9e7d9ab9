package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	JWTSecret string
	SkipAuth  bool
	LogLevel  string // "debug", "info", "warn", "error"
	AppId     string

	// Operational store (sync logs, settings, app logs)
	MongoURI string
	DBName   string

	// Origin contact store (five source tables)
	OriginDBDriver string // "postgres" or "mysql"
	OriginDBDSN    string

	// External relationship-intelligence API
	RelationshipAPIURL string
	RelationshipAPIKey string

	// External contacts provider (Google sync bridge)
	ProviderAPIURL string
	ProviderAPIKey string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file successfully")
	}

	return &Config{
		Port:      getEnv("PORT", "8080"),
		JWTSecret: getEnv("JWT_SECRET", "secret"),
		SkipAuth:  getEnv("SKIP_AUTH", "false") == "true",
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		AppId:     getEnv("APP_ID", "go-contacthub"),

		MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:   getEnv("DB_NAME", "contacthub"),

		OriginDBDriver: getEnv("ORIGIN_DB_DRIVER", "postgres"),
		OriginDBDSN:    getEnv("ORIGIN_DB_DSN", "host=localhost port=5432 user=postgres dbname=contacthub sslmode=disable"),

		RelationshipAPIURL: getEnv("RELATIONSHIP_API_URL", "https://api.relationshipiq.example.com/v1"),
		RelationshipAPIKey: getEnv("RELATIONSHIP_API_KEY", ""),

		ProviderAPIURL: getEnv("PROVIDER_API_URL", "http://localhost:9090/api/google"),
		ProviderAPIKey: getEnv("PROVIDER_API_KEY", ""),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
