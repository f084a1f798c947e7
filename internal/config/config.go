package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          int
	AdminPassword string
	JWTSecret     string

	StoreDriver string
	DataFile    string
	MongoURI    string
	MongoDB     string

	StorageDriver string
	UploadDir     string
	PublicDir     string
	S3Bucket      string
	S3KeyPrefix   string
	AWSRegion     string
	AWSAccessKey  string
	AWSSecretKey  string

	LambdaRuntime bool
}

// Load reads configuration from the environment. Defaults preserve the
// original hard-coded constants so a bare `inkpot` run just works.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("inkpot: loading .env failed: %v", err)
	}

	return &Config{
		Port:          getEnvInt("PORT", 8080),
		AdminPassword: getEnv("ADMIN_PASSWORD", "666"),
		JWTSecret:     getEnv("JWT_SECRET", "inkpot-dev-secret"),

		StoreDriver: getEnv("STORE_DRIVER", "file"),
		DataFile:    getEnv("DATA_FILE", "data/posts.json"),
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:     getEnv("MONGO_DB", "inkpot"),

		StorageDriver: getEnv("STORAGE_DRIVER", "local"),
		UploadDir:     getEnv("UPLOAD_DIR", "public/uploads"),
		PublicDir:     getEnv("PUBLIC_DIR", "public"),
		S3Bucket:      getEnv("S3_BUCKET", ""),
		S3KeyPrefix:   getEnv("S3_KEY_PREFIX", "uploads"),
		AWSRegion:     getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKey:  getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:  getEnv("AWS_SECRET_ACCESS_KEY", ""),

		LambdaRuntime: getEnv("LAMBDA_RUNTIME", "") == "true",
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("inkpot: invalid %s=%q, using %d", key, value, fallback)
		return fallback
	}
	return n
}
