package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	ServerPort string
	Env        string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string

	// CategoryFile optionally points at a YAML file overriding the built-in
	// category master.
	CategoryFile string

	// MaxListLimit caps the page size of record list views.
	MaxListLimit int
	// BodyLimitBytes caps inbound request bodies (file uploads arrive as
	// base64 inside JSON, so this bounds upload size too).
	BodyLimitBytes int64
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "records")
	ServerPort = getEnv("SERVER_PORT", "8080")
	Env = getEnv("APP_ENV", "dev")

	MinioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	MinioBucket = getEnv("MINIO_BUCKET", "record-files")
	MinioUseSSL, _ = strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))

	CategoryFile = getEnv("CATEGORY_FILE", "")

	MaxListLimit = getEnvInt("MAX_LIST_LIMIT", 100)
	BodyLimitBytes = int64(getEnvInt("BODY_LIMIT_BYTES", 10485760))
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
