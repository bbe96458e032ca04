package config

import (
	"os"
	"strconv"
)

type Config struct {
	DBUrl       string
	JWTSecret   string
	TokenTTLMin int
	UploadDir   string
	AWSBucket   string
	AWSRegion   string
	Port        string
}

func LoadConfig() *Config {
	return &Config{
		DBUrl:       getEnv("DB_URL", "insta_lite.db"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		TokenTTLMin: getEnvInt("TOKEN_TTL_MINUTES", 30),
		UploadDir:   getEnv("UPLOAD_DIR", "uploads"),
		AWSBucket:   os.Getenv("AWS_BUCKET_NAME"),
		AWSRegion:   os.Getenv("AWS_REGION"),
		Port:        getEnv("PORT", "8080"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
