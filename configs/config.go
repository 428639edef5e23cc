package config

import "os"

type R2 struct {
	AccountID  string
	AccessKey  string
	SecretKey  string
	BucketName string
	PublicURL  string
}

type Config struct {
	StoreBackend     string // postgres, redis or memory
	PostgresURI      string
	RedisURI         string
	PublisherBaseURL string
	FrontendURL      string
	AutoPublish      bool
	R2               R2
	SecretKey        string
	CookieName       string
}

func LoadConfig() *Config {
	return &Config{
		StoreBackend:     getEnv("STORE_BACKEND", "memory"),
		PostgresURI:      getEnv("POSTGRES_URI", ""),
		RedisURI:         getEnv("REDIS_URI", "127.0.0.1:6379"),
		PublisherBaseURL: getEnv("PUBLISHER_BASE_URL", "http://localhost:8000/api"),
		FrontendURL:      getEnv("FRONTEND_URL", "http://localhost:5173"),
		AutoPublish:      getEnv("AUTO_PUBLISH", "") == "true",
		R2: R2{
			AccountID:  getEnv("R2_ACCOUNT_ID", ""),
			AccessKey:  getEnv("R2_ACCESS_KEY", ""),
			SecretKey:  getEnv("R2_SECRET_KEY", ""),
			BucketName: getEnv("R2_BUCKET_NAME", ""),
			PublicURL:  getEnv("R2_PUBLIC_URL", ""),
		},
		SecretKey:  getEnv("SECRET_KEY", ""),
		CookieName: getEnv("COOKIE_NAME", "gw_session"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
