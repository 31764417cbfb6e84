package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// Config collects every environment-driven setting the service reads at
// startup. Optional integrations (RabbitMQ, Redis) stay empty when not
// configured and the service runs without them.
type Config struct {
	Port          string
	MongoURI      string
	MongoDatabase string

	RabbitURL      string
	RabbitExchange string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	OpenAIKey     string
	OpenAIBaseURL string
	OpenAIModel   string

	AllowOrigins []string
}

func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8086"),
		MongoURI:      os.Getenv("MONGO_URI"),
		MongoDatabase: getEnv("MONGO_DATABASE", "assessment_service"),

		RabbitURL:      os.Getenv("RABBITMQ_URI"),
		RabbitExchange: getEnv("RABBITMQ_EXCHANGE", "assessment.events"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		OpenAIModel:   os.Getenv("OPENAI_MODEL"),

		AllowOrigins: getEnvAsSlice("ALLOW_ORIGINS", []string{"http://localhost:3000"}),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getEnvAsSlice(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
