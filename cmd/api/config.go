package main

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type config struct {
	addr           string
	rateLimitRPS   float64
	rateLimitBurst int
	allowedOrigins []string
	enableHSTS     bool
}

func loadEnvFiles() {
	// Do not override environment provided by the runtime (e.g. Docker).
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

func loadConfig() config {
	return config{
		addr:           getEnv("APP_ADDR", ":8080"),
		rateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 10),
		rateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 20),
		allowedOrigins: splitList(os.Getenv("ALLOWED_ORIGINS")),
		enableHSTS:     os.Getenv("ENABLE_HSTS") == "true",
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %d", key, v, def)
		return def
	}
	return n
}

func getEnvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("invalid %s=%q, using default %g", key, v, def)
		return def
	}
	return f
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
