package config

import (
	"os"
	"strconv"
)

type Config struct {
	StoreName             string
	TaxRatePercent        float64
	DiscountAmount        float64
	RedisAddr             string
	RedisPassword         string
	RedisDB               int
	SearchCacheTTLSeconds int
}

func Load() Config {
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	ttl, err := strconv.Atoi(getEnv("SEARCH_CACHE_TTL_SECONDS", "20"))
	if err != nil || ttl < 1 {
		ttl = 20
	}
	taxRate, err := strconv.ParseFloat(getEnv("TAX_RATE_PERCENT", "0"), 64)
	if err != nil || taxRate < 0 || taxRate > 100 {
		taxRate = 0
	}
	discount, err := strconv.ParseFloat(getEnv("DISCOUNT_AMOUNT", "0"), 64)
	if err != nil || discount < 0 {
		discount = 0
	}

	cfg := Config{
		StoreName:             getEnv("STORE_NAME", "Supermarket POS System"),
		TaxRatePercent:        taxRate,
		DiscountAmount:        discount,
		RedisAddr:             os.Getenv("REDIS_ADDR"),
		RedisPassword:         os.Getenv("REDIS_PASSWORD"),
		RedisDB:               redisDB,
		SearchCacheTTLSeconds: ttl,
	}

	return cfg
}

func getEnv(key string, fallback string) string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	return val
}
