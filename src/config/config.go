package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

func GetDSN() string {
	DATABASE_HOST := os.Getenv("DATABASE_HOST")
	DATABASE_PORT := os.Getenv("DATABASE_PORT")
	DATABASE_SSLMODE := os.Getenv("DATABASE_SSLMODE")
	DATABASE_TIMEZONE := os.Getenv("DATABASE_TIMEZONE")
	DATABASE_USER := os.Getenv("DATABASE_USER")
	DATABASE_PASSWORD := os.Getenv("DATABASE_PASSWORD")
	DATABASE_NAME := os.Getenv("DATABASE_NAME")
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s", DATABASE_HOST, DATABASE_USER, DATABASE_PASSWORD, DATABASE_NAME, DATABASE_PORT, DATABASE_SSLMODE, DATABASE_TIMEZONE)
	return dsn
}

// Pricing policy. Both values may be overridden per deployment; the defaults
// are the published rates.
const (
	DEFAULT_CLEANING_FEE     = 15.0
	DEFAULT_SERVICE_FEE_RATE = 0.10
	// Share of the total price withheld when a confirmed booking is cancelled.
	DEFAULT_CANCELLATION_RATE = 0.10
)

func CleaningFee() float64 {
	return envFloat("CLEANING_FEE", DEFAULT_CLEANING_FEE)
}

func ServiceFeeRate() float64 {
	return envFloat("SERVICE_FEE_RATE", DEFAULT_SERVICE_FEE_RATE)
}

func CancellationRate() float64 {
	return envFloat("CANCELLATION_RATE", DEFAULT_CANCELLATION_RATE)
}

func envFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("Invalid value for %s [%s], using default %v\n", key, raw, fallback)
		return fallback
	}
	return v
}
