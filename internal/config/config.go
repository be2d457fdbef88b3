package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the process-wide database handle. The handle is injected into
// the repositories; nothing else in the program holds connection state.
func InitDB() *gorm.DB {
	dsn := DatabaseDSN()

	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "1" {
		logLevel = logger.Info
	}
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logLevel)}

	var db *gorm.DB
	var err error
	for i := 0; i < 5; i++ {
		db, err = gorm.Open(postgres.Open(dsn), cfg)
		if err == nil {
			return db
		}
		log.Println("Retrying DB connection...", err)
		time.Sleep(2 * time.Second)
	}
	log.Fatalf("failed to connect database after retries: %v", err)
	return nil
}

// DatabaseDSN prefers DATABASE_URL and otherwise assembles a DSN from the
// discrete DB_* variables.
func DatabaseDSN() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_NAME", "biztime"),
		getEnv("DB_PORT", "5432"),
	)
}

func Port() string {
	return getEnv("PORT", "8080")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
