package db

import (
	"context"
	"crypto/tls"
	"fmt"
	"os"
	"strconv"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Init opens the postgres and redis connections from environment
// variables: DB_HOST, DB_USER, DB_PASSWORD, DB_NAME, DB_PORT, REDIS_ADDR,
// REDIS_USERNAME, REDIS_PASSWORD, REDIS_DB, REDIS_TLS.
func Init() (*gorm.DB, *redis.Client, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, nil, fmt.Errorf("error connecting to database: %w", err)
	}

	rdb, err := redisConnection()
	if err != nil {
		return nil, nil, err
	}

	return database, rdb, nil
}

func redisConnection() (*redis.Client, error) {
	var tlsConfig *tls.Config
	if os.Getenv("REDIS_TLS") == "true" {
		tlsConfig = &tls.Config{}
	}

	dbNum := 0
	if raw := os.Getenv("REDIS_DB"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("error converting REDIS_DB to int: %w", err)
		}
		dbNum = parsed
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:      os.Getenv("REDIS_ADDR"),
		Username:  os.Getenv("REDIS_USERNAME"),
		Password:  os.Getenv("REDIS_PASSWORD"),
		DB:        dbNum,
		TLSConfig: tlsConfig,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return rdb, nil
}
