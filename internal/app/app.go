package app

import (
	"os"
	"strconv"
	"time"

	"go-people/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	zap.L().Info("database connection established")

	if err := migrate(gormDB); err != nil {
		return err
	}
	zap.L().Info("database migrations applied")

	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	rdb, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	zap.L().Info("redis connection established")

	return registerModules(router, db, gormDB, rdb, enhancerConfigFromEnv())
}

type enhancerConfig struct {
	url      string
	timeout  time.Duration
	failOpen bool
}

func enhancerConfigFromEnv() enhancerConfig {
	cfg := enhancerConfig{
		url:      os.Getenv("ENHANCER_URL"),
		timeout:  5 * time.Second,
		failOpen: true,
	}

	if raw := os.Getenv("ENHANCER_TIMEOUT_SECONDS"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			cfg.timeout = time.Duration(secs) * time.Second
		}
	}
	if raw := os.Getenv("ENHANCER_FAIL_OPEN"); raw != "" {
		if parsed, err := strconv.ParseBool(raw); err == nil {
			cfg.failOpen = parsed
		}
	}
	return cfg
}
