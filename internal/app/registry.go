package app

import (
	"database/sql"

	"go-people/internal/absence"
	"go-people/internal/employee"
	"go-people/internal/feedback"
	"go-people/internal/messaging/kafka"
	"go-people/internal/middleware"
	"go-people/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	enhancerCfg enhancerConfig,
) error {
	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimitByIP(rate.Limit(50), 100))

	// --- Repositories ---
	absenceRepo := absence.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	feedbackRepo := feedback.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Collaborators ---
	var enhancer feedback.Enhancer
	if enhancerCfg.url != "" {
		enhancer = feedback.NewHTTPEnhancer(enhancerCfg.url, enhancerCfg.timeout)
	}

	// --- Services ---
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, counterRepo, outboxRepo, rdb)
	absenceService := absence.NewServiceWithOutbox(db, absenceRepo, employeeService, outboxRepo, rdb)
	feedbackService := feedback.NewService(feedbackRepo, enhancer, enhancerCfg.failOpen)

	// --- Handlers ---
	absenceHandler := absence.NewHandlerWithRedis(absenceService, rdb)
	employeeHandler := employee.NewHandler(employeeService)
	feedbackHandler := feedback.NewHandler(feedbackService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		absence.RegisterRoutes(api, absenceHandler, rdb)
		employee.RegisterRoutes(api, employeeHandler)
		feedback.RegisterRoutes(api, feedbackHandler)
	}

	return nil
}
