package app

import (
	"go-people/internal/absence"
	"go-people/internal/employee"
	"go-people/internal/feedback"

	"gorm.io/gorm"
)

func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&employee.Employee{}, &feedback.Feedback{}); err != nil {
		return err
	}

	if err := absence.Migrate(db); err != nil {
		return err
	}

	// The counter and outbox tables are used through raw SQL, so they are
	// created the same way.
	if err := db.Exec(`
		CREATE TABLE IF NOT EXISTS counters (
			counter_type VARCHAR(50) PRIMARY KEY,
			last_value   BIGINT NOT NULL DEFAULT 0,
			updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`).Error; err != nil {
		return err
	}

	return db.Exec(`
		CREATE TABLE IF NOT EXISTS outbox_events (
			id             UUID PRIMARY KEY,
			request_id     VARCHAR(100),
			aggregate_type VARCHAR(50) NOT NULL,
			aggregate_id   UUID NOT NULL,
			event_type     VARCHAR(100) NOT NULL,
			topic          VARCHAR(200) NOT NULL,
			payload        JSONB NOT NULL,
			status         VARCHAR(20) NOT NULL DEFAULT 'pending',
			retry_count    INT NOT NULL DEFAULT 0,
			error_message  VARCHAR(500),
			next_retry_at  TIMESTAMPTZ,
			processed_at   TIMESTAMPTZ,
			created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`).Error
}
