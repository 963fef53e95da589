package bootstrap

import (
	"leavedesk/internal/employee"
	"leavedesk/internal/ledger"
	"leavedesk/internal/leave"

	"gorm.io/gorm"
)

// Migrate creates the domain tables plus the infrastructure tables the
// outbox worker and the counter need (raw SQL, gorm has no entity for
// them).
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&employee.Employee{},
		&ledger.LeaveBalance{},
		&leave.LeaveRequest{},
	); err != nil {
		return err
	}

	if err := db.Exec(`
		CREATE TABLE IF NOT EXISTS outbox_events (
			id UUID PRIMARY KEY,
			request_id TEXT,
			aggregate_type TEXT NOT NULL,
			aggregate_id UUID NOT NULL,
			event_type TEXT NOT NULL,
			topic TEXT NOT NULL,
			payload JSONB NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			retry_count INT NOT NULL DEFAULT 0,
			error_message TEXT,
			next_retry_at TIMESTAMPTZ,
			processed_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`).Error; err != nil {
		return err
	}

	return db.Exec(`
		CREATE TABLE IF NOT EXISTS counters (
			counter_type TEXT PRIMARY KEY,
			last_value BIGINT NOT NULL DEFAULT 0,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`).Error
}
