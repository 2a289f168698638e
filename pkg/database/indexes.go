package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent/Atlas cannot express.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// At most one run per task in status 'running'.
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS task_runs_one_running_per_task
		ON task_runs (task_id)
		WHERE status = 'running'`)
	if err != nil {
		return fmt.Errorf("failed to create single-running-run index: %w", err)
	}

	// At most one pending approval per step execution.
	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS step_approvals_one_pending_per_step
		ON workflow_step_approvals (step_execution_id)
		WHERE status = 'pending'`)
	if err != nil {
		return fmt.Errorf("failed to create single-pending-approval index: %w", err)
	}

	return nil
}
