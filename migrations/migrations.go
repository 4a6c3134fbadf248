package migrations

import (
	"database/sql"
	"fmt"
)

// AutoMigrateCalculations creates the calculations table if it does not exist.
func AutoMigrateCalculations(db *sql.DB) error {
	query := `CREATE TABLE IF NOT EXISTS calculations (
		id VARCHAR(36) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		record JSON NOT NULL,
		saved_at DATETIME NOT NULL,
		version VARCHAR(16) NOT NULL,
		current_step INT NOT NULL,
		completed_steps JSON NOT NULL
	)`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to migrate calculations table: %w", err)
	}
	return nil
}
