package migration

import (
	"database/sql"

	"github.com/pressly/goose"
)

func init() {
	goose.AddMigration(Up20261019090000, Down20261019090000)
}

func Up20261019090000(tx *sql.Tx) error {
	_, err := tx.Exec(`CREATE TABLE IF NOT EXISTS registrations (
		id VARCHAR(36) NOT NULL,
		asset VARCHAR(100) NOT NULL,
		memo TEXT NOT NULL,
		modified_memo TEXT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		tx_hash VARCHAR(100) NULL,
		reference VARCHAR(50) NULL,
		reference_length INT NULL,
		height BIGINT NULL,
		registered_by VARCHAR(100) NULL,
		decimals INT NULL,
		minimum_amount VARCHAR(100) NULL,
		failure_reason TEXT NULL,
		created_at DATETIME NULL,
		updated_at DATETIME NULL,

		PRIMARY KEY (id),
		UNIQUE INDEX tx_hash (tx_hash),
		INDEX asset_reference (asset, reference),
		INDEX status (status)
	);`)
	return err
}

func Down20261019090000(tx *sql.Tx) error {
	_, err := tx.Exec("DROP TABLE IF EXISTS registrations;")
	return err
}
