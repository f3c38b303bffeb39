package db

import "database/sql"

const schemaSQL = `
CREATE TABLE IF NOT EXISTS appointments (
	id SERIAL PRIMARY KEY,
	name VARCHAR(100) NOT NULL,
	phone_number VARCHAR(30) NOT NULL,
	date VARCHAR(10) NOT NULL,
	time VARCHAR(5) NOT NULL,
	status VARCHAR(20) NOT NULL DEFAULT 'confirmed',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

-- Slot exclusivity: at most one confirmed appointment per (date, time),
-- enforced even when two requests race past the availability check.
CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_confirmed_slot
	ON appointments (date, time) WHERE status = 'confirmed';

CREATE INDEX IF NOT EXISTS idx_appointments_phone
	ON appointments (phone_number);

CREATE TABLE IF NOT EXISTS admins (
	id SERIAL PRIMARY KEY,
	email TEXT UNIQUE NOT NULL,
	password_hash TEXT NOT NULL
);
`

// Migrate bootstraps the schema. Statements are idempotent so it runs on
// every startup.
func Migrate(database *sql.DB) error {
	_, err := database.Exec(schemaSQL)
	return err
}
