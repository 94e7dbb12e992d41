package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent and the
// whole list re-runs on every open; ALTER TABLE duplicates are tolerated.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS specializations (
		id                TEXT PRIMARY KEY,
		name              TEXT NOT NULL,
		program_code      TEXT NOT NULL,
		smk_version       TEXT NOT NULL CHECK(smk_version IN ('old','new')),
		start_date        TEXT NOT NULL,
		planned_end_date  TEXT,
		current_module_id TEXT NOT NULL DEFAULT '',
		created_at        TEXT NOT NULL,
		updated_at        TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS modules (
		id                     TEXT PRIMARY KEY,
		specialization_id      TEXT NOT NULL REFERENCES specializations(id) ON DELETE CASCADE,
		name                   TEXT NOT NULL,
		type                   TEXT NOT NULL CHECK(type IN ('basic','specialistic')),
		order_index            INTEGER NOT NULL DEFAULT 0,
		completed_internships  INTEGER NOT NULL DEFAULT 0,
		total_internships      INTEGER NOT NULL DEFAULT 0,
		completed_courses      INTEGER NOT NULL DEFAULT 0,
		total_courses          INTEGER NOT NULL DEFAULT 0,
		completed_procedures_a INTEGER NOT NULL DEFAULT 0,
		total_procedures_a     INTEGER NOT NULL DEFAULT 0,
		completed_procedures_b INTEGER NOT NULL DEFAULT 0,
		total_procedures_b     INTEGER NOT NULL DEFAULT 0,
		completed_shift_hours  REAL NOT NULL DEFAULT 0,
		required_shift_hours   REAL NOT NULL DEFAULT 0,
		created_at             TEXT NOT NULL,
		updated_at             TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_modules_specialization ON modules(specialization_id)`,

	`CREATE TABLE IF NOT EXISTS medical_shifts (
		id                TEXT PRIMARY KEY,
		specialization_id TEXT NOT NULL REFERENCES specializations(id) ON DELETE CASCADE,
		module_id         TEXT NOT NULL REFERENCES modules(id) ON DELETE CASCADE,
		smk_version       TEXT NOT NULL CHECK(smk_version IN ('old','new')),
		year              INTEGER NOT NULL DEFAULT 0,
		location          TEXT NOT NULL DEFAULT '',
		date              TEXT,
		internship_req    TEXT NOT NULL DEFAULT '',
		hours             INTEGER NOT NULL DEFAULT 0,
		minutes           INTEGER NOT NULL DEFAULT 0,
		sync_status       TEXT NOT NULL DEFAULT 'not_synced'
		                  CHECK(sync_status IN ('not_synced','synced','modified','sync_failed')),
		is_approved       INTEGER NOT NULL DEFAULT 0,
		created_at        TEXT NOT NULL,
		updated_at        TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_shifts_module ON medical_shifts(module_id)`,
	`CREATE INDEX IF NOT EXISTS idx_shifts_specialization_year ON medical_shifts(specialization_id, year)`,

	`CREATE TABLE IF NOT EXISTS internships (
		id                TEXT PRIMARY KEY,
		specialization_id TEXT NOT NULL REFERENCES specializations(id) ON DELETE CASCADE,
		module_id         TEXT NOT NULL REFERENCES modules(id) ON DELETE CASCADE,
		smk_version       TEXT NOT NULL CHECK(smk_version IN ('old','new')),
		year              INTEGER NOT NULL DEFAULT 0,
		name              TEXT NOT NULL DEFAULT '',
		requirement_id    TEXT NOT NULL DEFAULT '',
		institution       TEXT NOT NULL DEFAULT '',
		days_count        INTEGER NOT NULL DEFAULT 0,
		start_date        TEXT,
		end_date          TEXT,
		sync_status       TEXT NOT NULL DEFAULT 'not_synced'
		                  CHECK(sync_status IN ('not_synced','synced','modified','sync_failed')),
		is_approved       INTEGER NOT NULL DEFAULT 0,
		created_at        TEXT NOT NULL,
		updated_at        TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_internships_module ON internships(module_id)`,
	`CREATE INDEX IF NOT EXISTS idx_internships_specialization_year ON internships(specialization_id, year)`,

	`CREATE TABLE IF NOT EXISTS procedures (
		id                TEXT PRIMARY KEY,
		specialization_id TEXT NOT NULL REFERENCES specializations(id) ON DELETE CASCADE,
		module_id         TEXT NOT NULL REFERENCES modules(id) ON DELETE CASCADE,
		smk_version       TEXT NOT NULL CHECK(smk_version IN ('old','new')),
		year              INTEGER NOT NULL DEFAULT 0,
		code              TEXT NOT NULL DEFAULT '',
		role              TEXT NOT NULL DEFAULT '' CHECK(role IN ('','A','B')),
		performing_person TEXT NOT NULL DEFAULT '',
		location          TEXT NOT NULL DEFAULT '',
		date              TEXT,
		requirement_id    TEXT NOT NULL DEFAULT '',
		count_operator    INTEGER NOT NULL DEFAULT 0,
		count_assistant   INTEGER NOT NULL DEFAULT 0,
		sync_status       TEXT NOT NULL DEFAULT 'not_synced'
		                  CHECK(sync_status IN ('not_synced','synced','modified','sync_failed')),
		is_approved       INTEGER NOT NULL DEFAULT 0,
		created_at        TEXT NOT NULL,
		updated_at        TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_procedures_module ON procedures(module_id)`,

	`CREATE TABLE IF NOT EXISTS courses (
		id                 TEXT PRIMARY KEY,
		specialization_id  TEXT NOT NULL REFERENCES specializations(id) ON DELETE CASCADE,
		module_id          TEXT NOT NULL REFERENCES modules(id) ON DELETE CASCADE,
		smk_version        TEXT NOT NULL CHECK(smk_version IN ('old','new')),
		year               INTEGER NOT NULL DEFAULT 0,
		name               TEXT NOT NULL DEFAULT '',
		requirement_id     TEXT NOT NULL DEFAULT '',
		completion_date    TEXT,
		certificate_number TEXT NOT NULL DEFAULT '',
		sync_status        TEXT NOT NULL DEFAULT 'not_synced'
		                   CHECK(sync_status IN ('not_synced','synced','modified','sync_failed')),
		is_approved        INTEGER NOT NULL DEFAULT 0,
		created_at         TEXT NOT NULL,
		updated_at         TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_courses_module ON courses(module_id)`,

	`CREATE TABLE IF NOT EXISTS activities (
		id                TEXT PRIMARY KEY,
		specialization_id TEXT NOT NULL REFERENCES specializations(id) ON DELETE CASCADE,
		module_id         TEXT NOT NULL REFERENCES modules(id) ON DELETE CASCADE,
		kind              TEXT NOT NULL
		                  CHECK(kind IN ('self_education','educational_activity','publication','absence')),
		year              INTEGER NOT NULL DEFAULT 0,
		title             TEXT NOT NULL DEFAULT '',
		date              TEXT,
		sync_status       TEXT NOT NULL DEFAULT 'not_synced'
		                  CHECK(sync_status IN ('not_synced','synced','modified','sync_failed')),
		created_at        TEXT NOT NULL,
		updated_at        TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_activities_specialization ON activities(specialization_id)`,
}
