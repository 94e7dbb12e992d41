package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/adamwrona/rezydent/internal/db"
	"github.com/adamwrona/rezydent/internal/domain"
)

// SQLiteActivityRepo implements ActivityRepo over SQLite.
type SQLiteActivityRepo struct {
	db db.DBTX
}

// NewSQLiteActivityRepo creates a new SQLiteActivityRepo.
func NewSQLiteActivityRepo(conn db.DBTX) *SQLiteActivityRepo {
	return &SQLiteActivityRepo{db: conn}
}

const activityColumns = `id, specialization_id, module_id, kind, year, title, date,
	sync_status, created_at, updated_at`

func (r *SQLiteActivityRepo) Create(ctx context.Context, a *domain.Activity) error {
	query := `INSERT INTO activities (` + activityColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID, a.SpecializationID, a.ModuleID, string(a.Kind), a.Year, a.Title,
		nullableTimeToString(a.Date, dateLayout), string(a.SyncStatus),
		a.CreatedAt.Format(time.RFC3339), a.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting activity: %w", err)
	}
	return nil
}

func (r *SQLiteActivityRepo) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	a, err := scanActivity(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("activity: %w", ErrNotFound)
		}
		return nil, err
	}
	return a, nil
}

func (r *SQLiteActivityRepo) ListBySpecialization(ctx context.Context, specializationID string) ([]*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities
		WHERE specialization_id = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, specializationID)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	defer rows.Close()

	var activities []*domain.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activities: %w", err)
	}
	return activities, nil
}

func (r *SQLiteActivityRepo) CountByKind(ctx context.Context, specializationID string) (map[domain.ActivityKind]int, error) {
	query := `SELECT kind, COUNT(*) FROM activities WHERE specialization_id = ? GROUP BY kind`
	rows, err := r.db.QueryContext(ctx, query, specializationID)
	if err != nil {
		return nil, fmt.Errorf("counting activities: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.ActivityKind]int)
	for rows.Next() {
		var kind string
		var n int
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, fmt.Errorf("scanning activity count: %w", err)
		}
		counts[domain.ActivityKind(kind)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activity counts: %w", err)
	}
	return counts, nil
}

func (r *SQLiteActivityRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM activities WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting activity: %w", err)
	}
	return requireRowAffected(res, "activity")
}

func scanActivity(sc scanner) (*domain.Activity, error) {
	var a domain.Activity
	var kind, syncStatus, createdAtStr, updatedAtStr string
	var date sql.NullString

	err := sc.Scan(
		&a.ID, &a.SpecializationID, &a.ModuleID, &kind, &a.Year, &a.Title,
		&date, &syncStatus, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning activity: %w", err)
	}

	a.Kind = domain.ActivityKind(kind)
	a.SyncStatus = domain.SyncStatus(syncStatus)
	a.Date = parseNullableTime(date, dateLayout)
	if a.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if a.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &a, nil
}
