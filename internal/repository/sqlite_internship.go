package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/adamwrona/rezydent/internal/db"
	"github.com/adamwrona/rezydent/internal/domain"
)

// SQLiteInternshipRepo implements InternshipRepo over SQLite.
type SQLiteInternshipRepo struct {
	db db.DBTX
}

// NewSQLiteInternshipRepo creates a new SQLiteInternshipRepo.
func NewSQLiteInternshipRepo(conn db.DBTX) *SQLiteInternshipRepo {
	return &SQLiteInternshipRepo{db: conn}
}

const internshipColumns = `id, specialization_id, module_id, smk_version, year, name,
	requirement_id, institution, days_count, start_date, end_date,
	sync_status, is_approved, created_at, updated_at`

func (r *SQLiteInternshipRepo) Create(ctx context.Context, i *domain.Internship) error {
	query := `INSERT INTO internships (` + internshipColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		i.ID, i.SpecializationID, i.ModuleID, string(i.Version), i.Year, i.Name,
		i.RequirementID, i.Institution, i.DaysCount,
		nullableTimeToString(i.StartDate, dateLayout),
		nullableTimeToString(i.EndDate, dateLayout),
		string(i.SyncStatus), boolToInt(i.IsApproved),
		i.CreatedAt.Format(time.RFC3339), i.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting internship: %w", err)
	}
	return nil
}

func (r *SQLiteInternshipRepo) GetByID(ctx context.Context, id string) (*domain.Internship, error) {
	query := `SELECT ` + internshipColumns + ` FROM internships WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	i, err := scanInternship(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("internship: %w", ErrNotFound)
		}
		return nil, err
	}
	return i, nil
}

func (r *SQLiteInternshipRepo) ListBySpecialization(ctx context.Context, specializationID string) ([]*domain.Internship, error) {
	query := `SELECT ` + internshipColumns + ` FROM internships
		WHERE specialization_id = ? ORDER BY created_at`
	return r.list(ctx, query, specializationID)
}

func (r *SQLiteInternshipRepo) ListByModule(ctx context.Context, moduleID string) ([]*domain.Internship, error) {
	query := `SELECT ` + internshipColumns + ` FROM internships
		WHERE module_id = ? ORDER BY created_at`
	return r.list(ctx, query, moduleID)
}

func (r *SQLiteInternshipRepo) Update(ctx context.Context, i *domain.Internship) error {
	query := `UPDATE internships SET
		year = ?, name = ?, requirement_id = ?, institution = ?, days_count = ?,
		start_date = ?, end_date = ?, sync_status = ?, is_approved = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		i.Year, i.Name, i.RequirementID, i.Institution, i.DaysCount,
		nullableTimeToString(i.StartDate, dateLayout),
		nullableTimeToString(i.EndDate, dateLayout),
		string(i.SyncStatus), boolToInt(i.IsApproved),
		i.UpdatedAt.Format(time.RFC3339),
		i.ID,
	)
	if err != nil {
		return fmt.Errorf("updating internship: %w", err)
	}
	return requireRowAffected(res, "internship")
}

func (r *SQLiteInternshipRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM internships WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting internship: %w", err)
	}
	return requireRowAffected(res, "internship")
}

func (r *SQLiteInternshipRepo) list(ctx context.Context, query string, args ...any) ([]*domain.Internship, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing internships: %w", err)
	}
	defer rows.Close()

	var internships []*domain.Internship
	for rows.Next() {
		i, err := scanInternship(rows)
		if err != nil {
			return nil, err
		}
		internships = append(internships, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating internships: %w", err)
	}
	return internships, nil
}

func scanInternship(sc scanner) (*domain.Internship, error) {
	var i domain.Internship
	var version, syncStatus, createdAtStr, updatedAtStr string
	var startDate, endDate sql.NullString
	var approved int

	err := sc.Scan(
		&i.ID, &i.SpecializationID, &i.ModuleID, &version, &i.Year, &i.Name,
		&i.RequirementID, &i.Institution, &i.DaysCount, &startDate, &endDate,
		&syncStatus, &approved, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning internship: %w", err)
	}

	i.Version = domain.SMKVersion(version)
	i.SyncStatus = domain.SyncStatus(syncStatus)
	i.IsApproved = intToBool(approved)
	i.StartDate = parseNullableTime(startDate, dateLayout)
	i.EndDate = parseNullableTime(endDate, dateLayout)
	if i.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if i.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &i, nil
}
