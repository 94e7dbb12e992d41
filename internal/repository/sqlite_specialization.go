package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/adamwrona/rezydent/internal/db"
	"github.com/adamwrona/rezydent/internal/domain"
)

// SQLiteSpecializationRepo implements SpecializationRepo over SQLite.
type SQLiteSpecializationRepo struct {
	db db.DBTX
}

// NewSQLiteSpecializationRepo creates a new SQLiteSpecializationRepo.
func NewSQLiteSpecializationRepo(conn db.DBTX) *SQLiteSpecializationRepo {
	return &SQLiteSpecializationRepo{db: conn}
}

const specializationColumns = `id, name, program_code, smk_version, start_date, planned_end_date, current_module_id, created_at, updated_at`

func (r *SQLiteSpecializationRepo) Create(ctx context.Context, s *domain.Specialization) error {
	query := `INSERT INTO specializations (` + specializationColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Name,
		s.ProgramCode,
		string(s.SMKVersion),
		s.StartDate.Format(dateLayout),
		nullableTimeToString(s.PlannedEndDate, dateLayout),
		s.CurrentModuleID,
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting specialization: %w", err)
	}
	return nil
}

func (r *SQLiteSpecializationRepo) GetByID(ctx context.Context, id string) (*domain.Specialization, error) {
	query := `SELECT ` + specializationColumns + ` FROM specializations WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanSpecialization(row)
}

func (r *SQLiteSpecializationRepo) List(ctx context.Context) ([]*domain.Specialization, error) {
	query := `SELECT ` + specializationColumns + ` FROM specializations ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing specializations: %w", err)
	}
	defer rows.Close()

	var specs []*domain.Specialization
	for rows.Next() {
		s, err := r.scanSpecializationRow(rows)
		if err != nil {
			return nil, err
		}
		specs = append(specs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating specializations: %w", err)
	}
	return specs, nil
}

func (r *SQLiteSpecializationRepo) Update(ctx context.Context, s *domain.Specialization) error {
	query := `UPDATE specializations
		SET name = ?, planned_end_date = ?, current_module_id = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		s.Name,
		nullableTimeToString(s.PlannedEndDate, dateLayout),
		s.CurrentModuleID,
		s.UpdatedAt.Format(time.RFC3339),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating specialization: %w", err)
	}
	return requireRowAffected(res, "specialization")
}

func (r *SQLiteSpecializationRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM specializations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting specialization: %w", err)
	}
	return requireRowAffected(res, "specialization")
}

func (r *SQLiteSpecializationRepo) scanSpecialization(row *sql.Row) (*domain.Specialization, error) {
	var s domain.Specialization
	var version, startDateStr, createdAtStr, updatedAtStr string
	var plannedEnd sql.NullString

	err := row.Scan(
		&s.ID, &s.Name, &s.ProgramCode, &version, &startDateStr,
		&plannedEnd, &s.CurrentModuleID, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("specialization: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning specialization: %w", err)
	}
	return r.populate(&s, version, startDateStr, plannedEnd, createdAtStr, updatedAtStr)
}

func (r *SQLiteSpecializationRepo) scanSpecializationRow(rows *sql.Rows) (*domain.Specialization, error) {
	var s domain.Specialization
	var version, startDateStr, createdAtStr, updatedAtStr string
	var plannedEnd sql.NullString

	err := rows.Scan(
		&s.ID, &s.Name, &s.ProgramCode, &version, &startDateStr,
		&plannedEnd, &s.CurrentModuleID, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning specialization row: %w", err)
	}
	return r.populate(&s, version, startDateStr, plannedEnd, createdAtStr, updatedAtStr)
}

func (r *SQLiteSpecializationRepo) populate(s *domain.Specialization, version, startDateStr string, plannedEnd sql.NullString, createdAtStr, updatedAtStr string) (*domain.Specialization, error) {
	s.SMKVersion = domain.SMKVersion(version)
	var err error
	if s.StartDate, err = time.Parse(dateLayout, startDateStr); err != nil {
		return nil, fmt.Errorf("parsing start_date: %w", err)
	}
	s.PlannedEndDate = parseNullableTime(plannedEnd, dateLayout)
	if s.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if s.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return s, nil
}

// requireRowAffected converts a zero-row update/delete into ErrNotFound.
func requireRowAffected(res sql.Result, entity string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", entity, ErrNotFound)
	}
	return nil
}
