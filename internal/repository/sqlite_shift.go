package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/adamwrona/rezydent/internal/db"
	"github.com/adamwrona/rezydent/internal/domain"
)

// SQLiteShiftRepo implements ShiftRepo over SQLite.
type SQLiteShiftRepo struct {
	db db.DBTX
}

// NewSQLiteShiftRepo creates a new SQLiteShiftRepo.
func NewSQLiteShiftRepo(conn db.DBTX) *SQLiteShiftRepo {
	return &SQLiteShiftRepo{db: conn}
}

const shiftColumns = `id, specialization_id, module_id, smk_version, year, location,
	date, internship_req, hours, minutes, sync_status, is_approved, created_at, updated_at`

func (r *SQLiteShiftRepo) Create(ctx context.Context, s *domain.MedicalShift) error {
	query := `INSERT INTO medical_shifts (` + shiftColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.SpecializationID, s.ModuleID, string(s.Version), s.Year, s.Location,
		nullableTimeToString(s.Date, dateLayout), s.InternshipReq, s.Hours, s.Minutes,
		string(s.SyncStatus), boolToInt(s.IsApproved),
		s.CreatedAt.Format(time.RFC3339), s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting medical shift: %w", err)
	}
	return nil
}

func (r *SQLiteShiftRepo) GetByID(ctx context.Context, id string) (*domain.MedicalShift, error) {
	query := `SELECT ` + shiftColumns + ` FROM medical_shifts WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	s, err := scanShift(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("medical shift: %w", ErrNotFound)
		}
		return nil, err
	}
	return s, nil
}

func (r *SQLiteShiftRepo) ListBySpecialization(ctx context.Context, specializationID string) ([]*domain.MedicalShift, error) {
	query := `SELECT ` + shiftColumns + ` FROM medical_shifts
		WHERE specialization_id = ? ORDER BY created_at`
	return r.list(ctx, query, specializationID)
}

func (r *SQLiteShiftRepo) ListByModule(ctx context.Context, moduleID string) ([]*domain.MedicalShift, error) {
	query := `SELECT ` + shiftColumns + ` FROM medical_shifts
		WHERE module_id = ? ORDER BY created_at`
	return r.list(ctx, query, moduleID)
}

func (r *SQLiteShiftRepo) ListByYear(ctx context.Context, specializationID string, year int) ([]*domain.MedicalShift, error) {
	query := `SELECT ` + shiftColumns + ` FROM medical_shifts
		WHERE specialization_id = ? AND year = ? ORDER BY created_at`
	return r.list(ctx, query, specializationID, year)
}

func (r *SQLiteShiftRepo) Update(ctx context.Context, s *domain.MedicalShift) error {
	// The shift date is intentionally absent: it cannot change once persisted.
	query := `UPDATE medical_shifts SET
		year = ?, location = ?, internship_req = ?, hours = ?, minutes = ?,
		sync_status = ?, is_approved = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		s.Year, s.Location, s.InternshipReq, s.Hours, s.Minutes,
		string(s.SyncStatus), boolToInt(s.IsApproved),
		s.UpdatedAt.Format(time.RFC3339),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating medical shift: %w", err)
	}
	return requireRowAffected(res, "medical shift")
}

func (r *SQLiteShiftRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM medical_shifts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting medical shift: %w", err)
	}
	return requireRowAffected(res, "medical shift")
}

func (r *SQLiteShiftRepo) list(ctx context.Context, query string, args ...any) ([]*domain.MedicalShift, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing medical shifts: %w", err)
	}
	defer rows.Close()

	var shifts []*domain.MedicalShift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating medical shifts: %w", err)
	}
	return shifts, nil
}

func scanShift(sc scanner) (*domain.MedicalShift, error) {
	var s domain.MedicalShift
	var version, syncStatus, createdAtStr, updatedAtStr string
	var date sql.NullString
	var approved int

	err := sc.Scan(
		&s.ID, &s.SpecializationID, &s.ModuleID, &version, &s.Year, &s.Location,
		&date, &s.InternshipReq, &s.Hours, &s.Minutes, &syncStatus, &approved,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning medical shift: %w", err)
	}

	s.Version = domain.SMKVersion(version)
	s.SyncStatus = domain.SyncStatus(syncStatus)
	s.IsApproved = intToBool(approved)
	s.Date = parseNullableTime(date, dateLayout)
	if s.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if s.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &s, nil
}
