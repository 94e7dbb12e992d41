package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/adamwrona/rezydent/internal/db"
	"github.com/adamwrona/rezydent/internal/domain"
)

// SQLiteCourseRepo implements CourseRepo over SQLite.
type SQLiteCourseRepo struct {
	db db.DBTX
}

// NewSQLiteCourseRepo creates a new SQLiteCourseRepo.
func NewSQLiteCourseRepo(conn db.DBTX) *SQLiteCourseRepo {
	return &SQLiteCourseRepo{db: conn}
}

const courseColumns = `id, specialization_id, module_id, smk_version, year, name,
	requirement_id, completion_date, certificate_number, sync_status, is_approved,
	created_at, updated_at`

func (r *SQLiteCourseRepo) Create(ctx context.Context, c *domain.Course) error {
	query := `INSERT INTO courses (` + courseColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.SpecializationID, c.ModuleID, string(c.Version), c.Year, c.Name,
		c.RequirementID, nullableTimeToString(c.CompletionDate, dateLayout),
		c.CertificateNumber, string(c.SyncStatus), boolToInt(c.IsApproved),
		c.CreatedAt.Format(time.RFC3339), c.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting course: %w", err)
	}
	return nil
}

func (r *SQLiteCourseRepo) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	c, err := scanCourse(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("course: %w", ErrNotFound)
		}
		return nil, err
	}
	return c, nil
}

func (r *SQLiteCourseRepo) ListBySpecialization(ctx context.Context, specializationID string) ([]*domain.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses
		WHERE specialization_id = ? ORDER BY created_at`
	return r.list(ctx, query, specializationID)
}

func (r *SQLiteCourseRepo) ListByModule(ctx context.Context, moduleID string) ([]*domain.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses
		WHERE module_id = ? ORDER BY created_at`
	return r.list(ctx, query, moduleID)
}

func (r *SQLiteCourseRepo) Update(ctx context.Context, c *domain.Course) error {
	query := `UPDATE courses SET
		year = ?, name = ?, requirement_id = ?, completion_date = ?,
		certificate_number = ?, sync_status = ?, is_approved = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		c.Year, c.Name, c.RequirementID,
		nullableTimeToString(c.CompletionDate, dateLayout),
		c.CertificateNumber, string(c.SyncStatus), boolToInt(c.IsApproved),
		c.UpdatedAt.Format(time.RFC3339),
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating course: %w", err)
	}
	return requireRowAffected(res, "course")
}

func (r *SQLiteCourseRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM courses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting course: %w", err)
	}
	return requireRowAffected(res, "course")
}

func (r *SQLiteCourseRepo) list(ctx context.Context, query string, args ...any) ([]*domain.Course, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing courses: %w", err)
	}
	defer rows.Close()

	var courses []*domain.Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating courses: %w", err)
	}
	return courses, nil
}

func scanCourse(sc scanner) (*domain.Course, error) {
	var c domain.Course
	var version, syncStatus, createdAtStr, updatedAtStr string
	var completionDate sql.NullString
	var approved int

	err := sc.Scan(
		&c.ID, &c.SpecializationID, &c.ModuleID, &version, &c.Year, &c.Name,
		&c.RequirementID, &completionDate, &c.CertificateNumber,
		&syncStatus, &approved, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning course: %w", err)
	}

	c.Version = domain.SMKVersion(version)
	c.SyncStatus = domain.SyncStatus(syncStatus)
	c.IsApproved = intToBool(approved)
	c.CompletionDate = parseNullableTime(completionDate, dateLayout)
	if c.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if c.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &c, nil
}
