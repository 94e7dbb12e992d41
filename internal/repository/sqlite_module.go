package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/adamwrona/rezydent/internal/db"
	"github.com/adamwrona/rezydent/internal/domain"
)

// SQLiteModuleRepo implements ModuleRepo over SQLite.
type SQLiteModuleRepo struct {
	db db.DBTX
}

// NewSQLiteModuleRepo creates a new SQLiteModuleRepo.
func NewSQLiteModuleRepo(conn db.DBTX) *SQLiteModuleRepo {
	return &SQLiteModuleRepo{db: conn}
}

const moduleColumns = `id, specialization_id, name, type, order_index,
	completed_internships, total_internships, completed_courses, total_courses,
	completed_procedures_a, total_procedures_a, completed_procedures_b, total_procedures_b,
	completed_shift_hours, required_shift_hours, created_at, updated_at`

func (r *SQLiteModuleRepo) Create(ctx context.Context, m *domain.Module) error {
	query := `INSERT INTO modules (` + moduleColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.SpecializationID, m.Name, string(m.Type), m.OrderIndex,
		m.CompletedInternships, m.TotalInternships, m.CompletedCourses, m.TotalCourses,
		m.CompletedProceduresA, m.TotalProceduresA, m.CompletedProceduresB, m.TotalProceduresB,
		m.CompletedShiftHours, m.RequiredShiftHours,
		m.CreatedAt.Format(time.RFC3339), m.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting module: %w", err)
	}
	return nil
}

func (r *SQLiteModuleRepo) GetByID(ctx context.Context, id string) (*domain.Module, error) {
	query := `SELECT ` + moduleColumns + ` FROM modules WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	m, err := scanModule(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("module: %w", ErrNotFound)
		}
		return nil, err
	}
	return m, nil
}

func (r *SQLiteModuleRepo) ListBySpecialization(ctx context.Context, specializationID string) ([]*domain.Module, error) {
	query := `SELECT ` + moduleColumns + ` FROM modules
		WHERE specialization_id = ? ORDER BY order_index`
	rows, err := r.db.QueryContext(ctx, query, specializationID)
	if err != nil {
		return nil, fmt.Errorf("listing modules: %w", err)
	}
	defer rows.Close()

	var modules []*domain.Module
	for rows.Next() {
		m, err := scanModule(rows)
		if err != nil {
			return nil, err
		}
		modules = append(modules, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating modules: %w", err)
	}
	return modules, nil
}

func (r *SQLiteModuleRepo) Update(ctx context.Context, m *domain.Module) error {
	query := `UPDATE modules SET
		name = ?, order_index = ?,
		completed_internships = ?, total_internships = ?,
		completed_courses = ?, total_courses = ?,
		completed_procedures_a = ?, total_procedures_a = ?,
		completed_procedures_b = ?, total_procedures_b = ?,
		completed_shift_hours = ?, required_shift_hours = ?,
		updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		m.Name, m.OrderIndex,
		m.CompletedInternships, m.TotalInternships,
		m.CompletedCourses, m.TotalCourses,
		m.CompletedProceduresA, m.TotalProceduresA,
		m.CompletedProceduresB, m.TotalProceduresB,
		m.CompletedShiftHours, m.RequiredShiftHours,
		m.UpdatedAt.Format(time.RFC3339),
		m.ID,
	)
	if err != nil {
		return fmt.Errorf("updating module: %w", err)
	}
	return requireRowAffected(res, "module")
}

// scanner abstracts *sql.Row and *sql.Rows for shared scan code.
type scanner interface {
	Scan(dest ...any) error
}

func scanModule(sc scanner) (*domain.Module, error) {
	var m domain.Module
	var typ, createdAtStr, updatedAtStr string

	err := sc.Scan(
		&m.ID, &m.SpecializationID, &m.Name, &typ, &m.OrderIndex,
		&m.CompletedInternships, &m.TotalInternships, &m.CompletedCourses, &m.TotalCourses,
		&m.CompletedProceduresA, &m.TotalProceduresA, &m.CompletedProceduresB, &m.TotalProceduresB,
		&m.CompletedShiftHours, &m.RequiredShiftHours, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning module: %w", err)
	}

	m.Type = domain.ModuleType(typ)
	if m.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if m.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &m, nil
}
