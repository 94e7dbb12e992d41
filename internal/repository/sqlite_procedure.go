package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/adamwrona/rezydent/internal/db"
	"github.com/adamwrona/rezydent/internal/domain"
)

// SQLiteProcedureRepo implements ProcedureRepo over SQLite.
type SQLiteProcedureRepo struct {
	db db.DBTX
}

// NewSQLiteProcedureRepo creates a new SQLiteProcedureRepo.
func NewSQLiteProcedureRepo(conn db.DBTX) *SQLiteProcedureRepo {
	return &SQLiteProcedureRepo{db: conn}
}

const procedureColumns = `id, specialization_id, module_id, smk_version, year, code, role,
	performing_person, location, date, requirement_id, count_operator, count_assistant,
	sync_status, is_approved, created_at, updated_at`

func (r *SQLiteProcedureRepo) Create(ctx context.Context, p *domain.Procedure) error {
	query := `INSERT INTO procedures (` + procedureColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.SpecializationID, p.ModuleID, string(p.Version), p.Year, p.Code, string(p.Role),
		p.PerformingPerson, p.Location, nullableTimeToString(p.Date, dateLayout),
		p.RequirementID, p.CountOperator, p.CountAssistant,
		string(p.SyncStatus), boolToInt(p.IsApproved),
		p.CreatedAt.Format(time.RFC3339), p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting procedure: %w", err)
	}
	return nil
}

func (r *SQLiteProcedureRepo) GetByID(ctx context.Context, id string) (*domain.Procedure, error) {
	query := `SELECT ` + procedureColumns + ` FROM procedures WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	p, err := scanProcedure(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("procedure: %w", ErrNotFound)
		}
		return nil, err
	}
	return p, nil
}

func (r *SQLiteProcedureRepo) ListBySpecialization(ctx context.Context, specializationID string) ([]*domain.Procedure, error) {
	query := `SELECT ` + procedureColumns + ` FROM procedures
		WHERE specialization_id = ? ORDER BY created_at`
	return r.list(ctx, query, specializationID)
}

func (r *SQLiteProcedureRepo) ListByModule(ctx context.Context, moduleID string) ([]*domain.Procedure, error) {
	query := `SELECT ` + procedureColumns + ` FROM procedures
		WHERE module_id = ? ORDER BY created_at`
	return r.list(ctx, query, moduleID)
}

func (r *SQLiteProcedureRepo) Update(ctx context.Context, p *domain.Procedure) error {
	query := `UPDATE procedures SET
		year = ?, code = ?, role = ?, performing_person = ?, location = ?,
		requirement_id = ?, count_operator = ?, count_assistant = ?,
		sync_status = ?, is_approved = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.Year, p.Code, string(p.Role), p.PerformingPerson, p.Location,
		p.RequirementID, p.CountOperator, p.CountAssistant,
		string(p.SyncStatus), boolToInt(p.IsApproved),
		p.UpdatedAt.Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating procedure: %w", err)
	}
	return requireRowAffected(res, "procedure")
}

func (r *SQLiteProcedureRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM procedures WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting procedure: %w", err)
	}
	return requireRowAffected(res, "procedure")
}

func (r *SQLiteProcedureRepo) list(ctx context.Context, query string, args ...any) ([]*domain.Procedure, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing procedures: %w", err)
	}
	defer rows.Close()

	var procedures []*domain.Procedure
	for rows.Next() {
		p, err := scanProcedure(rows)
		if err != nil {
			return nil, err
		}
		procedures = append(procedures, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating procedures: %w", err)
	}
	return procedures, nil
}

func scanProcedure(sc scanner) (*domain.Procedure, error) {
	var p domain.Procedure
	var version, role, syncStatus, createdAtStr, updatedAtStr string
	var date sql.NullString
	var approved int

	err := sc.Scan(
		&p.ID, &p.SpecializationID, &p.ModuleID, &version, &p.Year, &p.Code, &role,
		&p.PerformingPerson, &p.Location, &date, &p.RequirementID,
		&p.CountOperator, &p.CountAssistant, &syncStatus, &approved,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning procedure: %w", err)
	}

	p.Version = domain.SMKVersion(version)
	p.Role = domain.ProcedureRole(role)
	p.SyncStatus = domain.SyncStatus(syncStatus)
	p.IsApproved = intToBool(approved)
	p.Date = parseNullableTime(date, dateLayout)
	if p.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if p.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &p, nil
}
