package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/peopledesk/peopledesk-backend-go/internal/domain/employee"
	"github.com/peopledesk/peopledesk-backend-go/internal/domain/leave"
	"github.com/peopledesk/peopledesk-backend-go/internal/pkg/database"
)

const leaveColumns = `id, employee_id, start_date, end_date, reason, status, created_at, updated_at`

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

func scanLeave(row pgx.Row) (leave.Leave, error) {
	var l leave.Leave
	err := row.Scan(
		&l.ID, &l.EmployeeID, &l.StartDate, &l.EndDate, &l.Reason, &l.Status,
		&l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, record leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leaves (id, employee_id, start_date, end_date, reason, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ` + leaveColumns

	created, err := scanLeave(q.QueryRow(ctx, query,
		uuid.NewString(), record.EmployeeID, record.StartDate, record.EndDate,
		record.Reason, record.Status,
	))
	if err != nil {
		if isForeignKeyViolation(err) {
			return leave.Leave{}, employee.ErrEmployeeNotFound
		}
		return leave.Leave{}, fmt.Errorf("insert leave: %w", err)
	}
	return created, nil
}

// GetByEmployeeID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveColumns + ` FROM leaves WHERE employee_id = $1 ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list leaves for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	return collectLeaves(rows)
}

// GetAll implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetAll(ctx context.Context) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+leaveColumns+` FROM leaves ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list leaves: %w", err)
	}
	defer rows.Close()

	return collectLeaves(rows)
}

// GetByIDs implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByIDs(ctx context.Context, ids []string) ([]leave.Leave, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leaves
		JOIN unnest($1::uuid[]) WITH ORDINALITY AS ref(ref_id, pos) ON leaves.id = ref.ref_id
		ORDER BY ref.pos`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("get leaves by ids: %w", err)
	}
	defer rows.Close()

	return collectLeaves(rows)
}

// Update implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Update(ctx context.Context, id string, req leave.UpdateLeaveRequest) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	startDate, err := parseDatePtr(req.StartDate)
	if err != nil {
		return leave.Leave{}, err
	}
	endDate, err := parseDatePtr(req.EndDate)
	if err != nil {
		return leave.Leave{}, err
	}

	query := `
		UPDATE leaves SET
			start_date = COALESCE($2, start_date),
			end_date = COALESCE($3, end_date),
			reason = COALESCE($4, reason),
			status = COALESCE($5, status),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + leaveColumns

	updated, err := scanLeave(q.QueryRow(ctx, query, id, startDate, endDate, req.Reason, req.Status))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, fmt.Errorf("update leave %s: %w", id, err)
	}
	return updated, nil
}

// Delete implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Delete(ctx context.Context, id string) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM leaves WHERE id = $1 RETURNING ` + leaveColumns

	deleted, err := scanLeave(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, fmt.Errorf("delete leave %s: %w", id, err)
	}
	return deleted, nil
}

func collectLeaves(rows pgx.Rows) ([]leave.Leave, error) {
	var records []leave.Leave
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, l)
	}
	return records, rows.Err()
}
