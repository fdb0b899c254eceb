package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/peopledesk/peopledesk-backend-go/internal/domain/activitylog"
	"github.com/peopledesk/peopledesk-backend-go/internal/domain/employee"
	"github.com/peopledesk/peopledesk-backend-go/internal/pkg/database"
)

const logColumns = `id, employee_id, action, occurred_at, details, created_at, updated_at`

type logRepositoryImpl struct {
	db *database.DB
}

func NewLogRepository(db *database.DB) activitylog.LogRepository {
	return &logRepositoryImpl{db: db}
}

func scanLog(row pgx.Row) (activitylog.ActivityLog, error) {
	var l activitylog.ActivityLog
	err := row.Scan(
		&l.ID, &l.EmployeeID, &l.Action, &l.OccurredAt, &l.Details,
		&l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

// Create implements activitylog.LogRepository.
func (r *logRepositoryImpl) Create(ctx context.Context, record activitylog.ActivityLog) (activitylog.ActivityLog, error) {
	q := GetQuerier(ctx, r.db)

	occurredAt := record.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}

	query := `
		INSERT INTO activity_logs (id, employee_id, action, occurred_at, details, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING ` + logColumns

	created, err := scanLog(q.QueryRow(ctx, query,
		uuid.NewString(), record.EmployeeID, record.Action, occurredAt, record.Details,
	))
	if err != nil {
		if isForeignKeyViolation(err) {
			return activitylog.ActivityLog{}, employee.ErrEmployeeNotFound
		}
		return activitylog.ActivityLog{}, fmt.Errorf("insert activity log: %w", err)
	}
	return created, nil
}

// GetByEmployeeID implements activitylog.LogRepository.
func (r *logRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) ([]activitylog.ActivityLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + logColumns + ` FROM activity_logs WHERE employee_id = $1 ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list activity logs for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	return collectLogs(rows)
}

// GetAll implements activitylog.LogRepository.
func (r *logRepositoryImpl) GetAll(ctx context.Context) ([]activitylog.ActivityLog, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+logColumns+` FROM activity_logs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list activity logs: %w", err)
	}
	defer rows.Close()

	return collectLogs(rows)
}

// GetByIDs implements activitylog.LogRepository.
func (r *logRepositoryImpl) GetByIDs(ctx context.Context, ids []string) ([]activitylog.ActivityLog, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + logColumns + `
		FROM activity_logs
		JOIN unnest($1::uuid[]) WITH ORDINALITY AS ref(ref_id, pos) ON activity_logs.id = ref.ref_id
		ORDER BY ref.pos`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("get activity logs by ids: %w", err)
	}
	defer rows.Close()

	return collectLogs(rows)
}

// Update implements activitylog.LogRepository.
func (r *logRepositoryImpl) Update(ctx context.Context, id string, req activitylog.UpdateLogRequest) (activitylog.ActivityLog, error) {
	q := GetQuerier(ctx, r.db)

	occurredAt, err := parseTimePtr(req.Timestamp)
	if err != nil {
		return activitylog.ActivityLog{}, err
	}

	query := `
		UPDATE activity_logs SET
			action = COALESCE($2, action),
			occurred_at = COALESCE($3, occurred_at),
			details = COALESCE($4, details),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + logColumns

	updated, err := scanLog(q.QueryRow(ctx, query, id, req.Action, occurredAt, req.Details))
	if err != nil {
		if err == pgx.ErrNoRows {
			return activitylog.ActivityLog{}, activitylog.ErrLogNotFound
		}
		return activitylog.ActivityLog{}, fmt.Errorf("update activity log %s: %w", id, err)
	}
	return updated, nil
}

// Delete implements activitylog.LogRepository.
func (r *logRepositoryImpl) Delete(ctx context.Context, id string) (activitylog.ActivityLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM activity_logs WHERE id = $1 RETURNING ` + logColumns

	deleted, err := scanLog(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return activitylog.ActivityLog{}, activitylog.ErrLogNotFound
		}
		return activitylog.ActivityLog{}, fmt.Errorf("delete activity log %s: %w", id, err)
	}
	return deleted, nil
}

func collectLogs(rows pgx.Rows) ([]activitylog.ActivityLog, error) {
	var records []activitylog.ActivityLog
	for rows.Next() {
		l, err := scanLog(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, l)
	}
	return records, rows.Err()
}
