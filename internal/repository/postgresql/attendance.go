package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/peopledesk/peopledesk-backend-go/internal/domain/attendance"
	"github.com/peopledesk/peopledesk-backend-go/internal/domain/employee"
	"github.com/peopledesk/peopledesk-backend-go/internal/pkg/database"
)

const attendanceColumns = `id, employee_id, date, status, in_time, out_time, created_at, updated_at`

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.Date, &a.Status, &a.InTime, &a.OutTime,
		&a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (id, employee_id, date, status, in_time, out_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ` + attendanceColumns

	created, err := scanAttendance(q.QueryRow(ctx, query,
		uuid.NewString(), record.EmployeeID, record.Date, record.Status,
		record.InTime, record.OutTime,
	))
	if err != nil {
		if isForeignKeyViolation(err) {
			return attendance.Attendance{}, employee.ErrEmployeeNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("insert attendance: %w", err)
	}
	return created, nil
}

// GetByEmployeeID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE employee_id = $1 ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list attendance for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	return collectAttendance(rows)
}

// GetAll implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetAll(ctx context.Context) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+attendanceColumns+` FROM attendance ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	defer rows.Close()

	return collectAttendance(rows)
}

// GetByIDs implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByIDs(ctx context.Context, ids []string) ([]attendance.Attendance, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance
		JOIN unnest($1::uuid[]) WITH ORDINALITY AS ref(ref_id, pos) ON attendance.id = ref.ref_id
		ORDER BY ref.pos`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("get attendance by ids: %w", err)
	}
	defer rows.Close()

	return collectAttendance(rows)
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, id string, req attendance.UpdateAttendanceRequest) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	date, err := parseDatePtr(req.Date)
	if err != nil {
		return attendance.Attendance{}, err
	}
	inTime, err := parseTimePtr(req.InTime)
	if err != nil {
		return attendance.Attendance{}, err
	}
	outTime, err := parseTimePtr(req.OutTime)
	if err != nil {
		return attendance.Attendance{}, err
	}

	query := `
		UPDATE attendance SET
			date = COALESCE($2, date),
			status = COALESCE($3, status),
			in_time = COALESCE($4, in_time),
			out_time = COALESCE($5, out_time),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + attendanceColumns

	updated, err := scanAttendance(q.QueryRow(ctx, query, id, date, req.Status, inTime, outTime))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("update attendance %s: %w", id, err)
	}
	return updated, nil
}

// Delete implements attendance.AttendanceRepository. The id stays in the
// owning employee's reference list; populated reads skip it.
func (r *attendanceRepositoryImpl) Delete(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM attendance WHERE id = $1 RETURNING ` + attendanceColumns

	deleted, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("delete attendance %s: %w", id, err)
	}
	return deleted, nil
}

func collectAttendance(rows pgx.Rows) ([]attendance.Attendance, error) {
	var records []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, fmt.Errorf("parse date: %w", err)
	}
	return &t, nil
}

func parseTimePtr(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil, fmt.Errorf("parse timestamp: %w", err)
	}
	return &t, nil
}
