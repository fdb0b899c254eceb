package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/peopledesk/peopledesk-backend-go/internal/domain/employee"
	"github.com/peopledesk/peopledesk-backend-go/internal/pkg/database"
)

const employeeColumns = `id, name, email, position, department, date_of_joining, status,
		employee_number, phone_number, address, attendance_ids, leave_ids, log_ids,
		created_at, updated_at`

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.Name, &emp.Email, &emp.Position, &emp.Department,
		&emp.DateOfJoining, &emp.Status, &emp.EmployeeNumber, &emp.PhoneNumber,
		&emp.Address, &emp.AttendanceIDs, &emp.LeaveIDs, &emp.LogIDs,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (
			id, name, email, position, department, date_of_joining, status,
			employee_number, phone_number, address, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING ` + employeeColumns

	status := newEmployee.Status
	if status == "" {
		status = employee.StatusActive
	}

	created, err := scanEmployee(q.QueryRow(ctx, query,
		uuid.NewString(), newEmployee.Name, newEmployee.Email, newEmployee.Position,
		newEmployee.Department, newEmployee.DateOfJoining, status,
		newEmployee.EmployeeNumber, newEmployee.PhoneNumber, newEmployee.Address,
	))
	if err != nil {
		switch {
		case isUniqueViolation(err, "employees_email_key"):
			return employee.Employee{}, employee.ErrEmailExists
		case isUniqueViolation(err, "employees_employee_number_key"):
			return employee.Employee{}, employee.ErrNumberExists
		}
		return employee.Employee{}, fmt.Errorf("insert employee: %w", err)
	}
	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("get employee %s: %w", id, err)
	}
	return emp, nil
}

// GetAll implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetAll(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

// GetByIDs implements employee.EmployeeRepository. Results follow the
// order of ids; missing ids are skipped.
func (e *employeeRepositoryImpl) GetByIDs(ctx context.Context, ids []string) ([]employee.Employee, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		JOIN unnest($1::uuid[]) WITH ORDINALITY AS ref(ref_id, pos) ON employees.id = ref.ref_id
		ORDER BY ref.pos`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("get employees by ids: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

// ListSummary implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListSummary(ctx context.Context) ([]employee.EmployeeSummary, error) {
	q := GetQuerier(ctx, e.db)

	rows, err := q.Query(ctx, `SELECT id, name, email FROM employees ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list employee summaries: %w", err)
	}
	defer rows.Close()

	var summaries []employee.EmployeeSummary
	for rows.Next() {
		var s employee.EmployeeSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Email); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// Update implements employee.EmployeeRepository. Only provided fields are
// replaced.
func (e *employeeRepositoryImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	var joining *time.Time
	if req.DateOfJoining != nil {
		parsed, err := time.Parse("2006-01-02", *req.DateOfJoining)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("parse date_of_joining: %w", err)
		}
		joining = &parsed
	}

	query := `
		UPDATE employees SET
			name = COALESCE($2, name),
			email = COALESCE($3, email),
			position = COALESCE($4, position),
			department = COALESCE($5, department),
			date_of_joining = COALESCE($6, date_of_joining),
			status = COALESCE($7, status),
			employee_number = COALESCE($8, employee_number),
			phone_number = COALESCE($9, phone_number),
			address = COALESCE($10, address),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + employeeColumns

	updated, err := scanEmployee(q.QueryRow(ctx, query, id,
		req.Name, req.Email, req.Position, req.Department, joining,
		req.Status, req.EmployeeNumber, req.PhoneNumber, req.Address,
	))
	if err != nil {
		switch {
		case err == pgx.ErrNoRows:
			return employee.Employee{}, employee.ErrEmployeeNotFound
		case isUniqueViolation(err, "employees_email_key"):
			return employee.Employee{}, employee.ErrEmailExists
		case isUniqueViolation(err, "employees_employee_number_key"):
			return employee.Employee{}, employee.ErrNumberExists
		}
		return employee.Employee{}, fmt.Errorf("update employee %s: %w", id, err)
	}
	return updated, nil
}

// Delete implements employee.EmployeeRepository. Child attendance, leave
// and log rows go with the employee via FK cascade.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `DELETE FROM employees WHERE id = $1 RETURNING ` + employeeColumns

	deleted, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("delete employee %s: %w", id, err)
	}
	return deleted, nil
}

// LinkRecord implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) LinkRecord(ctx context.Context, employeeID string, list employee.RefList, recordID string) error {
	q := GetQuerier(ctx, e.db)

	var query string
	switch list {
	case employee.RefAttendance:
		query = `
			UPDATE employees SET
				attendance_ids = CASE WHEN $2::uuid = ANY(attendance_ids)
					THEN attendance_ids ELSE array_prepend($2::uuid, attendance_ids) END,
				updated_at = NOW()
			WHERE id = $1
			RETURNING id`
	case employee.RefLeaves:
		query = `
			UPDATE employees SET
				leave_ids = CASE WHEN $2::uuid = ANY(leave_ids)
					THEN leave_ids ELSE array_prepend($2::uuid, leave_ids) END,
				updated_at = NOW()
			WHERE id = $1
			RETURNING id`
	case employee.RefLogs:
		query = `
			UPDATE employees SET
				log_ids = CASE WHEN $2::uuid = ANY(log_ids)
					THEN log_ids ELSE array_prepend($2::uuid, log_ids) END,
				updated_at = NOW()
			WHERE id = $1
			RETURNING id`
	default:
		return fmt.Errorf("unknown reference list %q", list)
	}

	var linkedID string
	if err := q.QueryRow(ctx, query, employeeID, recordID).Scan(&linkedID); err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("link %s record %s to employee %s: %w", list, recordID, employeeID, err)
	}
	return nil
}
