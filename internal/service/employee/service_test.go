package employee

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peopledesk/peopledesk-backend-go/internal/domain/activitylog"
	"github.com/peopledesk/peopledesk-backend-go/internal/domain/attendance"
	"github.com/peopledesk/peopledesk-backend-go/internal/domain/employee"
	"github.com/peopledesk/peopledesk-backend-go/internal/domain/leave"
	"github.com/peopledesk/peopledesk-backend-go/internal/pkg/validator"
)

type fakeEmployeeRepo struct {
	employee.EmployeeRepository

	employees map[string]employee.Employee
	nextID    int
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	for _, existing := range f.employees {
		if existing.Email == newEmployee.Email {
			return employee.Employee{}, employee.ErrEmailExists
		}
	}
	f.nextID++
	newEmployee.ID = string(rune('a' + f.nextID - 1))
	if newEmployee.Status == "" {
		newEmployee.Status = employee.StatusActive
	}
	f.employees[newEmployee.ID] = newEmployee
	return newEmployee, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Position != nil {
		emp.Position = *req.Position
	}
	f.employees[id] = emp
	return emp, nil
}

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository

	records map[string]attendance.Attendance
}

func (f *fakeAttendanceRepo) GetByIDs(ctx context.Context, ids []string) ([]attendance.Attendance, error) {
	var result []attendance.Attendance
	for _, id := range ids {
		if record, ok := f.records[id]; ok {
			result = append(result, record)
		}
	}
	return result, nil
}

type fakeLeaveRepo struct {
	leave.LeaveRepository
}

func (f *fakeLeaveRepo) GetByIDs(ctx context.Context, ids []string) ([]leave.Leave, error) {
	return nil, nil
}

type fakeLogRepo struct {
	activitylog.LogRepository
}

func (f *fakeLogRepo) GetByIDs(ctx context.Context, ids []string) ([]activitylog.ActivityLog, error) {
	return nil, nil
}

func newTestService(repo *fakeEmployeeRepo, attendanceRepo *fakeAttendanceRepo) employee.EmployeeService {
	return NewEmployeeService(nil, repo, attendanceRepo, &fakeLeaveRepo{}, &fakeLogRepo{}, nil)
}

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		Name:          "Ada Lovelace",
		Email:         "ada@example.com",
		Position:      "Engineer",
		Department:    "R&D",
		DateOfJoining: "2024-01-15",
	}
}

func TestEmployeeService_Create_Success(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := newTestService(repo, &fakeAttendanceRepo{})

	result, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, result.ID)
	assert.Equal(t, "Ada Lovelace", result.Name)
	assert.Equal(t, "2024-01-15", result.DateOfJoining)
	assert.Equal(t, string(employee.StatusActive), result.Status)
}

func TestEmployeeService_Create_DuplicateEmail(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := newTestService(repo, &fakeAttendanceRepo{})

	_, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestEmployeeService_Create_MissingFields(t *testing.T) {
	svc := newTestService(newFakeEmployeeRepo(), &fakeAttendanceRepo{})

	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{Email: "bad"})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	details := validationErrs.ToMap()
	assert.Contains(t, details, "name")
	assert.Contains(t, details, "email")
	assert.Contains(t, details, "date_of_joining")
}

func TestEmployeeService_GetByID_ExpandsChildrenInListOrder(t *testing.T) {
	repo := newFakeEmployeeRepo()
	repo.employees["e1"] = employee.Employee{
		ID:            "e1",
		Name:          "Ada Lovelace",
		DateOfJoining: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		// newest first; "gone" no longer resolves
		AttendanceIDs: []string{"a2", "gone", "a1"},
	}
	attendanceRepo := &fakeAttendanceRepo{records: map[string]attendance.Attendance{
		"a1": {ID: "a1", EmployeeID: "e1", Status: attendance.StatusPresent},
		"a2": {ID: "a2", EmployeeID: "e1", Status: attendance.StatusAbsent},
	}}
	svc := newTestService(repo, attendanceRepo)

	result, err := svc.GetByID(context.Background(), "e1")
	require.NoError(t, err)

	require.Len(t, result.Attendance, 2)
	assert.Equal(t, "a2", result.Attendance[0].ID)
	assert.Equal(t, "a1", result.Attendance[1].ID)
	assert.Empty(t, result.Leaves)
	assert.Empty(t, result.Logs)
}

func TestEmployeeService_GetByID_NotFound(t *testing.T) {
	svc := newTestService(newFakeEmployeeRepo(), &fakeAttendanceRepo{})

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeService_Update_Partial(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := newTestService(repo, &fakeAttendanceRepo{})

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	position := "Staff Engineer"
	result, err := svc.Update(context.Background(), created.ID, employee.UpdateEmployeeRequest{Position: &position})
	require.NoError(t, err)

	assert.Equal(t, "Staff Engineer", result.Position)
	assert.Equal(t, "Ada Lovelace", result.Name)
}

func TestEmployeeService_Update_EmptyNameRejected(t *testing.T) {
	svc := newTestService(newFakeEmployeeRepo(), &fakeAttendanceRepo{})

	empty := "  "
	_, err := svc.Update(context.Background(), "e1", employee.UpdateEmployeeRequest{Name: &empty})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "name")
}
