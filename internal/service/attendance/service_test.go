package attendance

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peopledesk/peopledesk-backend-go/internal/domain/attendance"
	"github.com/peopledesk/peopledesk-backend-go/internal/domain/employee"
	"github.com/peopledesk/peopledesk-backend-go/internal/pkg/validator"
)

const testEmployeeID = "550e8400-e29b-41d4-a716-446655440000"

type fakeEmployeeRepo struct {
	employee.EmployeeRepository

	employees map[string]*employee.Employee
	failLinks int
	linkCalls int
}

func newFakeEmployeeRepo(ids ...string) *fakeEmployeeRepo {
	repo := &fakeEmployeeRepo{employees: make(map[string]*employee.Employee)}
	for _, id := range ids {
		repo.employees[id] = &employee.Employee{ID: id}
	}
	return repo
}

func (f *fakeEmployeeRepo) LinkRecord(ctx context.Context, employeeID string, list employee.RefList, recordID string) error {
	f.linkCalls++
	if f.failLinks > 0 {
		f.failLinks--
		return errors.New("link write failed")
	}

	emp, ok := f.employees[employeeID]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	for _, id := range emp.AttendanceIDs {
		if id == recordID {
			return nil
		}
	}
	emp.AttendanceIDs = append([]string{recordID}, emp.AttendanceIDs...)
	return nil
}

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository

	employees *fakeEmployeeRepo
	records   map[string]attendance.Attendance
	nextID    int
}

func newFakeAttendanceRepo(employees *fakeEmployeeRepo) *fakeAttendanceRepo {
	return &fakeAttendanceRepo{
		employees: employees,
		records:   make(map[string]attendance.Attendance),
	}
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	if _, ok := f.employees.employees[record.EmployeeID]; !ok {
		return attendance.Attendance{}, employee.ErrEmployeeNotFound
	}
	f.nextID++
	record.ID = string(rune('a' + f.nextID - 1))
	f.records[record.ID] = record
	return record, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, id string, req attendance.UpdateAttendanceRequest) (attendance.Attendance, error) {
	record, ok := f.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	if req.Status != nil {
		record.Status = attendance.Status(*req.Status)
	}
	f.records[id] = record
	return record, nil
}

func validCreateRequest() attendance.CreateAttendanceRequest {
	return attendance.CreateAttendanceRequest{
		EmployeeID: testEmployeeID,
		Date:       "2024-01-15",
		Status:     "present",
	}
}

func TestAttendanceService_Create_LinksNewestFirst(t *testing.T) {
	ctx := context.Background()
	employees := newFakeEmployeeRepo(testEmployeeID)
	records := newFakeAttendanceRepo(employees)
	svc := NewAttendanceService(records, employees)

	first, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	second, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, []string{second.ID, first.ID}, employees.employees[testEmployeeID].AttendanceIDs)
}

func TestAttendanceService_Create_RetriesLinkOnce(t *testing.T) {
	ctx := context.Background()
	employees := newFakeEmployeeRepo(testEmployeeID)
	employees.failLinks = 1
	records := newFakeAttendanceRepo(employees)
	svc := NewAttendanceService(records, employees)

	result, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, 2, employees.linkCalls)
	assert.Equal(t, []string{result.ID}, employees.employees[testEmployeeID].AttendanceIDs)
}

func TestAttendanceService_Create_LinkFailureKeepsRecord(t *testing.T) {
	ctx := context.Background()
	employees := newFakeEmployeeRepo(testEmployeeID)
	employees.failLinks = 2
	records := newFakeAttendanceRepo(employees)
	svc := NewAttendanceService(records, employees)

	_, err := svc.Create(ctx, validCreateRequest())
	require.Error(t, err)

	// Two-phase write: the primary record is not rolled back
	assert.Equal(t, 2, employees.linkCalls)
	assert.Len(t, records.records, 1)
	assert.Empty(t, employees.employees[testEmployeeID].AttendanceIDs)
}

func TestAttendanceService_Create_UnknownEmployee(t *testing.T) {
	ctx := context.Background()
	employees := newFakeEmployeeRepo()
	records := newFakeAttendanceRepo(employees)
	svc := NewAttendanceService(records, employees)

	_, err := svc.Create(ctx, validCreateRequest())
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestAttendanceService_Create_InvalidStatus(t *testing.T) {
	ctx := context.Background()
	employees := newFakeEmployeeRepo(testEmployeeID)
	records := newFakeAttendanceRepo(employees)
	svc := NewAttendanceService(records, employees)

	req := validCreateRequest()
	req.Status = "vacationing"

	_, err := svc.Create(ctx, req)

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "status")
	assert.Zero(t, employees.linkCalls)
}

func TestAttendanceService_Update_NotFound(t *testing.T) {
	ctx := context.Background()
	employees := newFakeEmployeeRepo(testEmployeeID)
	records := newFakeAttendanceRepo(employees)
	svc := NewAttendanceService(records, employees)

	_, err := svc.Update(ctx, "missing", attendance.UpdateAttendanceRequest{})
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}
