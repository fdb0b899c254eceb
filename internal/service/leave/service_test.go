package leave

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peopledesk/peopledesk-backend-go/internal/domain/employee"
	"github.com/peopledesk/peopledesk-backend-go/internal/domain/leave"
	"github.com/peopledesk/peopledesk-backend-go/internal/pkg/validator"
)

const testEmployeeID = "550e8400-e29b-41d4-a716-446655440000"

type fakeEmployeeRepo struct {
	employee.EmployeeRepository

	leaveIDs  []string
	failLinks int
	linkCalls int
}

func (f *fakeEmployeeRepo) LinkRecord(ctx context.Context, employeeID string, list employee.RefList, recordID string) error {
	f.linkCalls++
	if f.failLinks > 0 {
		f.failLinks--
		return errors.New("link write failed")
	}
	for _, id := range f.leaveIDs {
		if id == recordID {
			return nil
		}
	}
	f.leaveIDs = append([]string{recordID}, f.leaveIDs...)
	return nil
}

type fakeLeaveRepo struct {
	leave.LeaveRepository

	records map[string]leave.Leave
	nextID  int
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{records: make(map[string]leave.Leave)}
}

func (f *fakeLeaveRepo) Create(ctx context.Context, record leave.Leave) (leave.Leave, error) {
	f.nextID++
	record.ID = string(rune('a' + f.nextID - 1))
	f.records[record.ID] = record
	return record, nil
}

func (f *fakeLeaveRepo) Update(ctx context.Context, id string, req leave.UpdateLeaveRequest) (leave.Leave, error) {
	record, ok := f.records[id]
	if !ok {
		return leave.Leave{}, leave.ErrLeaveNotFound
	}
	if req.Status != nil {
		record.Status = leave.Status(*req.Status)
	}
	f.records[id] = record
	return record, nil
}

func validCreateRequest() leave.CreateLeaveRequest {
	return leave.CreateLeaveRequest{
		EmployeeID: testEmployeeID,
		StartDate:  "2024-03-01",
		EndDate:    "2024-03-05",
		Reason:     "family event",
	}
}

func TestLeaveService_Create_AlwaysStartsPending(t *testing.T) {
	ctx := context.Background()
	employees := &fakeEmployeeRepo{}
	records := newFakeLeaveRepo()
	svc := NewLeaveService(records, employees)

	req := validCreateRequest()
	req.Status = "approved"

	result, err := svc.Create(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, string(leave.StatusPending), result.Status)
	assert.Equal(t, leave.StatusPending, records.records[result.ID].Status)
}

func TestLeaveService_Create_LinksOntoEmployee(t *testing.T) {
	ctx := context.Background()
	employees := &fakeEmployeeRepo{}
	records := newFakeLeaveRepo()
	svc := NewLeaveService(records, employees)

	first, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)
	second, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, []string{second.ID, first.ID}, employees.leaveIDs)
}

func TestLeaveService_Create_RetriesLinkOnce(t *testing.T) {
	ctx := context.Background()
	employees := &fakeEmployeeRepo{failLinks: 1}
	records := newFakeLeaveRepo()
	svc := NewLeaveService(records, employees)

	result, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, 2, employees.linkCalls)
	assert.Equal(t, []string{result.ID}, employees.leaveIDs)
}

func TestLeaveService_Create_EndBeforeStart(t *testing.T) {
	ctx := context.Background()
	employees := &fakeEmployeeRepo{}
	records := newFakeLeaveRepo()
	svc := NewLeaveService(records, employees)

	req := validCreateRequest()
	req.StartDate = "2024-03-05"
	req.EndDate = "2024-03-01"

	_, err := svc.Create(ctx, req)

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "end_date")
}

func TestLeaveService_Update_Approves(t *testing.T) {
	ctx := context.Background()
	employees := &fakeEmployeeRepo{}
	records := newFakeLeaveRepo()
	svc := NewLeaveService(records, employees)

	created, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	approved := "approved"
	result, err := svc.Update(ctx, created.ID, leave.UpdateLeaveRequest{Status: &approved})
	require.NoError(t, err)

	assert.Equal(t, "approved", result.Status)
}

func TestLeaveService_Update_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewLeaveService(newFakeLeaveRepo(), &fakeEmployeeRepo{})

	_, err := svc.Update(ctx, "missing", leave.UpdateLeaveRequest{})
	assert.ErrorIs(t, err, leave.ErrLeaveNotFound)
}
