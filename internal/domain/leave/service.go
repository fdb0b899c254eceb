package leave

import "context"

type LeaveService interface {
	Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]LeaveResponse, error)
	GetAll(ctx context.Context) ([]LeaveResponse, error)
	Update(ctx context.Context, id string, req UpdateLeaveRequest) (LeaveResponse, error)
	Delete(ctx context.Context, id string) error
}
