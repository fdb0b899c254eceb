package leave

import "context"

type LeaveRepository interface {
	Create(ctx context.Context, record Leave) (Leave, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]Leave, error)
	GetAll(ctx context.Context) ([]Leave, error)
	// GetByIDs returns the records for the given ids in the same order,
	// silently skipping ids that no longer resolve.
	GetByIDs(ctx context.Context, ids []string) ([]Leave, error)
	Update(ctx context.Context, id string, req UpdateLeaveRequest) (Leave, error)
	Delete(ctx context.Context, id string) (Leave, error)
}
