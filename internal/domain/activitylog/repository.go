package activitylog

import "context"

type LogRepository interface {
	Create(ctx context.Context, record ActivityLog) (ActivityLog, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]ActivityLog, error)
	GetAll(ctx context.Context) ([]ActivityLog, error)
	// GetByIDs returns the records for the given ids in the same order,
	// silently skipping ids that no longer resolve.
	GetByIDs(ctx context.Context, ids []string) ([]ActivityLog, error)
	Update(ctx context.Context, id string, req UpdateLogRequest) (ActivityLog, error)
	Delete(ctx context.Context, id string) (ActivityLog, error)
}
