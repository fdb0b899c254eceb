package activitylog

import "context"

type LogService interface {
	Create(ctx context.Context, req CreateLogRequest) (LogResponse, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]LogResponse, error)
	GetAll(ctx context.Context) ([]LogResponse, error)
	Update(ctx context.Context, id string, req UpdateLogRequest) (LogResponse, error)
	Delete(ctx context.Context, id string) error
}
