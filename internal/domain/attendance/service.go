package attendance

import "context"

type AttendanceService interface {
	Create(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]AttendanceResponse, error)
	GetAll(ctx context.Context) ([]AttendanceResponse, error)
	Update(ctx context.Context, id string, req UpdateAttendanceRequest) (AttendanceResponse, error)
	Delete(ctx context.Context, id string) error
}
