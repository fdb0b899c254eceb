package attendance

import "context"

type AttendanceRepository interface {
	Create(ctx context.Context, record Attendance) (Attendance, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]Attendance, error)
	GetAll(ctx context.Context) ([]Attendance, error)
	// GetByIDs returns the records for the given ids in the same order,
	// silently skipping ids that no longer resolve.
	GetByIDs(ctx context.Context, ids []string) ([]Attendance, error)
	Update(ctx context.Context, id string, req UpdateAttendanceRequest) (Attendance, error)
	Delete(ctx context.Context, id string) (Attendance, error)
}
