package activitylog

import "time"

// ActivityLog is a free-text audit entry tied to one employee.
type ActivityLog struct {
	ID         string
	EmployeeID string
	Action     string
	OccurredAt time.Time
	Details    *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
