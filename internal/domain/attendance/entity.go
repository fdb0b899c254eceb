package attendance

import "time"

type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Status     Status
	InTime     *time.Time
	OutTime    *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLeave   Status = "leave"
)

func (s Status) Valid() bool {
	return s == StatusPresent || s == StatusAbsent || s == StatusLeave
}
