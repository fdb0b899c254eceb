package employee

import "time"

type Employee struct {
	ID             string
	Name           string
	Email          string
	Position       string
	Department     string
	DateOfJoining  time.Time
	Status         Status
	EmployeeNumber *string
	PhoneNumber    *string
	Address        *string
	// Most-recent-first reference lists; new child records are prepended
	// by the owning service's create path.
	AttendanceIDs []string
	LeaveIDs      []string
	LogIDs        []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Status string

const (
	StatusActive     Status = "active"
	StatusInactive   Status = "inactive"
	StatusTerminated Status = "terminated"
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive || s == StatusTerminated
}

// RefList names one of the employee's child reference lists.
type RefList string

const (
	RefAttendance RefList = "attendance_ids"
	RefLeaves     RefList = "leave_ids"
	RefLogs       RefList = "log_ids"
)
