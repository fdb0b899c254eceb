package employee

import (
	"time"

	"github.com/peopledesk/peopledesk-backend-go/internal/domain/activitylog"
	"github.com/peopledesk/peopledesk-backend-go/internal/domain/attendance"
	"github.com/peopledesk/peopledesk-backend-go/internal/domain/leave"
	"github.com/peopledesk/peopledesk-backend-go/internal/pkg/validator"
)

// EmployeeData is the serialized employee without populated children.
// Group member expansion reuses it.
type EmployeeData struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Position       string    `json:"position"`
	Department     string    `json:"department"`
	DateOfJoining  string    `json:"date_of_joining"`
	Status         string    `json:"status"`
	EmployeeNumber *string   `json:"employee_number,omitempty"`
	PhoneNumber    *string   `json:"phone_number,omitempty"`
	Address        *string   `json:"address,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// EmployeeResponse is an employee with its reference lists expanded into
// full child records, most recent first.
type EmployeeResponse struct {
	EmployeeData
	Attendance []attendance.AttendanceResponse `json:"attendance"`
	Leaves     []leave.LeaveResponse           `json:"leaves"`
	Logs       []activitylog.LogResponse       `json:"logs"`
}

// EmployeeSummary is the lightweight projection for unauthenticated listings.
type EmployeeSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func ToData(e Employee) EmployeeData {
	return EmployeeData{
		ID:             e.ID,
		Name:           e.Name,
		Email:          e.Email,
		Position:       e.Position,
		Department:     e.Department,
		DateOfJoining:  e.DateOfJoining.Format("2006-01-02"),
		Status:         string(e.Status),
		EmployeeNumber: e.EmployeeNumber,
		PhoneNumber:    e.PhoneNumber,
		Address:        e.Address,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

type CreateEmployeeRequest struct {
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Position       string  `json:"position"`
	Department     string  `json:"department"`
	DateOfJoining  string  `json:"date_of_joining"`
	Status         string  `json:"status,omitempty"`
	EmployeeNumber *string `json:"employee_number,omitempty"`
	PhoneNumber    *string `json:"phone_number,omitempty"`
	Address        *string `json:"address,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	required := map[string]string{
		"name":       r.Name,
		"position":   r.Position,
		"department": r.Department,
	}
	for field, value := range required {
		if validator.IsEmpty(value) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " is required",
			})
		}
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if validator.IsEmpty(r.DateOfJoining) {
		errs = append(errs, validator.ValidationError{
			Field:   "date_of_joining",
			Message: "date_of_joining is required",
		})
	} else if _, ok := validator.IsValidDate(r.DateOfJoining); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date_of_joining",
			Message: "date_of_joining must be a valid ISO 8601 date",
		})
	}

	if r.Status != "" && !Status(r.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be active, inactive, or terminated",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	Name           *string `json:"name,omitempty"`
	Email          *string `json:"email,omitempty"`
	Position       *string `json:"position,omitempty"`
	Department     *string `json:"department,omitempty"`
	DateOfJoining  *string `json:"date_of_joining,omitempty"`
	Status         *string `json:"status,omitempty"`
	EmployeeNumber *string `json:"employee_number,omitempty"`
	PhoneNumber    *string `json:"phone_number,omitempty"`
	Address        *string `json:"address,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	optionalNonEmpty := map[string]*string{
		"name":       r.Name,
		"position":   r.Position,
		"department": r.Department,
	}
	for field, value := range optionalNonEmpty {
		if value != nil && validator.IsEmpty(*value) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must not be empty",
			})
		}
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if r.DateOfJoining != nil {
		if _, ok := validator.IsValidDate(*r.DateOfJoining); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date_of_joining",
				Message: "date_of_joining must be a valid ISO 8601 date",
			})
		}
	}

	if r.Status != nil && !Status(*r.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be active, inactive, or terminated",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
