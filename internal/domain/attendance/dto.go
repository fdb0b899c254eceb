package attendance

import (
	"time"

	"github.com/peopledesk/peopledesk-backend-go/internal/pkg/validator"
)

type AttendanceResponse struct {
	ID         string     `json:"id"`
	EmployeeID string     `json:"employee_id"`
	Date       string     `json:"date"`
	Status     string     `json:"status"`
	InTime     *time.Time `json:"in_time,omitempty"`
	OutTime    *time.Time `json:"out_time,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func ToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date.Format("2006-01-02"),
		Status:     string(a.Status),
		InTime:     a.InTime,
		OutTime:    a.OutTime,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func ToResponses(records []Attendance) []AttendanceResponse {
	responses := make([]AttendanceResponse, 0, len(records))
	for _, a := range records {
		responses = append(responses, ToResponse(a))
	}
	return responses
}

type CreateAttendanceRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	Status     string  `json:"status"`
	InTime     *string `json:"in_time,omitempty"`
	OutTime    *string `json:"out_time,omitempty"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	} else if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid id",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid ISO 8601 date",
		})
	}

	if !Status(r.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be present, absent, or leave",
		})
	}

	for field, value := range map[string]*string{"in_time": r.InTime, "out_time": r.OutTime} {
		if value == nil {
			continue
		}
		if _, ok := validator.IsValidDateTime(*value); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be a valid ISO 8601 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateAttendanceRequest struct {
	Date    *string `json:"date,omitempty"`
	Status  *string `json:"status,omitempty"`
	InTime  *string `json:"in_time,omitempty"`
	OutTime *string `json:"out_time,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be a valid ISO 8601 date",
			})
		}
	}

	if r.Status != nil && !Status(*r.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be present, absent, or leave",
		})
	}

	for field, value := range map[string]*string{"in_time": r.InTime, "out_time": r.OutTime} {
		if value == nil {
			continue
		}
		if _, ok := validator.IsValidDateTime(*value); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be a valid ISO 8601 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
