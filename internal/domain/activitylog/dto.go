package activitylog

import (
	"time"

	"github.com/peopledesk/peopledesk-backend-go/internal/pkg/validator"
)

type LogResponse struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	Action     string    `json:"action"`
	Timestamp  time.Time `json:"timestamp"`
	Details    *string   `json:"details,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func ToResponse(l ActivityLog) LogResponse {
	return LogResponse{
		ID:         l.ID,
		EmployeeID: l.EmployeeID,
		Action:     l.Action,
		Timestamp:  l.OccurredAt,
		Details:    l.Details,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
}

func ToResponses(records []ActivityLog) []LogResponse {
	responses := make([]LogResponse, 0, len(records))
	for _, l := range records {
		responses = append(responses, ToResponse(l))
	}
	return responses
}

// CreateLogRequest. Timestamp defaults to the time of creation when omitted.
type CreateLogRequest struct {
	EmployeeID string  `json:"employee_id"`
	Action     string  `json:"action"`
	Timestamp  *string `json:"timestamp,omitempty"`
	Details    *string `json:"details,omitempty"`
}

func (r *CreateLogRequest) Validate() error {
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

	if validator.IsEmpty(r.Action) {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action is required",
		})
	}

	if r.Timestamp != nil {
		if _, ok := validator.IsValidDateTime(*r.Timestamp); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp",
				Message: "timestamp must be a valid ISO 8601 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateLogRequest struct {
	Action    *string `json:"action,omitempty"`
	Timestamp *string `json:"timestamp,omitempty"`
	Details   *string `json:"details,omitempty"`
}

func (r *UpdateLogRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Action != nil && validator.IsEmpty(*r.Action) {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action must not be empty",
		})
	}

	if r.Timestamp != nil {
		if _, ok := validator.IsValidDateTime(*r.Timestamp); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp",
				Message: "timestamp must be a valid ISO 8601 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
