package leave

import (
	"time"

	"github.com/peopledesk/peopledesk-backend-go/internal/pkg/validator"
)

type LeaveResponse struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	Reason     string    `json:"reason"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func ToResponse(l Leave) LeaveResponse {
	return LeaveResponse{
		ID:         l.ID,
		EmployeeID: l.EmployeeID,
		StartDate:  l.StartDate.Format("2006-01-02"),
		EndDate:    l.EndDate.Format("2006-01-02"),
		Reason:     l.Reason,
		Status:     string(l.Status),
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
}

func ToResponses(records []Leave) []LeaveResponse {
	responses := make([]LeaveResponse, 0, len(records))
	for _, l := range records {
		responses = append(responses, ToResponse(l))
	}
	return responses
}

// CreateLeaveRequest accepts a status field for wire compatibility but the
// service always stores new requests as pending.
type CreateLeaveRequest struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Reason     string `json:"reason"`
	Status     string `json:"status,omitempty"`
}

func (r *CreateLeaveRequest) Validate() error {
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

	start, startOK := validator.IsValidDate(r.StartDate)
	if validator.IsEmpty(r.StartDate) || !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required and must be a valid ISO 8601 date",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if validator.IsEmpty(r.EndDate) || !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required and must be a valid ISO 8601 date",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateLeaveRequest struct {
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
	Reason    *string `json:"reason,omitempty"`
	Status    *string `json:"status,omitempty"`
}

func (r *UpdateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	for field, value := range map[string]*string{"start_date": r.StartDate, "end_date": r.EndDate} {
		if value == nil {
			continue
		}
		if _, ok := validator.IsValidDate(*value); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be a valid ISO 8601 date",
			})
		}
	}

	if r.Reason != nil && validator.IsEmpty(*r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must not be empty",
		})
	}

	if r.Status != nil && !Status(*r.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be pending, approved, or rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
