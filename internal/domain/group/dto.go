package group

import (
	"time"

	"github.com/peopledesk/peopledesk-backend-go/internal/domain/employee"
	"github.com/peopledesk/peopledesk-backend-go/internal/pkg/validator"
)

// GroupResponse is a group with its member ids expanded into employee
// records. Members whose employee record no longer exists are skipped.
type GroupResponse struct {
	ID        string                  `json:"id"`
	Name      string                  `json:"name"`
	Members   []employee.EmployeeData `json:"members"`
	CreatedAt time.Time               `json:"created_at"`
	UpdatedAt time.Time               `json:"updated_at"`
}

type CreateGroupRequest struct {
	Name    string   `json:"name"`
	Members []string `json:"members,omitempty"`
}

func (r *CreateGroupRequest) Validate() error {
	if validator.IsEmpty(r.Name) {
		return validator.ValidationErrors{{
			Field:   "name",
			Message: "name is required",
		}}
	}
	return nil
}

type UpdateGroupRequest struct {
	Name    *string   `json:"name,omitempty"`
	Members *[]string `json:"members,omitempty"`
}

func (r *UpdateGroupRequest) Validate() error {
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		return validator.ValidationErrors{{
			Field:   "name",
			Message: "name must not be empty",
		}}
	}
	return nil
}

type AddMembersRequest struct {
	MemberIDs []string `json:"memberIds"`
}

type SendMessageRequest struct {
	GroupID string `json:"groupId"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (r *SendMessageRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.GroupID) {
		errs = append(errs, validator.ValidationError{
			Field:   "groupId",
			Message: "groupId is required",
		})
	}

	if validator.IsEmpty(r.Subject) {
		errs = append(errs, validator.ValidationError{
			Field:   "subject",
			Message: "subject is required",
		})
	}

	if validator.IsEmpty(r.Message) {
		errs = append(errs, validator.ValidationError{
			Field:   "message",
			Message: "message is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DeliverySummary reports the per-recipient outcome of a group send.
// One recipient's failure never prevents the others.
type DeliverySummary struct {
	Requested int               `json:"requested"`
	Sent      int               `json:"sent"`
	Skipped   int               `json:"skipped"`
	Failed    []DeliveryFailure `json:"failed"`
}

type DeliveryFailure struct {
	Email string `json:"email"`
	Error string `json:"error"`
}
