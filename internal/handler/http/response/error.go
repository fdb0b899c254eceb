package response

import (
	"errors"
	"net/http"

	"github.com/peopledesk/peopledesk-backend-go/internal/domain/activitylog"
	"github.com/peopledesk/peopledesk-backend-go/internal/domain/attendance"
	"github.com/peopledesk/peopledesk-backend-go/internal/domain/auth"
	"github.com/peopledesk/peopledesk-backend-go/internal/domain/employee"
	"github.com/peopledesk/peopledesk-backend-go/internal/domain/group"
	"github.com/peopledesk/peopledesk-backend-go/internal/domain/leave"
	"github.com/peopledesk/peopledesk-backend-go/internal/domain/user"
	"github.com/peopledesk/peopledesk-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidRefresh):
		Unauthorized(w, "Invalid refresh token")
	case errors.Is(err, auth.ErrInvalidToken):
		Forbidden(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRoleMismatch):
		Forbidden(w, "Token role does not match stored role")
	case errors.Is(err, auth.ErrInsufficientRole):
		Forbidden(w, "Insufficient permissions")
	case errors.Is(err, auth.ErrOAuthStateMismatch):
		Forbidden(w, "OAuth state mismatch")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Employee email already registered")
	case errors.Is(err, employee.ErrNumberExists):
		Conflict(w, "Employee number already registered")

	// Attendance / leave / log domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, activitylog.ErrLogNotFound):
		NotFound(w, "Activity log not found")

	// Group domain errors
	case errors.Is(err, group.ErrGroupNotFound):
		NotFound(w, "Group not found")
	case errors.Is(err, group.ErrNameExists):
		Conflict(w, "Group name already exists")
	case errors.Is(err, group.ErrNoMemberIDs):
		BadRequest(w, "No member IDs provided", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
