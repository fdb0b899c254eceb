package activitylog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/peopledesk/peopledesk-backend-go/internal/domain/activitylog"
	"github.com/peopledesk/peopledesk-backend-go/internal/domain/employee"
)

type LogServiceImpl struct {
	activitylog.LogRepository
	employee.EmployeeRepository
}

func NewLogService(
	logRepository activitylog.LogRepository,
	employeeRepository employee.EmployeeRepository,
) activitylog.LogService {
	return &LogServiceImpl{
		LogRepository:      logRepository,
		EmployeeRepository: employeeRepository,
	}
}

// Create implements activitylog.LogService. The entry is inserted first
// and then linked onto the employee's log list, with one retry on link
// failure.
func (s *LogServiceImpl) Create(ctx context.Context, req activitylog.CreateLogRequest) (activitylog.LogResponse, error) {
	if err := req.Validate(); err != nil {
		return activitylog.LogResponse{}, err
	}

	record := activitylog.ActivityLog{
		EmployeeID: req.EmployeeID,
		Action:     req.Action,
		Details:    req.Details,
	}
	if req.Timestamp != nil {
		occurredAt, err := time.Parse(time.RFC3339, *req.Timestamp)
		if err != nil {
			return activitylog.LogResponse{}, fmt.Errorf("parse timestamp: %w", err)
		}
		record.OccurredAt = occurredAt
	}

	created, err := s.LogRepository.Create(ctx, record)
	if err != nil {
		return activitylog.LogResponse{}, err
	}

	if err := s.linkWithRetry(ctx, created.EmployeeID, created.ID); err != nil {
		return activitylog.LogResponse{}, fmt.Errorf("activity log %s created but not linked to employee %s: %w", created.ID, created.EmployeeID, err)
	}

	return activitylog.ToResponse(created), nil
}

func (s *LogServiceImpl) linkWithRetry(ctx context.Context, employeeID, recordID string) error {
	err := s.EmployeeRepository.LinkRecord(ctx, employeeID, employee.RefLogs, recordID)
	if err == nil {
		return nil
	}

	slog.Warn("Failed to link activity log, retrying", "employee_id", employeeID, "log_id", recordID, "error", err)
	return s.EmployeeRepository.LinkRecord(ctx, employeeID, employee.RefLogs, recordID)
}

// GetByEmployeeID implements activitylog.LogService.
func (s *LogServiceImpl) GetByEmployeeID(ctx context.Context, employeeID string) ([]activitylog.LogResponse, error) {
	records, err := s.LogRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return activitylog.ToResponses(records), nil
}

// GetAll implements activitylog.LogService.
func (s *LogServiceImpl) GetAll(ctx context.Context) ([]activitylog.LogResponse, error) {
	records, err := s.LogRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return activitylog.ToResponses(records), nil
}

// Update implements activitylog.LogService.
func (s *LogServiceImpl) Update(ctx context.Context, id string, req activitylog.UpdateLogRequest) (activitylog.LogResponse, error) {
	if err := req.Validate(); err != nil {
		return activitylog.LogResponse{}, err
	}

	updated, err := s.LogRepository.Update(ctx, id, req)
	if err != nil {
		return activitylog.LogResponse{}, err
	}
	return activitylog.ToResponse(updated), nil
}

// Delete implements activitylog.LogService.
func (s *LogServiceImpl) Delete(ctx context.Context, id string) error {
	_, err := s.LogRepository.Delete(ctx, id)
	return err
}
