package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/peopledesk/peopledesk-backend-go/internal/domain/employee"
	"github.com/peopledesk/peopledesk-backend-go/internal/domain/leave"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
	employee.EmployeeRepository
}

func NewLeaveService(
	leaveRepository leave.LeaveRepository,
	employeeRepository employee.EmployeeRepository,
) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository:    leaveRepository,
		EmployeeRepository: employeeRepository,
	}
}

// Create implements leave.LeaveService. New requests always start out
// pending regardless of any status in the payload; approval happens
// through Update. The record is inserted first and then linked onto the
// employee's leave list, with one retry on link failure.
func (s *LeaveServiceImpl) Create(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	created, err := s.LeaveRepository.Create(ctx, leave.Leave{
		EmployeeID: req.EmployeeID,
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if err := s.linkWithRetry(ctx, created.EmployeeID, created.ID); err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("leave %s created but not linked to employee %s: %w", created.ID, created.EmployeeID, err)
	}

	return leave.ToResponse(created), nil
}

func (s *LeaveServiceImpl) linkWithRetry(ctx context.Context, employeeID, recordID string) error {
	err := s.EmployeeRepository.LinkRecord(ctx, employeeID, employee.RefLeaves, recordID)
	if err == nil {
		return nil
	}

	slog.Warn("Failed to link leave record, retrying", "employee_id", employeeID, "leave_id", recordID, "error", err)
	return s.EmployeeRepository.LinkRecord(ctx, employeeID, employee.RefLeaves, recordID)
}

// GetByEmployeeID implements leave.LeaveService.
func (s *LeaveServiceImpl) GetByEmployeeID(ctx context.Context, employeeID string) ([]leave.LeaveResponse, error) {
	records, err := s.LeaveRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return leave.ToResponses(records), nil
}

// GetAll implements leave.LeaveService.
func (s *LeaveServiceImpl) GetAll(ctx context.Context) ([]leave.LeaveResponse, error) {
	records, err := s.LeaveRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return leave.ToResponses(records), nil
}

// Update implements leave.LeaveService. Status transitions, approval
// included, go through here.
func (s *LeaveServiceImpl) Update(ctx context.Context, id string, req leave.UpdateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	updated, err := s.LeaveRepository.Update(ctx, id, req)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return leave.ToResponse(updated), nil
}

// Delete implements leave.LeaveService.
func (s *LeaveServiceImpl) Delete(ctx context.Context, id string) error {
	_, err := s.LeaveRepository.Delete(ctx, id)
	return err
}
