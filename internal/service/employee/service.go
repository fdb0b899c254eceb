package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/peopledesk/peopledesk-backend-go/internal/domain/activitylog"
	"github.com/peopledesk/peopledesk-backend-go/internal/domain/attendance"
	"github.com/peopledesk/peopledesk-backend-go/internal/domain/employee"
	"github.com/peopledesk/peopledesk-backend-go/internal/domain/group"
	"github.com/peopledesk/peopledesk-backend-go/internal/domain/leave"
	"github.com/peopledesk/peopledesk-backend-go/internal/pkg/database"
	"github.com/peopledesk/peopledesk-backend-go/internal/repository/postgresql"
)

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	attendance.AttendanceRepository
	leave.LeaveRepository
	activitylog.LogRepository
	group.GroupRepository
}

func NewEmployeeService(
	db *database.DB,
	employeeRepository employee.EmployeeRepository,
	attendanceRepository attendance.AttendanceRepository,
	leaveRepository leave.LeaveRepository,
	logRepository activitylog.LogRepository,
	groupRepository group.GroupRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                   db,
		EmployeeRepository:   employeeRepository,
		AttendanceRepository: attendanceRepository,
		LeaveRepository:      leaveRepository,
		LogRepository:        logRepository,
		GroupRepository:      groupRepository,
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeData, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeData{}, err
	}

	joining, _ := time.Parse("2006-01-02", req.DateOfJoining)

	created, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		Name:           req.Name,
		Email:          req.Email,
		Position:       req.Position,
		Department:     req.Department,
		DateOfJoining:  joining,
		Status:         employee.Status(req.Status),
		EmployeeNumber: req.EmployeeNumber,
		PhoneNumber:    req.PhoneNumber,
		Address:        req.Address,
	})
	if err != nil {
		return employee.EmployeeData{}, err
	}
	return employee.ToData(created), nil
}

// GetByID implements employee.EmployeeService. Reference lists are
// expanded into full child records; dangling ids are skipped.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return s.populate(ctx, emp)
}

// GetAll implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetAll(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		resp, err := s.populate(ctx, emp)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// ListSummary implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListSummary(ctx context.Context) ([]employee.EmployeeSummary, error) {
	return s.EmployeeRepository.ListSummary(ctx)
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeData, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeData{}, err
	}

	updated, err := s.EmployeeRepository.Update(ctx, id, req)
	if err != nil {
		return employee.EmployeeData{}, err
	}
	return employee.ToData(updated), nil
}

// Delete implements employee.EmployeeService. The employee row, its child
// attendance, leave and log rows, and its membership in every group are
// removed in one transaction.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if _, err := s.EmployeeRepository.Delete(txCtx, id); err != nil {
			return err
		}
		if err := s.GroupRepository.RemoveMemberEverywhere(txCtx, id); err != nil {
			return fmt.Errorf("remove deleted employee %s from groups: %w", id, err)
		}
		return nil
	})
}

func (s *EmployeeServiceImpl) populate(ctx context.Context, emp employee.Employee) (employee.EmployeeResponse, error) {
	attendanceRecords, err := s.AttendanceRepository.GetByIDs(ctx, emp.AttendanceIDs)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("expand attendance of employee %s: %w", emp.ID, err)
	}

	leaveRecords, err := s.LeaveRepository.GetByIDs(ctx, emp.LeaveIDs)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("expand leaves of employee %s: %w", emp.ID, err)
	}

	logRecords, err := s.LogRepository.GetByIDs(ctx, emp.LogIDs)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("expand logs of employee %s: %w", emp.ID, err)
	}

	return employee.EmployeeResponse{
		EmployeeData: employee.ToData(emp),
		Attendance:   attendance.ToResponses(attendanceRecords),
		Leaves:       leave.ToResponses(leaveRecords),
		Logs:         activitylog.ToResponses(logRecords),
	}, nil
}
