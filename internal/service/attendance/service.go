package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/peopledesk/peopledesk-backend-go/internal/domain/attendance"
	"github.com/peopledesk/peopledesk-backend-go/internal/domain/employee"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
}

func NewAttendanceService(
	attendanceRepository attendance.AttendanceRepository,
	employeeRepository employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		EmployeeRepository:   employeeRepository,
	}
}

// Create implements attendance.AttendanceService. The record is inserted
// first and then linked onto the employee's attendance list. The link is
// idempotent and retried once; if it still fails the record stays in
// place and the error is reported.
func (s *AttendanceServiceImpl) Create(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	record := attendance.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       date,
		Status:     attendance.Status(req.Status),
	}
	if req.InTime != nil {
		inTime, err := time.Parse(time.RFC3339, *req.InTime)
		if err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("parse in_time: %w", err)
		}
		record.InTime = &inTime
	}
	if req.OutTime != nil {
		outTime, err := time.Parse(time.RFC3339, *req.OutTime)
		if err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("parse out_time: %w", err)
		}
		record.OutTime = &outTime
	}

	created, err := s.AttendanceRepository.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := s.linkWithRetry(ctx, created.EmployeeID, created.ID); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("attendance %s created but not linked to employee %s: %w", created.ID, created.EmployeeID, err)
	}

	return attendance.ToResponse(created), nil
}

func (s *AttendanceServiceImpl) linkWithRetry(ctx context.Context, employeeID, recordID string) error {
	err := s.EmployeeRepository.LinkRecord(ctx, employeeID, employee.RefAttendance, recordID)
	if err == nil {
		return nil
	}

	slog.Warn("Failed to link attendance record, retrying", "employee_id", employeeID, "attendance_id", recordID, "error", err)
	return s.EmployeeRepository.LinkRecord(ctx, employeeID, employee.RefAttendance, recordID)
}

// GetByEmployeeID implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetByEmployeeID(ctx context.Context, employeeID string) ([]attendance.AttendanceResponse, error) {
	records, err := s.AttendanceRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return attendance.ToResponses(records), nil
}

// GetAll implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetAll(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	records, err := s.AttendanceRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return attendance.ToResponses(records), nil
}

// Update implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Update(ctx context.Context, id string, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	updated, err := s.AttendanceRepository.Update(ctx, id, req)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.ToResponse(updated), nil
}

// Delete implements attendance.AttendanceService. The employee's reference
// list keeps the id; populated reads skip entries that no longer resolve.
func (s *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	_, err := s.AttendanceRepository.Delete(ctx, id)
	return err
}
