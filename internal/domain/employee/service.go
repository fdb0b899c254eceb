package employee

import "context"

type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeData, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	ListSummary(ctx context.Context) ([]EmployeeSummary, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeData, error)
	Delete(ctx context.Context, id string) error
}
