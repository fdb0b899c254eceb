package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetAll(ctx context.Context) ([]Employee, error)
	// GetByIDs returns employees for the given ids in the same order,
	// silently skipping ids that no longer resolve.
	GetByIDs(ctx context.Context, ids []string) ([]Employee, error)
	ListSummary(ctx context.Context) ([]EmployeeSummary, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (Employee, error)
	Delete(ctx context.Context, id string) (Employee, error)
	// LinkRecord prepends recordID onto one of the employee's reference
	// lists. The write is idempotent: an id already present is left where
	// it is, so a retry after an ambiguous failure is safe.
	LinkRecord(ctx context.Context, employeeID string, list RefList, recordID string) error
}
