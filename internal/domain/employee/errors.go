package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmailExists      = errors.New("employee email already registered")
	ErrNumberExists     = errors.New("employee number already registered")
)
