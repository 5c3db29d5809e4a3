package query

import (
	"github.com/tair/retail-management/internal/employee/domain"
	"github.com/tair/retail-management/pkg/apperrors"
)

// ListEmployeesQuery represents the query to list all employees
type ListEmployeesQuery struct{}

// ListEmployeesHandler handles list employees query
type ListEmployeesHandler struct {
	repo domain.EmployeeRepository
}

// NewListEmployeesHandler creates a new list employees handler
func NewListEmployeesHandler(repo domain.EmployeeRepository) *ListEmployeesHandler {
	return &ListEmployeesHandler{repo: repo}
}

// Handle executes the list employees query
func (h *ListEmployeesHandler) Handle(ListEmployeesQuery) ([]domain.Employee, error) {
	employees, err := h.repo.FindAll()
	if err != nil {
		return nil, apperrors.Storage("failed to fetch employees", err)
	}
	return employees, nil
}
