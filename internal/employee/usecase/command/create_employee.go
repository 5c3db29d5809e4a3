package command

import (
	"net/mail"
	"time"

	"github.com/tair/retail-management/internal/employee/domain"
	"github.com/tair/retail-management/pkg/apperrors"
)

// CreateEmployeeCommand represents the command to create a new employee
type CreateEmployeeCommand struct {
	Name     string
	Email    string
	Phone    string
	Role     string
	HireDate string
}

// CreateEmployeeHandler handles employee creation command
type CreateEmployeeHandler struct {
	repo domain.EmployeeRepository
}

// NewCreateEmployeeHandler creates a new create employee handler
func NewCreateEmployeeHandler(repo domain.EmployeeRepository) *CreateEmployeeHandler {
	return &CreateEmployeeHandler{repo: repo}
}

// Handle executes the create employee command
func (h *CreateEmployeeHandler) Handle(cmd CreateEmployeeCommand) (*domain.Employee, error) {
	if cmd.Name == "" {
		return nil, apperrors.Validation("the name is required")
	}
	if len(cmd.Name) > 150 {
		return nil, apperrors.Validation("the name must have a maximum of 150 characters")
	}
	if cmd.Email == "" {
		return nil, apperrors.Validation("the email is required")
	}
	if _, err := mail.ParseAddress(cmd.Email); err != nil {
		return nil, apperrors.Validation("the email must be a valid email")
	}
	if !domain.ValidRole(cmd.Role) {
		return nil, apperrors.Validation("the role must be one of manager, cashier, stock_keeper, sales_rep")
	}
	hireDate, err := ParseDate(cmd.HireDate)
	if err != nil {
		return nil, apperrors.Validation("the hire date must be a valid date")
	}

	employee := &domain.Employee{
		Name:     cmd.Name,
		Email:    cmd.Email,
		Phone:    cmd.Phone,
		Role:     cmd.Role,
		HireDate: hireDate,
	}

	if err := h.repo.Create(employee); err != nil {
		return nil, apperrors.Storage("failed to create employee", err)
	}

	return employee, nil
}

// ParseDate accepts RFC3339 timestamps and plain dates.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
