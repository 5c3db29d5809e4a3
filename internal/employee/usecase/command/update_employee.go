package command

import (
	"net/mail"
	"time"

	"github.com/tair/retail-management/internal/employee/domain"
	"github.com/tair/retail-management/pkg/apperrors"
)

// UpdateEmployeeCommand represents the command to update an employee.
// Zero-valued fields are left untouched on the stored row.
type UpdateEmployeeCommand struct {
	ID       uint
	Name     string
	Email    string
	Phone    string
	Role     string
	HireDate string
}

// UpdateEmployeeHandler handles employee update command
type UpdateEmployeeHandler struct {
	repo domain.EmployeeRepository
}

// NewUpdateEmployeeHandler creates a new update employee handler
func NewUpdateEmployeeHandler(repo domain.EmployeeRepository) *UpdateEmployeeHandler {
	return &UpdateEmployeeHandler{repo: repo}
}

// Handle executes the update employee command
func (h *UpdateEmployeeHandler) Handle(cmd UpdateEmployeeCommand) (*domain.Employee, error) {
	if cmd.ID == 0 {
		return nil, apperrors.Validation("the id is required")
	}
	if len(cmd.Name) > 150 {
		return nil, apperrors.Validation("the name must have a maximum of 150 characters")
	}
	if cmd.Email != "" {
		if _, err := mail.ParseAddress(cmd.Email); err != nil {
			return nil, apperrors.Validation("the email must be a valid email")
		}
	}
	if cmd.Role != "" && !domain.ValidRole(cmd.Role) {
		return nil, apperrors.Validation("the role must be one of manager, cashier, stock_keeper, sales_rep")
	}

	var hireDate time.Time
	if cmd.HireDate != "" {
		parsed, err := ParseDate(cmd.HireDate)
		if err != nil {
			return nil, apperrors.Validation("the hire date must be a valid date")
		}
		hireDate = parsed
	}

	employee, err := h.repo.Update(cmd.ID, func(e *domain.Employee) {
		if cmd.Name != "" {
			e.Name = cmd.Name
		}
		if cmd.Email != "" {
			e.Email = cmd.Email
		}
		if cmd.Phone != "" {
			e.Phone = cmd.Phone
		}
		if cmd.Role != "" {
			e.Role = cmd.Role
		}
		if !hireDate.IsZero() {
			e.HireDate = hireDate
		}
	})
	if err != nil {
		return nil, apperrors.Storage("failed to update employee", err)
	}

	return employee, nil
}
