package domain

import "time"

// Employee roles
const (
	RoleManager     = "manager"
	RoleCashier     = "cashier"
	RoleStockKeeper = "stock_keeper"
	RoleSalesRep    = "sales_rep"
)

// Employee represents the employee entity
type Employee struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	Name     string    `json:"name" gorm:"not null"`
	Email    string    `json:"email" gorm:"uniqueIndex"`
	Phone    string    `json:"phone"`
	Role     string    `json:"role"`
	HireDate time.Time `json:"hire_date" gorm:"not null"`
}

// TableName specifies the table name
func (Employee) TableName() string {
	return "employees"
}

// ValidRole reports whether role is one of the employee roles.
func ValidRole(role string) bool {
	switch role {
	case RoleManager, RoleCashier, RoleStockKeeper, RoleSalesRep:
		return true
	}
	return false
}

// EmployeeRepository defines the contract for employee data access
type EmployeeRepository interface {
	Create(employee *Employee) error
	FindAll() ([]Employee, error)
	// Update reads the row, applies the merge and writes it back inside
	// a single transaction.
	Update(id uint, apply func(*Employee)) (*Employee, error)
	Delete(id uint) error
}
