package command

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/retail-management/internal/employee/domain"
	"github.com/tair/retail-management/pkg/apperrors"
)

type fakeEmployeeRepo struct {
	employees map[uint]*domain.Employee
	nextID    uint
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[uint]*domain.Employee), nextID: 1}
}

func (f *fakeEmployeeRepo) Create(employee *domain.Employee) error {
	employee.ID = f.nextID
	f.nextID++
	f.employees[employee.ID] = employee
	return nil
}

func (f *fakeEmployeeRepo) FindAll() ([]domain.Employee, error) {
	employees := make([]domain.Employee, 0, len(f.employees))
	for _, e := range f.employees {
		employees = append(employees, *e)
	}
	return employees, nil
}

func (f *fakeEmployeeRepo) Update(id uint, apply func(*domain.Employee)) (*domain.Employee, error) {
	employee, ok := f.employees[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	apply(employee)
	return employee, nil
}

func (f *fakeEmployeeRepo) Delete(id uint) error {
	delete(f.employees, id)
	return nil
}

func TestCreateEmployee(t *testing.T) {
	handler := NewCreateEmployeeHandler(newFakeEmployeeRepo())

	employee, err := handler.Handle(CreateEmployeeCommand{
		Name:     "Bob Ford",
		Email:    "bob@example.com",
		Role:     domain.RoleCashier,
		HireDate: "2024-03-15",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(1), employee.ID)
	assert.Equal(t, 2024, employee.HireDate.Year())
	assert.Equal(t, time.March, employee.HireDate.Month())
}

func TestCreateEmployeeValidation(t *testing.T) {
	valid := CreateEmployeeCommand{
		Name:     "Bob Ford",
		Email:    "bob@example.com",
		Role:     domain.RoleManager,
		HireDate: "2024-03-15",
	}

	tests := []struct {
		name   string
		mutate func(*CreateEmployeeCommand)
	}{
		{"missing name", func(c *CreateEmployeeCommand) { c.Name = "" }},
		{"missing email", func(c *CreateEmployeeCommand) { c.Email = "" }},
		{"invalid email", func(c *CreateEmployeeCommand) { c.Email = "broken" }},
		{"unknown role", func(c *CreateEmployeeCommand) { c.Role = "janitor" }},
		{"invalid hire date", func(c *CreateEmployeeCommand) { c.HireDate = "15/03/2024" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewCreateEmployeeHandler(newFakeEmployeeRepo())
			cmd := valid
			tt.mutate(&cmd)
			_, err := handler.Handle(cmd)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
		})
	}
}

func TestParseDate(t *testing.T) {
	plain, err := ParseDate("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, 15, plain.Day())

	stamped, err := ParseDate("2024-03-15T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 10, stamped.Hour())

	_, err = ParseDate("yesterday")
	assert.Error(t, err)
}

func TestUpdateEmployeeMergesFields(t *testing.T) {
	repo := newFakeEmployeeRepo()
	hired := time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC)
	repo.employees[1] = &domain.Employee{
		ID:       1,
		Name:     "Bob Ford",
		Email:    "bob@example.com",
		Role:     domain.RoleCashier,
		HireDate: hired,
	}
	handler := NewUpdateEmployeeHandler(repo)

	employee, err := handler.Handle(UpdateEmployeeCommand{ID: 1, Role: domain.RoleManager})
	require.NoError(t, err)

	assert.Equal(t, domain.RoleManager, employee.Role)
	assert.Equal(t, "Bob Ford", employee.Name)
	assert.Equal(t, hired, employee.HireDate)
}

func TestUpdateEmployeeUnknownRole(t *testing.T) {
	repo := newFakeEmployeeRepo()
	repo.employees[1] = &domain.Employee{ID: 1, Role: domain.RoleCashier}
	handler := NewUpdateEmployeeHandler(repo)

	_, err := handler.Handle(UpdateEmployeeCommand{ID: 1, Role: "janitor"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, domain.RoleCashier, repo.employees[1].Role)
}
