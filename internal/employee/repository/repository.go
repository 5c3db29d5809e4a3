package repository

import (
	"github.com/tair/retail-management/internal/employee/domain"
	"gorm.io/gorm"
)

type GormEmployeeRepository struct {
	db *gorm.DB
}

func NewGormEmployeeRepository(db *gorm.DB) *GormEmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

func (r *GormEmployeeRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Employee{})
}

func (r *GormEmployeeRepository) Create(employee *domain.Employee) error {
	return r.db.Create(employee).Error
}

func (r *GormEmployeeRepository) FindAll() ([]domain.Employee, error) {
	var employees []domain.Employee
	err := r.db.Find(&employees).Error
	return employees, err
}

func (r *GormEmployeeRepository) Update(id uint, apply func(*domain.Employee)) (*domain.Employee, error) {
	var employee domain.Employee
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&employee, id).Error; err != nil {
			return err
		}
		apply(&employee)
		return tx.Save(&employee).Error
	})
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *GormEmployeeRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Employee{}, id).Error
}
