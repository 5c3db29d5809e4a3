package repository

import (
	"github.com/tair/retail-management/internal/purchase/domain"
	"gorm.io/gorm"
)

type GormPurchaseRepository struct {
	db *gorm.DB
}

func NewGormPurchaseRepository(db *gorm.DB) *GormPurchaseRepository {
	return &GormPurchaseRepository{db: db}
}

func (r *GormPurchaseRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Purchase{})
}

func (r *GormPurchaseRepository) Create(purchase *domain.Purchase) error {
	return r.db.Create(purchase).Error
}

func (r *GormPurchaseRepository) FindAll() ([]domain.Purchase, error) {
	var purchases []domain.Purchase
	err := r.db.Find(&purchases).Error
	return purchases, err
}

func (r *GormPurchaseRepository) Update(id uint, apply func(*domain.Purchase)) (*domain.Purchase, error) {
	var purchase domain.Purchase
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&purchase, id).Error; err != nil {
			return err
		}
		apply(&purchase)
		return tx.Save(&purchase).Error
	})
	if err != nil {
		return nil, err
	}
	return &purchase, nil
}

func (r *GormPurchaseRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Purchase{}, id).Error
}
