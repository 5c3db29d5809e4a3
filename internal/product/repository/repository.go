package repository

import (
	"github.com/tair/retail-management/internal/product/domain"
	"gorm.io/gorm"
)

type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Product{}, &domain.Inventory{})
}

func (r *GormProductRepository) Create(product *domain.Product) error {
	return r.db.Create(product).Error
}

func (r *GormProductRepository) FindAll() ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.Find(&products).Error
	return products, err
}

func (r *GormProductRepository) Update(id uint, apply func(*domain.Product)) (*domain.Product, error) {
	var product domain.Product
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&product, id).Error; err != nil {
			return err
		}
		apply(&product)
		return tx.Save(&product).Error
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Product{}, id).Error
}

func (r *GormProductRepository) Restock(productID uint, quantity int) (*domain.Inventory, error) {
	inventory := &domain.Inventory{ProductID: productID, Quantity: quantity}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(inventory).Error; err != nil {
			return err
		}

		var product domain.Product
		if err := tx.First(&product, productID).Error; err != nil {
			return err
		}

		return tx.Model(&domain.Product{}).
			Where("id = ?", productID).
			Update("stock", product.Stock+quantity).Error
	})
	if err != nil {
		return nil, err
	}
	return inventory, nil
}
