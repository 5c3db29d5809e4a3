package repository

import (
	"errors"

	productdomain "github.com/tair/retail-management/internal/product/domain"
	"github.com/tair/retail-management/internal/sale/domain"
	"gorm.io/gorm"
)

type GormSaleRepository struct {
	db *gorm.DB
}

func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

func (r *GormSaleRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Sale{}, &domain.SaleItem{})
}

// CreateWithItems runs the whole sale in one transaction: the header
// insert, then for each item a product read, a stock decrement and the
// item insert. Any failure rolls everything back.
func (r *GormSaleRepository) CreateWithItems(sale *domain.Sale, items []domain.SaleItem) (*domain.SaleWithItems, error) {
	result := &domain.SaleWithItems{}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sale).Error; err != nil {
			return err
		}

		enriched := make([]domain.ItemWithProduct, 0, len(items))
		for i := range items {
			var product productdomain.Product
			if err := tx.First(&product, items[i].ProductID).Error; err != nil {
				return err
			}

			// Stock is decremented as-is; the sale is recorded even
			// when it drives the stock negative.
			product.Stock -= items[i].Quantity
			if err := tx.Model(&productdomain.Product{}).
				Where("id = ?", items[i].ProductID).
				Update("stock", product.Stock).Error; err != nil {
				return err
			}

			items[i].SaleID = sale.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}

			enriched = append(enriched, domain.ItemWithProduct{
				SaleItem: items[i],
				Product:  product,
			})
		}

		result.Sale = *sale
		result.Items = enriched
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *GormSaleRepository) FindByID(id uint) (*domain.Sale, error) {
	var sale domain.Sale
	err := r.db.First(&sale, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSaleNotFound
		}
		return nil, err
	}
	return &sale, nil
}

func (r *GormSaleRepository) FindAll() ([]domain.Sale, error) {
	var sales []domain.Sale
	err := r.db.Find(&sales).Error
	return sales, err
}

func (r *GormSaleRepository) FindItems(saleID uint) ([]domain.ItemWithProduct, error) {
	var items []domain.SaleItem
	if err := r.db.Where("sale_id = ?", saleID).Find(&items).Error; err != nil {
		return nil, err
	}

	enriched := make([]domain.ItemWithProduct, 0, len(items))
	for _, item := range items {
		var product productdomain.Product
		if err := r.db.First(&product, item.ProductID).Error; err != nil &&
			!errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		enriched = append(enriched, domain.ItemWithProduct{SaleItem: item, Product: product})
	}
	return enriched, nil
}

func (r *GormSaleRepository) UpdateStatus(id uint, status string) (*domain.Sale, error) {
	var sale domain.Sale
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&sale, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrSaleNotFound
			}
			return err
		}
		sale.Status = status
		return tx.Model(&domain.Sale{}).
			Where("id = ?", id).
			Update("status", status).Error
	})
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *GormSaleRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Sale{}, id).Error
}
