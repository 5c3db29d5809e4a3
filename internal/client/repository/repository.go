package repository

import (
	"github.com/tair/retail-management/internal/client/domain"
	"gorm.io/gorm"
)

type GormClientRepository struct {
	db *gorm.DB
}

func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

func (r *GormClientRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Client{})
}

func (r *GormClientRepository) Create(client *domain.Client) error {
	return r.db.Create(client).Error
}

func (r *GormClientRepository) FindAll() ([]domain.Client, error) {
	var clients []domain.Client
	err := r.db.Find(&clients).Error
	return clients, err
}

func (r *GormClientRepository) Update(id uint, apply func(*domain.Client)) (*domain.Client, error) {
	var client domain.Client
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&client, id).Error; err != nil {
			return err
		}
		apply(&client)
		return tx.Save(&client).Error
	})
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *GormClientRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Client{}, id).Error
}
