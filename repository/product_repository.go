package repository

import (
	"github.com/jorge-trivilin/ecommerce-backend/entity"

	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) Create(p *entity.Product) error {
	return r.DB.Create(p).Error
}

func (r *ProductRepository) FindByID(id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) List() ([]entity.Product, error) {
	var products []entity.Product
	err := r.DB.Order("id").Find(&products).Error
	return products, err
}

// Updates applies a partial column update and reports whether the row existed.
func (r *ProductRepository) Updates(id uint, fields map[string]any) (bool, error) {
	res := r.DB.Model(&entity.Product{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *ProductRepository) Delete(id uint) (bool, error) {
	res := r.DB.Delete(&entity.Product{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
