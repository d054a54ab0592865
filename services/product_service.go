package services

import (
	"errors"
	"strings"

	"github.com/jorge-trivilin/ecommerce-backend/entity"
	"github.com/jorge-trivilin/ecommerce-backend/repository"

	"gorm.io/gorm"
)

// Catalog is the read/write surface of the product catalog. Mutations are
// admin-gated at the route level; the service only enforces field validity.
type Catalog interface {
	List() ([]entity.Product, error)
	Get(id uint) (*entity.Product, error)
	Create(name, description string, price float64, stock int) (*entity.Product, error)
	Update(id uint, upd ProductUpdate) (*entity.Product, error)
	Delete(id uint) error
}

// ProductUpdate carries a partial update; nil fields are left untouched.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	Stock       *int
}

type ProductService struct {
	Repo *repository.ProductRepository
}

var _ Catalog = (*ProductService)(nil)

func NewProductService(repo *repository.ProductRepository) *ProductService {
	return &ProductService{Repo: repo}
}

func (s *ProductService) List() ([]entity.Product, error) {
	return s.Repo.List()
}

func (s *ProductService) Get(id uint) (*entity.Product, error) {
	p, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	return p, err
}

func (s *ProductService) Create(name, description string, price float64, stock int) (*entity.Product, error) {
	if strings.TrimSpace(name) == "" || price < 0 || stock < 0 {
		return nil, ErrInvalidProduct
	}
	p := &entity.Product{
		Name:        strings.TrimSpace(name),
		Description: description,
		Price:       price,
		Stock:       stock,
	}
	if err := s.Repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductService) Update(id uint, upd ProductUpdate) (*entity.Product, error) {
	fields := map[string]any{}
	if upd.Name != nil {
		if strings.TrimSpace(*upd.Name) == "" {
			return nil, ErrInvalidProduct
		}
		fields["name"] = strings.TrimSpace(*upd.Name)
	}
	if upd.Description != nil {
		fields["description"] = *upd.Description
	}
	if upd.Price != nil {
		if *upd.Price < 0 {
			return nil, ErrInvalidProduct
		}
		fields["price"] = *upd.Price
	}
	if upd.Stock != nil {
		if *upd.Stock < 0 {
			return nil, ErrInvalidProduct
		}
		fields["stock"] = *upd.Stock
	}

	if len(fields) > 0 {
		ok, err := s.Repo.Updates(id, fields)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrProductNotFound
		}
	}
	return s.Get(id)
}

func (s *ProductService) Delete(id uint) error {
	ok, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrProductNotFound
	}
	return nil
}
