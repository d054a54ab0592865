package services

import (
	"testing"

	"github.com/jorge-trivilin/ecommerce-backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProductService(db *gorm.DB) *ProductService {
	return NewProductService(repository.NewProductRepository(db))
}

func ptr[T any](v T) *T { return &v }

func TestProductCreate(t *testing.T) {
	db := newTestDB(t)
	svc := newProductService(db)

	p, err := svc.Create("Laptop", "High performance", 1200.00, 10)
	require.NoError(t, err)
	assert.NotZero(t, p.ID)

	got, err := svc.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Laptop", got.Name)
	assert.Equal(t, 1200.00, got.Price)
	assert.Equal(t, 10, got.Stock)
}

func TestProductCreateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newProductService(db)

	tests := []struct {
		name  string
		pname string
		price float64
		stock int
	}{
		{"empty name", "", 10, 1},
		{"blank name", "   ", 10, 1},
		{"negative price", "Laptop", -1, 1},
		{"negative stock", "Laptop", 10, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(tt.pname, "", tt.price, tt.stock)
			assert.ErrorIs(t, err, ErrInvalidProduct)
		})
	}
}

func TestProductList(t *testing.T) {
	db := newTestDB(t)
	svc := newProductService(db)

	_, err := svc.Create("Laptop", "", 1200, 10)
	require.NoError(t, err)
	_, err = svc.Create("Mouse", "", 25, 100)
	require.NoError(t, err)

	products, err := svc.List()
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Laptop", products[0].Name)
	assert.Equal(t, "Mouse", products[1].Name)
}

func TestProductGetNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newProductService(db)

	_, err := svc.Get(42)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductUpdatePartial(t *testing.T) {
	db := newTestDB(t)
	svc := newProductService(db)

	p, err := svc.Create("Laptop", "old description", 1200, 10)
	require.NoError(t, err)

	got, err := svc.Update(p.ID, ProductUpdate{Price: ptr(999.99)})
	require.NoError(t, err)
	assert.Equal(t, 999.99, got.Price)
	assert.Equal(t, "Laptop", got.Name, "untouched fields stay as they were")
	assert.Equal(t, "old description", got.Description)
	assert.Equal(t, 10, got.Stock)
}

func TestProductUpdateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newProductService(db)

	p, err := svc.Create("Laptop", "", 1200, 10)
	require.NoError(t, err)

	_, err = svc.Update(p.ID, ProductUpdate{Name: ptr("  ")})
	assert.ErrorIs(t, err, ErrInvalidProduct)

	_, err = svc.Update(p.ID, ProductUpdate{Price: ptr(-5.0)})
	assert.ErrorIs(t, err, ErrInvalidProduct)

	_, err = svc.Update(p.ID, ProductUpdate{Stock: ptr(-1)})
	assert.ErrorIs(t, err, ErrInvalidProduct)
}

func TestProductUpdateNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newProductService(db)

	_, err := svc.Update(42, ProductUpdate{Price: ptr(10.0)})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductDelete(t *testing.T) {
	db := newTestDB(t)
	svc := newProductService(db)

	p, err := svc.Create("Laptop", "", 1200, 10)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(p.ID))

	_, err = svc.Get(p.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)

	err = svc.Delete(p.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)
}
