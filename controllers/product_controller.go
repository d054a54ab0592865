package controllers

import (
	"errors"
	"strconv"

	"github.com/jorge-trivilin/ecommerce-backend/pkg/resp"
	"github.com/jorge-trivilin/ecommerce-backend/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct{ Svc services.Catalog }

func NewProductController(s services.Catalog) *ProductController {
	return &ProductController{Svc: s}
}

type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" binding:"required"`
	Stock       int      `json:"stock"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
}

func paramID(c *gin.Context) uint {
	id, _ := strconv.Atoi(c.Param("id"))
	return uint(id)
}

// GET /products
func (h *ProductController) List(c *gin.Context) {
	products, err := h.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, products)
}

// GET /products/:id
func (h *ProductController) Get(c *gin.Context) {
	p, err := h.Svc.Get(paramID(c))
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, p)
}

// POST /products (admin)
func (h *ProductController) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	p, err := h.Svc.Create(req.Name, req.Description, *req.Price, req.Stock)
	if err != nil {
		if errors.Is(err, services.ErrInvalidProduct) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, p)
}

// PUT /products/:id (admin)
func (h *ProductController) Update(c *gin.Context) {
	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	p, err := h.Svc.Update(paramID(c), services.ProductUpdate{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrInvalidProduct):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, p)
}

// DELETE /products/:id (admin)
func (h *ProductController) Delete(c *gin.Context) {
	if err := h.Svc.Delete(paramID(c)); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
