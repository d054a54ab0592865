package controllers

import (
	"errors"
	"strconv"

	"github.com/jorge-trivilin/ecommerce-backend/pkg/resp"
	"github.com/jorge-trivilin/ecommerce-backend/services"
	"github.com/jorge-trivilin/ecommerce-backend/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc services.CartEngine }

func NewCartController(s services.CartEngine) *CartController { return &CartController{Svc: s} }

type AddToCartRequest struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	lines, err := h.Svc.Get(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cart": lines})
}

// POST /cart
func (h *CartController) Add(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	err := h.Svc.AddItem(utils.CurrentUserID(c), req.ProductID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidQuantity):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrProductNotFound):
			resp.NotFound(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"added": true})
}

// DELETE /cart/items/:productId
func (h *CartController) Remove(c *gin.Context) {
	productID, _ := strconv.Atoi(c.Param("productId"))

	err := h.Svc.RemoveItem(utils.CurrentUserID(c), uint(productID))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCartNotFound), errors.Is(err, services.ErrItemNotFound):
			resp.NotFound(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"removed": true})
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	if err := h.Svc.Clear(utils.CurrentUserID(c)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
