package controllers

import (
	"errors"
	"strconv"

	"github.com/jorge-trivilin/ecommerce-backend/pkg/resp"
	"github.com/jorge-trivilin/ecommerce-backend/services"
	"github.com/jorge-trivilin/ecommerce-backend/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc services.OrderEngine }

func NewOrderController(s services.OrderEngine) *OrderController { return &OrderController{Svc: s} }

// POST /orders
func (h *OrderController) Place(c *gin.Context) {
	placed, err := h.Svc.Place(utils.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, placed)
}

// GET /orders
func (h *OrderController) History(c *gin.Context) {
	orders, err := h.Svc.History(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders})
}

// GET /orders/:id
func (h *OrderController) Details(c *gin.Context) {
	orderID, _ := strconv.Atoi(c.Param("id"))

	o, err := h.Svc.Details(utils.CurrentUserID(c), uint(orderID))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, o)
}
