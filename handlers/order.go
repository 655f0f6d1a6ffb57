package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-api/models"
	"restaurant-api/service"
)

// orderFields are accepted by every order variant
type orderFields struct {
	Date      *Date  `json:"date" binding:"required"`
	Waiter    string `json:"waiter" binding:"required"`
	PeopleQty *int   `json:"peopleQty" binding:"required,gte=0"`
	Paid      *bool  `json:"paid" binding:"required"`
	Menus     []uint `json:"menus" binding:"required,min=1"`
}

func (f orderFields) input() service.OrderInput {
	return service.OrderInput{
		Date:      f.Date.Time,
		Waiter:    f.Waiter,
		PeopleQty: *f.PeopleQty,
		Paid:      *f.Paid,
		MenuIDs:   f.Menus,
	}
}

type CreateTakeAwayOrderRequest struct {
	orderFields
}

type CreateShippingOrderRequest struct {
	orderFields
	ShippingAddress string `json:"shippingAddress" binding:"required"`
	RiderName       string `json:"riderName" binding:"required"`
	CustomerID      *uint  `json:"customerId"`
}

type CreateEatInOrderRequest struct {
	orderFields
	Tables     []uint `json:"tables" binding:"required,min=1"`
	CustomerID *uint  `json:"customerId"`
}

func (h *Handler) CreateTakeAwayOrder(c *gin.Context) {
	var req CreateTakeAwayOrderRequest
	if !bind(c, &req) {
		return
	}
	h.respondOrder(c, h.Orders.CreateTakeAway, req.input())
}

func (h *Handler) CreateShippingOrder(c *gin.Context) {
	var req CreateShippingOrderRequest
	if !bind(c, &req) {
		return
	}
	in := req.input()
	in.ShippingAddress = req.ShippingAddress
	in.RiderName = req.RiderName
	in.CustomerID = optionalID(req.CustomerID)
	h.respondOrder(c, h.Orders.CreateShipping, in)
}

func (h *Handler) CreateEatInOrder(c *gin.Context) {
	var req CreateEatInOrderRequest
	if !bind(c, &req) {
		return
	}
	in := req.input()
	in.TableIDs = req.Tables
	in.CustomerID = optionalID(req.CustomerID)
	h.respondOrder(c, h.Orders.CreateEatIn, in)
}

func (h *Handler) respondOrder(
	c *gin.Context,
	create func(context.Context, service.OrderInput) (*models.Order, error),
	in service.OrderInput,
) {
	order, err := create(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *Handler) ListTakeAwayOrders(c *gin.Context) {
	h.listOrders(c, h.Orders.ListTakeAway)
}

func (h *Handler) ListShippingOrders(c *gin.Context) {
	h.listOrders(c, h.Orders.ListShipping)
}

func (h *Handler) ListEatInOrders(c *gin.Context) {
	h.listOrders(c, h.Orders.ListEatIn)
}

func (h *Handler) listOrders(c *gin.Context, list func(context.Context) ([]models.Order, error)) {
	orders, err := list(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}
