package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

func (h *Handler) CreateCustomer(c *gin.Context) {
	var req CreateCustomerRequest
	if !bind(c, &req) {
		return
	}
	customer, err := h.Customers.Create(c.Request.Context(), req.Name, req.Email)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (h *Handler) ListCustomers(c *gin.Context) {
	customers, err := h.Customers.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

// GetCustomer returns a customer with its bookings
func (h *Handler) GetCustomer(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	customer, err := h.Customers.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}
