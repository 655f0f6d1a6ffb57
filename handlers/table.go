package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-api/service"
)

type CreateTableRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Capacity    *int   `json:"capacity" binding:"required,gte=1"`
	Busy        *bool  `json:"busy" binding:"required"`
}

// CreateTable adds a dining table
func (h *Handler) CreateTable(c *gin.Context) {
	var req CreateTableRequest
	if !bind(c, &req) {
		return
	}
	table, err := h.Tables.Create(c.Request.Context(), service.CreateTableInput{
		Name:        req.Name,
		Description: req.Description,
		Capacity:    *req.Capacity,
		Busy:        *req.Busy,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, table)
}

func (h *Handler) ListTables(c *gin.Context) {
	tables, err := h.Tables.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, tables)
}

func (h *Handler) GetTable(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	table, err := h.Tables.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, table)
}
