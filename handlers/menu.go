package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-api/service"
)

type CreateMenuRequest struct {
	Name    string   `json:"name" binding:"required"`
	Price   *float64 `json:"price" binding:"required,gte=0"`
	Content string   `json:"content"`
	Active  *bool    `json:"active" binding:"required"`
	IsWater *bool    `json:"isWater" binding:"required"`
}

// UpdateMenuRequest only touches the fields present in the body
type UpdateMenuRequest struct {
	Name    *string  `json:"name" binding:"omitempty,min=1"`
	Price   *float64 `json:"price" binding:"omitempty,gte=0"`
	Content *string  `json:"content"`
	Active  *bool    `json:"active"`
	IsWater *bool    `json:"isWater"`
}

func (h *Handler) CreateMenu(c *gin.Context) {
	var req CreateMenuRequest
	if !bind(c, &req) {
		return
	}
	menu, err := h.Menus.Create(c.Request.Context(), service.CreateMenuInput{
		Name:    req.Name,
		Price:   *req.Price,
		Content: req.Content,
		Active:  *req.Active,
		IsWater: *req.IsWater,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, menu)
}

func (h *Handler) ListMenus(c *gin.Context) {
	menus, err := h.Menus.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, menus)
}

func (h *Handler) GetMenu(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	menu, err := h.Menus.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, menu)
}

func (h *Handler) UpdateMenu(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req UpdateMenuRequest
	if !bind(c, &req) {
		return
	}
	menu, err := h.Menus.Update(c.Request.Context(), id, service.MenuPatch{
		Name:    req.Name,
		Price:   req.Price,
		Content: req.Content,
		Active:  req.Active,
		IsWater: req.IsWater,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, menu)
}

func (h *Handler) DeleteMenu(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.Menus.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu deleted"})
}
