package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-api/models"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "Restaurant Bookings & Orders API",
		"version": "1.0.0",
	})
}

func Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":    "Welcome to the Restaurant Bookings & Orders API",
		"health":     "/health",
		"orderTypes": models.OrderTypes(),
		"resources":  []string{"/salas", "/clientes", "/menu", "/reservas", "/orders"},
	})
}
