package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-api/service"
)

type CreateBookingRequest struct {
	Name        string `json:"name" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	PeopleQty   *int   `json:"peopleQty" binding:"required,gte=0"`
	Date        *Date  `json:"date" binding:"required"`
	Tables      []uint `json:"tables" binding:"required"`
	Confirmed   *bool  `json:"confirmed" binding:"required"`
	CustomerID  *uint  `json:"customerId"` // 0 means none
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if !bind(c, &req) {
		return
	}
	booking, err := h.Bookings.Create(c.Request.Context(), service.CreateBookingInput{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		PeopleQty:   *req.PeopleQty,
		Date:        req.Date.Time,
		TableIDs:    req.Tables,
		Confirmed:   *req.Confirmed,
		CustomerID:  optionalID(req.CustomerID),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// MyBookings lists the bookings made with a phone number
func (h *Handler) MyBookings(c *gin.Context) {
	phone := c.Query("phoneNumber")
	if phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "phoneNumber query parameter is required"})
		return
	}
	bookings, err := h.Bookings.FindByPhoneNumber(c.Request.Context(), phone)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// DeleteBooking succeeds whether or not the booking existed, id 0 included
func (h *Handler) DeleteBooking(c *gin.Context) {
	id, ok := paramUint(c)
	if !ok {
		return
	}
	if err := h.Bookings.Remove(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted"})
}
