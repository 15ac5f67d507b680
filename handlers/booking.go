package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"fieldbook/models"
	"fieldbook/services/booking"
	"fieldbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking lifecycle over HTTP.
type BookingHandler struct {
	Svc    booking.BookingService
	Logger *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// respondBookingError maps the booking service's error taxonomy onto stable
// HTTP status codes so API consumers can branch on kind, not message text.
func respondBookingError(c *gin.Context, err error) {
	var (
		notFound      *booking.NotFoundError
		badInterval   *booking.InvalidIntervalError
		pastDate      *booking.PastDateError
		badStatus     *booking.InvalidStatusError
		conflict      *booking.ConflictError
		badTransition *booking.InvalidTransitionError
	)
	switch {
	case errors.As(err, &notFound):
		utils.JSONError(c, http.StatusNotFound, err.Error(), "")
	case errors.As(err, &badInterval), errors.As(err, &pastDate),
		errors.As(err, &badStatus), errors.As(err, &badTransition):
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
	case errors.As(err, &conflict):
		utils.JSONError(c, http.StatusConflict, err.Error(), "")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "failed to process booking", err.Error())
	}
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var in booking.CreateBookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	b, err := h.Svc.Create(c.Request.Context(), in)
	if err != nil {
		h.Logger.Warn("Booking creation rejected", zap.Error(err))
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// parseBookingQuery reads the list filters from query parameters into the
// explicit query struct; unknown parameters are ignored.
func parseBookingQuery(c *gin.Context) models.BookingQuery {
	q := models.DefaultBookingQuery()

	if v, err := strconv.Atoi(c.Query("page")); err == nil {
		q.Page = v
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil {
		q.Limit = v
	}
	if v := c.Query("sortedBy"); v != "" {
		q.SortedBy = v
	}
	if v := c.Query("sortedDirection"); v != "" {
		q.SortedDirection = v
	}
	q.UserID = c.Query("userId")
	q.FieldID = c.Query("fieldId")
	q.Status = c.Query("status")

	if v := c.Query("startDate"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			q.StartDate = &t
		}
	}
	if v := c.Query("endDate"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			q.EndDate = &t
		}
	}

	q.Normalize()
	return q
}

// ListBookings handles GET /api/bookings.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.Svc.List(c.Request.Context(), parseBookingQuery(c))
	if err != nil {
		h.Logger.Error("Failed to list bookings", zap.Error(err))
		respondBookingError(c, err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBooking handles GET /api/bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// UpdateBooking handles PATCH /api/bookings/:id.
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	var in booking.UpdateBookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	b, err := h.Svc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		h.Logger.Warn("Booking update rejected", zap.String("bookingID", c.Param("id")), zap.Error(err))
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CancelBooking handles PATCH /api/bookings/:id/cancel.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	b, err := h.Svc.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// RemoveBooking handles DELETE /api/bookings/:id.
func (h *BookingHandler) RemoveBooking(c *gin.Context) {
	if err := h.Svc.Remove(c.Request.Context(), c.Param("id")); err != nil {
		respondBookingError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
