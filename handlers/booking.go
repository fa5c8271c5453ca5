package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"thalibook/middleware"
	"thalibook/models"
	"thalibook/services/booking"
	"thalibook/utils"
)

// BookingHandler exposes the booking engine over HTTP.
type BookingHandler struct {
	svc    booking.BookingService
	logger *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{svc: svc, logger: logger}
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	res, err := h.svc.Book(c.Request.Context(), actor.ID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.logger.Info("booking created",
		zap.String("booking", res.ID),
		zap.String("restaurant", res.RestaurantID),
		zap.String("table", res.TableID))
	c.JSON(http.StatusCreated, res)
}

// CancelBooking handles DELETE /api/bookings/:id.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	bookingID := c.Param("id")
	if err := h.svc.Cancel(c.Request.Context(), bookingID, actor); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": models.StatusCancelled, "bookingId": bookingID})
}

// ListMyBookings handles GET /api/bookings/me.
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	out, err := h.svc.ListForUser(c.Request.Context(), actor.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// ListManagerBookings handles GET /api/bookings/manager.
func (h *BookingHandler) ListManagerBookings(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	if actor.Role != models.RoleManager && actor.Role != models.RoleAdmin {
		utils.JSONError(c, http.StatusForbidden, "forbidden", "manager role required")
		return
	}

	out, err := h.svc.ListForManager(c.Request.Context(), actor.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// CountBookingsToday handles GET /api/restaurants/:id/bookings/count for the
// manager dashboard.
func (h *BookingHandler) CountBookingsToday(c *gin.Context) {
	restaurantID := c.Param("id")
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "date query parameter is required")
		return
	}

	n, err := h.svc.CountForDate(c.Request.Context(), restaurantID, date, models.ActiveStatuses)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurantId": restaurantID, "date": date, "count": n})
}
