package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"thalibook/middleware"
	"thalibook/models"
	"thalibook/services/booking"
	"thalibook/services/restaurant"
	"thalibook/utils"
)

// RestaurantHandler exposes the restaurant directory over HTTP.
type RestaurantHandler struct {
	directory restaurant.DirectoryService
	bookings  booking.BookingService
	logger    *zap.Logger
}

func NewRestaurantHandler(directory restaurant.DirectoryService, bookings booking.BookingService, logger *zap.Logger) *RestaurantHandler {
	return &RestaurantHandler{directory: directory, bookings: bookings, logger: logger}
}

// CreateRestaurantRequest is the authored restaurant payload.
type CreateRestaurantRequest struct {
	Name        string           `json:"name" binding:"required"`
	Address     string           `json:"address" binding:"required"`
	City        string           `json:"city" binding:"required"`
	State       string           `json:"state"`
	ZipCode     string           `json:"zipCode"`
	Phone       string           `json:"phone"`
	Description string           `json:"description"`
	Cuisine     string           `json:"cuisine"`
	CostRating  int              `json:"costRating"`
	Hours       models.WeekHours `json:"hours" binding:"required"`
	Tables      map[int]int      `json:"tables" binding:"required"`
}

// CreateRestaurant handles POST /api/restaurants.
func (h *RestaurantHandler) CreateRestaurant(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	if actor.Role != models.RoleManager {
		utils.JSONError(c, http.StatusForbidden, "forbidden", "manager role required")
		return
	}

	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	r := &models.Restaurant{
		Name:        req.Name,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		ZipCode:     req.ZipCode,
		Phone:       req.Phone,
		Description: req.Description,
		Cuisine:     req.Cuisine,
		CostRating:  req.CostRating,
		Hours:       req.Hours,
		Tables:      req.Tables,
	}
	created, err := h.directory.Create(c.Request.Context(), actor.ID, r)
	if err != nil {
		respondError(c, err)
		return
	}

	h.logger.Info("restaurant submitted for approval",
		zap.String("restaurant", created.ID), zap.String("manager", actor.ID))
	c.JSON(http.StatusCreated, created)
}

// GetRestaurant handles GET /api/restaurants/:id.
func (h *RestaurantHandler) GetRestaurant(c *gin.Context) {
	r, err := h.directory.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// SearchRestaurants handles GET /api/restaurants.
func (h *RestaurantHandler) SearchRestaurants(c *gin.Context) {
	filter := models.RestaurantFilter{
		City:    c.Query("city"),
		Cuisine: c.Query("cuisine"),
		Name:    c.Query("name"),
	}
	out, err := h.directory.Search(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// ListPendingRestaurants handles GET /api/restaurants/pending (admin).
func (h *RestaurantHandler) ListPendingRestaurants(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	out, err := h.directory.ListPending(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// ApproveRestaurant handles PUT /api/restaurants/:id/approve (admin).
func (h *RestaurantHandler) ApproveRestaurant(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	id := c.Param("id")
	if err := h.directory.Approve(c.Request.Context(), id, actor); err != nil {
		respondError(c, err)
		return
	}
	h.logger.Info("restaurant approved", zap.String("restaurant", id), zap.String("admin", actor.ID))
	c.JSON(http.StatusOK, gin.H{"approved": true, "restaurantId": id})
}

// UpdateHours handles PUT /api/restaurants/:id/hours.
func (h *RestaurantHandler) UpdateHours(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	var req struct {
		Hours models.WeekHours `json:"hours" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := h.directory.UpdateHours(c.Request.Context(), c.Param("id"), req.Hours, actor); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

// UpdateTables handles PUT /api/restaurants/:id/tables.
func (h *RestaurantHandler) UpdateTables(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	var req struct {
		Tables map[int]int `json:"tables" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := h.directory.UpdateTables(c.Request.Context(), c.Param("id"), req.Tables, actor); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

// ListTables handles GET /api/restaurants/:id/tables.
func (h *RestaurantHandler) ListTables(c *gin.Context) {
	out, err := h.directory.ListTables(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetAvailability handles GET /api/restaurants/:id/availability.
func (h *RestaurantHandler) GetAvailability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "date query parameter is required")
		return
	}
	partySize := 1
	if raw := c.Query("partySize"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", "partySize must be a positive integer")
			return
		}
		partySize = n
	}

	out, err := h.bookings.Availability(c.Request.Context(), c.Param("id"), date, partySize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurantId": c.Param("id"), "date": date, "tables": out})
}
