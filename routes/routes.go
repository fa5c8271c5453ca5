package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"thalibook/handlers"
	"thalibook/middleware"
)

// RegisterRoutes wires all endpoints onto the router.
func RegisterRoutes(r *gin.Engine, bookingHandler *handlers.BookingHandler, restaurantHandler *handlers.RestaurantHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterRestaurantRoutes(r, restaurantHandler, bookingHandler)
	RegisterBookingRoutes(r, bookingHandler)
}

// RegisterRestaurantRoutes registers directory endpoints.
func RegisterRestaurantRoutes(r *gin.Engine, hr *handlers.RestaurantHandler, hb *handlers.BookingHandler) {
	api := r.Group("/api/restaurants")
	{
		// Public directory endpoints.
		api.GET("", hr.SearchRestaurants)
		api.GET("/:id", hr.GetRestaurant)
		api.GET("/:id/tables", hr.ListTables)
		api.GET("/:id/availability", hr.GetAvailability)

		// Protected routes (Require Authentication)
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		protected.POST("", hr.CreateRestaurant)
		protected.GET("/pending", hr.ListPendingRestaurants)
		protected.PUT("/:id/approve", hr.ApproveRestaurant)
		protected.PUT("/:id/hours", hr.UpdateHours)
		protected.PUT("/:id/tables", hr.UpdateTables)
		protected.GET("/:id/bookings/count", hb.CountBookingsToday)
	}
}

// RegisterBookingRoutes registers all endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.BookingHandler) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.AuthMiddleware())
		api.POST("", hb.CreateBooking)
		api.DELETE("/:id", hb.CancelBooking)
		api.GET("/me", hb.ListMyBookings)
		api.GET("/manager", hb.ListManagerBookings)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm ThaliBook"})
	})
}
