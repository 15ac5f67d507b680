package routes

import (
	"net/http"
	"time"

	"fieldbook/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers the router needs.
type HandlerBundle struct {
	Booking   *handlers.BookingHandler
	Field     *handlers.FieldHandler
	User      *handlers.UserHandler
	Dashboard *handlers.DashboardHandler
}

// RegisterBookingRoutes sets up the endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.Booking.CreateBooking)
		api.GET("", hb.Booking.ListBookings)
		api.GET("/:id", hb.Booking.GetBooking)
		api.PATCH("/:id", hb.Booking.UpdateBooking)
		api.PATCH("/:id/cancel", hb.Booking.CancelBooking)
		api.DELETE("/:id", hb.Booking.RemoveBooking)
	}
}

// RegisterFieldRoutes registers facility-directory endpoints.
func RegisterFieldRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/fields")
	{
		api.POST("", hb.Field.CreateField)
		api.GET("", hb.Field.ListFields)
		api.GET("/:id", hb.Field.GetField)
		api.PATCH("/:id", hb.Field.UpdateField)
		api.DELETE("/:id", hb.Field.DeleteField)
	}
}

// RegisterUserRoutes registers identity-directory endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("", hb.User.CreateUser)
		api.GET("", hb.User.ListUsers)
		api.GET("/:id", hb.User.GetUser)
		api.DELETE("/:id", hb.User.DeleteUser)
	}
}

// RegisterDashboardRoutes registers reporting endpoints.
func RegisterDashboardRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/dashboard")
	{
		api.GET("/stats", hb.Dashboard.GetStats)
		api.GET("/upcoming", hb.Dashboard.GetUpcoming)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "fieldbook up"})
	})
}

// RegisterRoutes wires up CORS and all route groups.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
	RegisterFieldRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterDashboardRoutes(r, hb)
}
