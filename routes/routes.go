package routes

import (
	"net/http"
	"time"

	"cleansweep/handlers"
	"cleansweep/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterServiceRoutes registers the service catalog and layout authoring endpoints.
func RegisterServiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		// Public catalog reads.
		api.GET("", hb.Service.ListServices)
		api.GET("/:id", hb.Service.GetService)

		// Layout authoring requires operator access.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthAdminMiddleware())
		protected.POST("", hb.Service.CreateService)
		protected.PUT("/:id/layout", hb.Service.UpdateLayout)
		protected.DELETE("/:id", hb.Service.DeleteService)
	}

	blocks := r.Group("/api/blocks")
	blocks.Use(middleware.JWTAuthAdminMiddleware())
	{
		blocks.GET("/schemas", hb.Service.BlockSchemas)
		blocks.POST("/validate", hb.Service.ValidateBlock)
	}
}

// RegisterBookingRoutes registers all endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	booking := r.Group("/api/bookings")
	{
		booking.POST("", hb.Booking.CreateBooking)
		booking.GET("/:id", hb.Booking.GetBooking)
		booking.GET("/user/:userID", hb.Booking.ListUserBookings)
		booking.POST("/:id/cancel", hb.Booking.CancelBooking)

		// Dispatch operations are operator-only.
		protected := booking.Group("")
		protected.Use(middleware.JWTAuthAdminMiddleware())
		protected.GET("", hb.Booking.ListBookings)
		protected.GET("/:id/available-cleaners", hb.Booking.AvailableCleaners)
		protected.POST("/:id/assign", hb.Booking.AssignCleaner)
		protected.PUT("/:id/status", hb.Booking.UpdateStatus)
	}
}

// RegisterCleanerRoutes registers the cleaner roster endpoints.
func RegisterCleanerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/cleaners")
	api.Use(middleware.JWTAuthAdminMiddleware())
	{
		api.POST("", hb.Cleaner.CreateCleaner)
		api.GET("", hb.Cleaner.ListCleaners)
		api.GET("/:id", hb.Cleaner.GetCleaner)
		api.PUT("/:id", hb.Cleaner.UpdateCleaner)
		api.PUT("/:id/status", hb.Cleaner.UpdateCleanerStatus)
		api.DELETE("/:id", hb.Cleaner.DeleteCleaner)
	}
}

// RegisterRoutes wires CORS, health and every API group onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.HealthHandler)
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	RegisterServiceRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterCleanerRoutes(r, hb)
}
