package routes

import (
	"net/http"
	"strings"
	"time"

	"luxride/config"
	"luxride/handlers"
	"luxride/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle collects the handlers the route registry wires up.
type HandlerBundle struct {
	Booking *handlers.BookingHandler
	Contact *handlers.ContactHandler
	Payment *handlers.PaymentHandler
}

// RegisterBookingRoutes registers booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.Booking.CreateBookingHandler)
		api.GET("", hb.Booking.ListBookingsHandler)
		api.GET("/check-availability", hb.Booking.CheckAvailabilityHandler)
	}
}

// RegisterContactRoutes registers the contact inquiry endpoint.
func RegisterContactRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.POST("/api/contact", hb.Contact.CreateContactHandler)
}

// RegisterPaymentRoutes registers checkout, status and webhook endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.POST("/checkout", hb.Payment.CreateCheckoutHandler)
		api.GET("/status/:sessionID", hb.Payment.PaymentStatusHandler)
	}
	// Stripe calls this directly; it stays outside the payments group.
	r.POST("/api/webhook/stripe", hb.Payment.StripeWebhookHandler)
}

// RegisterRootRoute registers the API root message.
func RegisterRootRoute(r *gin.Engine) {
	r.GET("/api/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Atlanta Luxury Chauffeur Service API"})
	})
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(config.AppConfig.CORSOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Stripe-Signature"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterRootRoute(r)
	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
	RegisterContactRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
}
