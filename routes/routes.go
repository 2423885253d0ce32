package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hms-backend/controllers"
	"hms-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires controllers into the gin engine.
func SetupRouter(
	rc *controllers.RoomController,
	bc *controllers.BookingController,
	gc *controllers.GuestController,
	pc *controllers.PaymentController,
	sc *controllers.ServiceController,
	cc *controllers.CleaningController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.POST("", rc.CreateRoom)

			// number-keyed detail view, kept apart from /:id so room numbers
			// and ids don't collide in the route tree
			rooms.GET("/number/:number/full-info", rc.GetRoomFullInfo)

			rooms.GET("/:id", rc.GetRoom)
			rooms.PATCH("/:id", rc.UpdateRoom)
			rooms.PUT("/:id", rc.UpdateRoom)
			rooms.DELETE("/:id", rc.DeleteRoom)

			rooms.GET("/:id/cleaning", cc.GetRoomSchedule)
			rooms.PUT("/:id/cleaning", cc.UpsertRoomSchedule)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.POST("", bc.CreateBooking)
			bookings.GET("/:id", bc.GetBooking)
			bookings.DELETE("/:id", bc.DeleteBooking)

			bookings.POST("/:id/checkin", bc.CheckIn)
			bookings.POST("/:id/checkout", bc.CheckOut)
			bookings.POST("/:id/cancel", bc.Cancel)

			bookings.GET("/:id/payments", pc.GetBookingPayments)
			bookings.POST("/:id/services", bc.AttachService)
		}

		guests := api.Group("/guests")
		{
			guests.GET("", gc.GetGuests)
			guests.POST("", gc.CreateGuest)
			guests.GET("/passport/:number", gc.GetGuestByPassport)
			guests.GET("/:id", gc.GetGuest)
		}

		payments := api.Group("/payments")
		{
			payments.GET("", pc.GetPayments)
			payments.POST("", pc.CreatePayment)
			payments.GET("/:id", pc.GetPayment)
		}

		serviceRoutes := api.Group("/services")
		{
			serviceRoutes.GET("", sc.GetServices)
			serviceRoutes.POST("", sc.CreateService)
			serviceRoutes.PUT("/:id", sc.UpdateService)
		}

		api.GET("/cleaning", cc.GetSchedules)
	}

	return r
}
