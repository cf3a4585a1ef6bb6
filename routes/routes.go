package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"resort-backend/controllers"
	"resort-backend/middleware"
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

// Controllers bundles the handler instances SetupRouter wires up.
type Controllers struct {
	Auth      *controllers.AuthController
	Booking   *controllers.BookingController
	Guest     *controllers.GuestController
	Payment   *controllers.PaymentController
	Review    *controllers.ReviewController
	Promotion *controllers.PromotionController
	Inventory *controllers.InventoryController
	Report    *controllers.ReportController
	Activity  *controllers.ActivityController
}

func SetupRouter(ctrls Controllers, auth *middleware.AuthMiddleware) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.Logger())
	r.Static("/uploads", "./uploads")

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
		// Guest-facing portal, no auth.
		api.GET("/room-types", controllers.GetRoomTypes)
		api.GET("/room-types/:id", controllers.GetRoomTypeByID)
		api.GET("/room-types/:id/reviews", ctrls.Review.ListByRoomType)
		api.GET("/availability", ctrls.Booking.CheckAvailability)

		api.POST("/bookings", ctrls.Booking.CreateReservation)
		api.GET("/bookings/:id", ctrls.Booking.GetBookingDetails)
		api.POST("/bookings/:id/cancel", ctrls.Booking.CancelBooking)

		api.POST("/payments", ctrls.Payment.CreatePayment)
		api.POST("/payments/:id/proof", ctrls.Payment.UploadProof)

		api.POST("/reviews", ctrls.Review.CreateReview)

		auth_ := api.Group("/auth")
		{
			auth_.POST("/login", ctrls.Auth.Login)
			auth_.POST("/forgot", ctrls.Auth.ForgotPassword)
			auth_.POST("/activate", controllers.ActivateAdmin)

			// Session polling must not count as activity.
			auth_.GET("/session", auth.Observe(), ctrls.Auth.SessionState)
			auth_.POST("/logout", auth.RequireAdmin(), ctrls.Auth.Logout)
		}

		// Back-office console, JWT + live session required.
		admin := api.Group("/admin", auth.RequireAdmin())
		{
			bookings := admin.Group("/bookings")
			{
				bookings.GET("", auth.RequirePermission("bookings.view"), ctrls.Booking.GetBookings)
				bookings.GET("/:id", auth.RequirePermission("bookings.view"), ctrls.Booking.GetBookingDetails)
				bookings.POST("/walk-in", auth.RequirePermission("bookings.create"), ctrls.Booking.CreateWalkIn)
				bookings.POST("/:id/cancel", auth.RequirePermission("bookings.cancel"), ctrls.Booking.CancelBooking)
				bookings.POST("/:id/check-in", auth.RequirePermission("bookings.checkIn"), ctrls.Booking.CheckInBooking)
				bookings.POST("/:id/check-out", auth.RequirePermission("bookings.checkOut"), ctrls.Booking.CheckOutBooking)
				bookings.GET("/:id/payments", auth.RequirePermission("billing.view"), ctrls.Payment.ListByBooking)
			}

			payments := admin.Group("/payments")
			{
				payments.GET("/pending", auth.RequirePermission("billing.view"), ctrls.Payment.ListPending)
				payments.POST("", auth.RequirePermission("billing.record"), ctrls.Payment.RecordTransaction)
				payments.POST("/:id/verify", auth.RequirePermission("billing.verify"), ctrls.Payment.VerifyPayment)
			}

			guests := admin.Group("/guests", auth.RequirePermission("bookings.view"))
			{
				guests.GET("", ctrls.Guest.GetGuests)
				guests.GET("/:id", ctrls.Guest.GetGuestByID)
				guests.PUT("/:id", ctrls.Guest.UpdateGuest)
				guests.DELETE("/:id", ctrls.Guest.DeleteGuest)
			}

			rooms := admin.Group("/rooms", auth.RequirePermission("rooms.view"))
			{
				rooms.GET("", controllers.GetRooms)
				rooms.POST("", auth.RequirePermission("rooms.create"), controllers.CreateRoom)
				rooms.PATCH("/:id", auth.RequirePermission("rooms.edit"), controllers.UpdateRoom)
				rooms.PUT("/:id", auth.RequirePermission("rooms.edit"), controllers.UpdateRoom)
				rooms.DELETE("/:id", auth.RequirePermission("rooms.delete"), controllers.DeleteRoom)
			}

			roomTypes := admin.Group("/room-types", auth.RequirePermission("rooms.view"))
			{
				roomTypes.GET("", controllers.GetRoomTypes)
				roomTypes.POST("", auth.RequirePermission("rooms.create"), controllers.CreateRoomType)
				roomTypes.PUT("/:id", auth.RequirePermission("rooms.edit"), controllers.UpdateRoomType)
				roomTypes.DELETE("/:id", auth.RequirePermission("rooms.delete"), controllers.DeleteRoomType)
			}

			promotions := admin.Group("/promotions", auth.RequirePermission("promotions.view"))
			{
				promotions.GET("", ctrls.Promotion.GetPromotions)
				promotions.POST("", auth.RequirePermission("promotions.create"), ctrls.Promotion.CreatePromotion)
				promotions.PUT("/:id", auth.RequirePermission("promotions.edit"), ctrls.Promotion.UpdatePromotion)
				promotions.DELETE("/:id", auth.RequirePermission("promotions.delete"), ctrls.Promotion.DeletePromotion)
			}

			inventory := admin.Group("/inventory", auth.RequirePermission("inventory.view"))
			{
				inventory.GET("", ctrls.Inventory.GetItems)
				inventory.GET("/low-stock", ctrls.Inventory.GetLowStock)
				inventory.POST("", auth.RequirePermission("inventory.create"), ctrls.Inventory.CreateItem)
				inventory.PUT("/:id", auth.RequirePermission("inventory.edit"), ctrls.Inventory.UpdateItem)
				inventory.POST("/:id/adjust", auth.RequirePermission("inventory.adjust"), ctrls.Inventory.AdjustStock)
				inventory.DELETE("/:id", auth.RequirePermission("inventory.delete"), ctrls.Inventory.DeleteItem)
			}

			reviews := admin.Group("/reviews", auth.RequirePermission("reviews.view"))
			{
				reviews.DELETE("/:id", auth.RequirePermission("reviews.delete"), ctrls.Review.DeleteReview)
			}

			reports := admin.Group("/reports", auth.RequirePermission("reports.view"))
			{
				reports.GET("/occupancy", ctrls.Report.Occupancy)
				reports.GET("/revenue", ctrls.Report.Revenue)
				reports.GET("/bookings/export", auth.RequirePermission("reports.export"), ctrls.Report.ExportBookings)
			}

			admins := admin.Group("/staff", auth.RequirePermission("staff.view"))
			{
				admins.GET("", controllers.GetAdmins)
				admins.POST("", auth.RequirePermission("staff.create"), controllers.CreateAdmin)
				admins.POST("/invite", auth.RequirePermission("staff.invite"), controllers.InviteAdmin)
				admins.DELETE("/:id", auth.RequirePermission("staff.delete"), controllers.DeleteAdmin)
			}

			roles := admin.Group("/roles", auth.RequirePermission("roles.view"))
			{
				roles.GET("", controllers.GetRoles)
				roles.PUT("/:id/permissions", auth.RequirePermission("roles.edit"), controllers.UpdateRolePermissions)
			}

			admin.GET("/activity-logs", auth.RequirePermission("activityLogs.view"), ctrls.Activity.GetLogs)

			settings := admin.Group("/settings", auth.RequirePermission("settings.view"))
			{
				settings.GET("/resort", controllers.GetResortSettings)
				settings.PUT("/resort", auth.RequirePermission("settings.edit"), controllers.UpdateResortSettings)
			}
		}
	}

	return r
}
