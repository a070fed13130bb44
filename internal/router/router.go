package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateUser(c *ginext.Context)
	GetUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	UpdateUser(c *ginext.Context)
	DeleteUser(c *ginext.Context)
	GetUserBookings(c *ginext.Context)
	GetUnreadTotal(c *ginext.Context)
	CreateVehicle(c *ginext.Context)
	GetVehicle(c *ginext.Context)
	ListVehicles(c *ginext.Context)
	UpdateVehicle(c *ginext.Context)
	DeleteVehicle(c *ginext.Context)
	GetAvailability(c *ginext.Context)
	GetDriverBookings(c *ginext.Context)
	GetDriverVehicles(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	LookupBooking(c *ginext.Context)
	PayBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	CancelBookingDirect(c *ginext.Context)
	RequestCancel(c *ginext.Context)
	ResolveCancelRequest(c *ginext.Context)
	CancelByDriver(c *ginext.Context)
	MarkOnTheWay(c *ginext.Context)
	CompleteBooking(c *ginext.Context)
	RateBooking(c *ginext.Context)
	GetReceipt(c *ginext.Context)
	GetMessages(c *ginext.Context)
	SendMessage(c *ginext.Context)
	GetUnreadCount(c *ginext.Context)
	MarkMessagesRead(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id", h.GetUser)
		api.PUT("/users/:id", h.UpdateUser)
		api.DELETE("/users/:id", h.DeleteUser)
		api.GET("/users/:id/bookings", h.GetUserBookings)
		api.GET("/users/:id/unread", h.GetUnreadTotal)

		// Vehicles
		api.POST("/vehicles", h.CreateVehicle)
		api.GET("/vehicles", h.ListVehicles)
		api.GET("/vehicles/:id", h.GetVehicle)
		api.PUT("/vehicles/:id", h.UpdateVehicle)
		api.DELETE("/vehicles/:id", h.DeleteVehicle)
		api.GET("/vehicles/:id/availability", h.GetAvailability)

		// Drivers
		api.GET("/drivers/:id/bookings", h.GetDriverBookings)
		api.GET("/drivers/:id/vehicles", h.GetDriverVehicles)

		// Bookings
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings/lookup", h.LookupBooking)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/pay", h.PayBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.POST("/bookings/:id/cancel-direct", h.CancelBookingDirect)
		api.POST("/bookings/:id/cancel-request", h.RequestCancel)
		api.POST("/bookings/:id/cancel-request/resolve", h.ResolveCancelRequest)
		api.POST("/bookings/:id/driver-cancel", h.CancelByDriver)
		api.POST("/bookings/:id/on-the-way", h.MarkOnTheWay)
		api.POST("/bookings/:id/complete", h.CompleteBooking)
		api.POST("/bookings/:id/rating", h.RateBooking)
		api.GET("/bookings/:id/receipt", h.GetReceipt)

		// Messages
		api.GET("/bookings/:id/messages", h.GetMessages)
		api.POST("/bookings/:id/messages", h.SendMessage)
		api.GET("/bookings/:id/messages/unread", h.GetUnreadCount)
		api.POST("/bookings/:id/messages/read", h.MarkMessagesRead)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
