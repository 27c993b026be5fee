package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateRoute(c *ginext.Context)
	ListRoutes(c *ginext.Context)
	CreateBus(c *ginext.Context)
	ListBuses(c *ginext.Context)
	CreateTrip(c *ginext.Context)
	SearchTrips(c *ginext.Context)
	GetSeatMap(c *ginext.Context)
	BookSeats(c *ginext.Context)
	GetUserBookings(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Catalog
		api.POST("/routes", h.CreateRoute)
		api.GET("/routes", h.ListRoutes)
		api.POST("/buses", h.CreateBus)
		api.GET("/buses", h.ListBuses)
		api.POST("/trips", h.CreateTrip)
		api.GET("/trips", h.SearchTrips)

		// Seats & bookings
		api.GET("/trips/:id/seats", h.GetSeatMap)
		api.POST("/trips/:id/book", h.BookSeats)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id/bookings", h.GetUserBookings)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
