package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateSession(c *ginext.Context)
	GetSession(c *ginext.Context)
	ListSessions(c *ginext.Context)
	Register(c *ginext.Context)
	ConfirmRegistration(c *ginext.Context)
	CancelRegistration(c *ginext.Context)
	AddGuests(c *ginext.Context)
	RemoveGuests(c *ginext.Context)
	RenameGuests(c *ginext.Context)
	JoinWaitlist(c *ginext.Context)
	ReduceWaitlist(c *ginext.Context)
	ReserveIntent(c *ginext.Context)
	ConfirmIntent(c *ginext.Context)
	Sweep(c *ginext.Context)
}

func InitRouter(mode string, h Handler, sweepAuth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Sessions
		api.POST("/sessions", h.CreateSession)
		api.GET("/sessions", h.ListSessions)
		api.GET("/sessions/:id", h.GetSession)

		// Registrations
		api.POST("/sessions/:id/register", h.Register)
		api.POST("/registrations/:id/confirm", h.ConfirmRegistration)
		api.DELETE("/registrations/:id", h.CancelRegistration)

		// Guests
		api.POST("/registrations/:id/guests", h.AddGuests)
		api.DELETE("/registrations/:id/guests", h.RemoveGuests)
		api.PATCH("/registrations/:id/guests", h.RenameGuests)

		// Waitlist
		api.POST("/sessions/:id/waitlist", h.JoinWaitlist)
		api.POST("/registrations/:id/waitlist/reduce", h.ReduceWaitlist)

		// Payment intents
		api.POST("/sessions/:id/intents", h.ReserveIntent)
		api.POST("/intents/:id/confirm", h.ConfirmIntent)

		// Admin
		api.POST("/admin/sweep", sweepAuth, h.Sweep)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
