package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	CancelEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	ListEventRegistrations(c *ginext.Context)
	RegisterForEvent(c *ginext.Context)
	UnregisterFromEvent(c *ginext.Context)
	CheckRegistration(c *ginext.Context)
	ApproveRegistration(c *ginext.Context)
	RemoveApprovedRegistration(c *ginext.Context)
	GetUserRegistrations(c *ginext.Context)
	GetPendingRegistrations(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	GetUserNotifications(c *ginext.Context)
	ListChatMessages(c *ginext.Context)
	SendChatMessage(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Events
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.PUT("/events/:id", h.UpdateEvent)
		api.POST("/events/:id/cancel", h.CancelEvent)
		api.GET("/events/:id/registrations", h.ListEventRegistrations)

		// Registrations
		api.POST("/events/:id/register", h.RegisterForEvent)
		api.POST("/events/:id/unregister", h.UnregisterFromEvent)
		api.GET("/events/:id/registration", h.CheckRegistration)
		api.POST("/registrations/:id/approve", h.ApproveRegistration)
		api.POST("/registrations/:id/remove", h.RemoveApprovedRegistration)

		// Chat
		api.GET("/events/:id/messages", h.ListChatMessages)
		api.POST("/events/:id/messages", h.SendChatMessage)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id/registrations", h.GetUserRegistrations)
		api.GET("/users/:id/pending-registrations", h.GetPendingRegistrations)
		api.GET("/users/:id/notifications", h.GetUserNotifications)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
