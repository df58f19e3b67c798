package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	// Admin pages
	BookingsPage(c *ginext.Context)
	SlotsPage(c *ginext.Context)

	// Admin API
	ListBookings(c *ginext.Context)
	GetBooking(c *ginext.Context)
	DeleteBooking(c *ginext.Context)
	RefundBooking(c *ginext.Context)
	UpdateBooking(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	ExportBookings(c *ginext.Context)
	AuditLog(c *ginext.Context)
	GetSlots(c *ginext.Context)
	ToggleSlot(c *ginext.Context)
	Session(c *ginext.Context)

	// Public form
	FormPage(c *ginext.Context)
	FormSlots(c *ginext.Context)
	DisabledDates(c *ginext.Context)
	SubmitForm(c *ginext.Context)
	CreateFormBooking(c *ginext.Context)
	CapturePayPal(c *ginext.Context)
	CancelPayment(c *ginext.Context)
	MollieStatus(c *ginext.Context)
	MollieWebhook(c *ginext.Context)

	// Auth
	LoginPage(c *ginext.Context)
	Login(c *ginext.Context)
	Logout(c *ginext.Context)
}

type Options struct {
	Mode        string
	Templates   string
	Static      string
	MetricsPath string
}

func InitRouter(opts Options, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(opts.Mode)
	router.Use(mw...)

	admin := router.Group("/admin")
	{
		admin.GET("", func(c *ginext.Context) {
			c.Redirect(http.StatusFound, "/admin/bookings")
		})
		admin.GET("/bookings", h.BookingsPage)
		admin.GET("/slots", h.SlotsPage)
		admin.POST("/slots/toggle", h.ToggleSlot)

		api := admin.Group("/api")
		{
			api.GET("/session", h.Session)

			// Bookings
			api.GET("/bookings", h.ListBookings)
			api.POST("/bookings", h.CreateBooking)
			api.GET("/bookings/export", h.ExportBookings)
			api.GET("/bookings/:id", h.GetBooking)
			api.PATCH("/bookings/:id", h.UpdateBooking)
			api.DELETE("/bookings/:id", h.DeleteBooking)
			api.POST("/bookings/:id/refund", h.RefundBooking)

			// Slots
			api.GET("/slots", h.GetSlots)
			api.POST("/slots/toggle", h.ToggleSlot)

			api.GET("/audit", h.AuditLog)
		}
	}

	form := router.Group("/api/form")
	{
		form.GET("/slots", h.FormSlots)
		form.GET("/disabled-dates", h.DisabledDates)
		form.POST("/submit", h.SubmitForm)
		form.POST("/create", h.CreateFormBooking)
	}

	payments := router.Group("/api/payments")
	{
		payments.POST("/paypal/capture", h.CapturePayPal)
		payments.POST("/cancel/:id", h.CancelPayment)
		payments.GET("/mollie/status/:id", h.MollieStatus)
		payments.POST("/mollie/webhook", h.MollieWebhook)
	}

	router.GET("/login", h.LoginPage)
	router.POST("/login", h.Login)
	router.POST("/logout", h.Logout)

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	if opts.MetricsPath != "" {
		router.GET(opts.MetricsPath, func(c *ginext.Context) {
			promhttp.Handler().ServeHTTP(c.Writer, c.Request)
		})
	}

	if opts.Templates != "" {
		router.LoadHTMLGlob(opts.Templates)
	}
	if opts.Static != "" {
		router.Static("/static", opts.Static)
	}

	router.GET("/", h.FormPage)

	return router
}
