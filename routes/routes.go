package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"restaurant-api/handlers"
	"restaurant-api/middleware"
	"restaurant-api/models"
)

type Options struct {
	// AuthEnabled puts catalogue writes and order creation behind staff tokens
	AuthEnabled bool
	JWTSecret   []byte
	Log         *slog.Logger
}

// NewRouter builds the engine with the shared middleware and every route
func NewRouter(h *handlers.Handler, opts Options) *gin.Engine {
	if opts.Log == nil {
		opts.Log = slog.Default()
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(opts.Log), middleware.CORS())

	r.GET("/health", handlers.Health)
	r.GET("/", handlers.Welcome)

	SetupRoutes(r, h, opts)
	return r
}

func SetupRoutes(r *gin.Engine, h *handlers.Handler, opts Options) {
	admin := middleware.StaffOnly(opts.AuthEnabled, opts.JWTSecret, models.RoleAdmin)
	staff := middleware.StaffOnly(opts.AuthEnabled, opts.JWTSecret, models.RoleAdmin, models.RoleWaiter)

	// ── Staff accounts ─────────────────────────────────────────────
	auth := r.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.GET("/profile", middleware.AuthRequired(opts.JWTSecret), h.GetProfile)
		auth.POST("/staff",
			middleware.AuthRequired(opts.JWTSecret),
			middleware.RoleRequired(models.RoleAdmin),
			h.CreateStaff,
		)
	}

	// ── Tables ─────────────────────────────────────────────────────
	tables := r.Group("/salas")
	{
		tables.GET("", h.ListTables)
		tables.GET("/:id", h.GetTable)
		tables.POST("", with(admin, h.CreateTable)...)
	}

	// ── Customers ──────────────────────────────────────────────────
	customers := r.Group("/clientes")
	{
		customers.POST("", h.CreateCustomer)
		customers.GET("", h.ListCustomers)
		customers.GET("/:id", h.GetCustomer)
	}

	// ── Menu ───────────────────────────────────────────────────────
	menu := r.Group("/menu")
	{
		menu.GET("", h.ListMenus)
		menu.GET("/:id", h.GetMenu)
		menu.POST("", with(admin, h.CreateMenu)...)
		menu.PATCH("/:id", with(admin, h.UpdateMenu)...)
		menu.DELETE("/:id", with(admin, h.DeleteMenu)...)
	}

	// ── Bookings ───────────────────────────────────────────────────
	bookings := r.Group("/reservas")
	{
		bookings.POST("", h.CreateBooking)
		bookings.GET("/mis-reservas", h.MyBookings)
		bookings.DELETE("/:id", h.DeleteBooking)
	}

	// ── Orders ─────────────────────────────────────────────────────
	orders := r.Group("/orders")
	{
		orders.POST("/takeaway", with(staff, h.CreateTakeAwayOrder)...)
		orders.POST("/shipping", with(staff, h.CreateShippingOrder)...)
		orders.POST("/eatin", with(staff, h.CreateEatInOrder)...)
		orders.GET("/takeaway", h.ListTakeAwayOrders)
		orders.GET("/shipping", h.ListShippingOrders)
		orders.GET("/eatin", h.ListEatInOrders)
	}
}

func with(guards []gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	out := make([]gin.HandlerFunc, 0, len(guards)+1)
	out = append(out, guards...)
	return append(out, h)
}
