// Package router wires handlers and middleware onto the Echo instance.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/bellathena/cityhill-backoffice/internal/config"
	"github.com/bellathena/cityhill-backoffice/internal/handler"
	"github.com/bellathena/cityhill-backoffice/internal/middleware"
	"github.com/bellathena/cityhill-backoffice/internal/model"
	"github.com/bellathena/cityhill-backoffice/internal/store"
)

// RegisterRoutes attaches all routes.  The public group carries only health
// and auth; everything else sits behind JWT auth with at least STAFF role,
// and user administration requires ADMIN.
func RegisterRoutes(e *echo.Echo, h *handler.Handler, cfg config.Config, st *store.Store, rdb *redis.Client) {
	rateLimit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb, st.Version)

	e.GET("/healthz", h.Healthz)

	auth := e.Group("/v1/auth", rateLimit)
	auth.POST("/login", h.Login)
	auth.POST("/refresh", h.Refresh)
	auth.POST("/logout", h.Logout)

	api := e.Group("/v1",
		middleware.JWTAuth(cfg.JWTSecret),
		middleware.RequireRole(string(model.RoleStaff), string(model.RoleAdmin)),
		rateLimit,
		cache,
	)

	api.GET("/dashboard", h.Dashboard)
	api.GET("/calendar", h.Calendar)
	api.GET("/calendar/cell", h.CalendarCell)

	api.GET("/daily-bookings", h.ListDailyBookings)
	api.POST("/daily-bookings", h.CreateDailyBooking)
	api.DELETE("/daily-bookings/:id", h.CancelDailyBooking)
	api.PUT("/daily-bookings/:id/check-in", h.CheckInDailyBooking)
	api.PUT("/daily-bookings/:id/check-out", h.CheckOutDailyBooking)
	api.PUT("/daily-bookings/:id/payment", h.UpdateBookingPayment)

	api.GET("/monthly-contracts", h.ListMonthlyContracts)
	api.POST("/monthly-contracts", h.CreateMonthlyContract)
	api.PUT("/monthly-contracts/:id/approve", h.ApproveMonthlyContract)
	api.PUT("/monthly-contracts/:id/close", h.CloseMonthlyContract)
	api.DELETE("/monthly-contracts/:id", h.DeleteMonthlyContract)

	api.GET("/rooms", h.ListRooms)
	api.POST("/rooms", h.CreateRoom)
	api.PUT("/rooms/:id", h.UpdateRoom)
	api.DELETE("/rooms/:id", h.DeleteRoom)

	api.GET("/room-types", h.ListRoomTypes)
	api.POST("/room-types", h.CreateRoomType)
	api.PUT("/room-types/:id", h.UpdateRoomType)
	api.DELETE("/room-types/:id", h.DeleteRoomType)

	api.GET("/customers", h.ListCustomers)
	api.POST("/customers", h.CreateCustomer)
	api.PUT("/customers/:id", h.UpdateCustomer)
	api.DELETE("/customers/:id", h.DeleteCustomer)

	api.GET("/utility-rates", h.ListUtilityRates)
	api.PUT("/utility-rates/:id", h.UpdateUtilityRate)

	admin := api.Group("/users", middleware.RequireRole(string(model.RoleAdmin)))
	admin.GET("", h.ListUsers)
	admin.POST("", h.CreateUser)
	admin.PUT("/:id", h.UpdateUser)
	admin.DELETE("/:id", h.DeleteUser)
}
