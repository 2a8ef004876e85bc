package api

import (
	"context"
	"net/http"

	"bitbucket.org/crgw/booking-hub/internal/schema"
	"bitbucket.org/crgw/booking-hub/internal/tools/caching"
	"github.com/gin-gonic/gin"
)

// Storage is everything the route handlers need from the database. The
// production implementation is *storage.Store; tests plug in a fake.
type Storage interface {
	Ping(ctx context.Context) error
	ListVehicles(ctx context.Context) ([]schema.VehicleWithOperator, error)
	GetVehicle(ctx context.Context, id string) (schema.VehicleWithOperator, error)
	CreateBooking(ctx context.Context, booking schema.Booking) (schema.Booking, error)
	GetBooking(ctx context.Context, id string) (schema.BookingDetails, error)
	GetClient(ctx context.Context, id string) (schema.Client, error)
	ListDepots(ctx context.Context) ([]schema.DepotWithOperator, error)
	ListDepotsByCity(ctx context.Context, city string) ([]schema.DepotWithOperator, error)
	CreateQuote(ctx context.Context, quote schema.Quote) (schema.Quote, error)
	ListQuotes(ctx context.Context) ([]schema.QuoteWithClient, error)
	ListQuotesByClient(ctx context.Context, clientId string) ([]schema.Quote, error)
}

func RegisterRoutes(router *gin.Engine, store Storage, cache *caching.Cacher) {
	router.GET("/health", func(ctx *gin.Context) {
		if err := store.Ping(ctx.Request.Context()); err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{
				"status":   "unhealthy",
				"database": "disconnected",
			})
			return
		}

		ctx.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"database": "connected",
		})
	})

	group := router.Group("/api")

	registerVehicleRoutes(group, store)
	registerBookingRoutes(group, store)
	registerClientRoutes(group, store, cache)
	registerDepotRoutes(group, store)
	registerQuoteRoutes(group, store)
}
