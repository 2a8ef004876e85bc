package api

import (
	"errors"
	"net/http"

	apiMiddleware "bitbucket.org/crgw/booking-hub/internal/api/middleware"
	"bitbucket.org/crgw/booking-hub/internal/rental"
	"bitbucket.org/crgw/booking-hub/internal/schema"
	"bitbucket.org/crgw/booking-hub/internal/storage"
	"bitbucket.org/crgw/booking-hub/internal/web/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type bookingResponse struct {
	Success bool           `json:"success"`
	Booking schema.Booking `json:"booking"`
}

type bookingDetailsResponse struct {
	Success bool                  `json:"success"`
	Booking schema.BookingDetails `json:"booking"`
}

func registerBookingRoutes(group *gin.RouterGroup, store Storage) {
	bookings := rental.NewBookings(store)

	group.POST("/bookings",
		apiMiddleware.PrepareParams(schema.BookingRequestParams{}),
		func(ctx *gin.Context) {
			logger := ctx.MustGet("logger").(*zerolog.Logger)
			params := ctx.MustGet(apiMiddleware.ParamsKey).(*schema.BookingRequestParams)

			booking, err := bookings.Create(ctx.Request.Context(), *params, logger)
			if err != nil {
				var validationErr *rental.ValidationError
				if errors.As(err, &validationErr) {
					middleware.HandleError(ctx, http.StatusBadRequest, validationErr.Message, err)
					return
				}

				if errors.Is(err, storage.ErrNotFound) {
					middleware.HandleError(ctx, http.StatusNotFound, "Vehicle not found", err)
					return
				}

				middleware.HandleError(ctx, http.StatusInternalServerError, "Failed to create booking", err)
				return
			}

			ctx.JSON(http.StatusCreated, bookingResponse{Success: true, Booking: booking})
		},
	)

	group.GET("/bookings/:id", func(ctx *gin.Context) {
		id := ctx.Params.ByName("id")

		if _, err := uuid.Parse(id); err != nil {
			middleware.HandleError(ctx, http.StatusNotFound, "Booking not found", err)
			return
		}

		booking, err := store.GetBooking(ctx.Request.Context(), id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				middleware.HandleError(ctx, http.StatusNotFound, "Booking not found", err)
				return
			}

			middleware.HandleError(ctx, http.StatusInternalServerError, "Failed to get booking", err)
			return
		}

		ctx.JSON(http.StatusOK, bookingDetailsResponse{Success: true, Booking: booking})
	})
}
