package api

import (
	"errors"
	"net/http"

	apiMiddleware "bitbucket.org/crgw/booking-hub/internal/api/middleware"
	"bitbucket.org/crgw/booking-hub/internal/rental"
	"bitbucket.org/crgw/booking-hub/internal/schema"
	"bitbucket.org/crgw/booking-hub/internal/storage"
	"bitbucket.org/crgw/booking-hub/internal/tools/slowlog"
	"bitbucket.org/crgw/booking-hub/internal/web/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type searchResponse struct {
	Success  bool                         `json:"success"`
	Count    int                          `json:"count"`
	Vehicles []schema.VehicleSearchResult `json:"vehicles"`
}

type vehicleResponse struct {
	Success bool                       `json:"success"`
	Vehicle schema.VehicleWithOperator `json:"vehicle"`
}

func searchFilters(params *schema.SearchRequestParams) rental.Filters {
	return rental.Filters{
		Transmission: params.Transmission,
		MinSleeps:    params.MinSleeps,
		HasToilet:    params.HasToilet,
		HasShower:    params.HasShower,
		VehicleType:  params.VehicleType,
		MaxPrice:     params.MaxPrice,
	}
}

func registerVehicleRoutes(group *gin.RouterGroup, store Storage) {
	vehicles := group.Group("/vehicles")

	vehicles.GET("/search",
		apiMiddleware.PrepareParams(schema.SearchRequestParams{}),
		func(ctx *gin.Context) {
			logger := ctx.MustGet("logger").(*zerolog.Logger)
			params := ctx.MustGet(apiMiddleware.ParamsKey).(*schema.SearchRequestParams)

			pickup, dropoff, err := params.Stay()
			if err != nil {
				middleware.HandleError(ctx, http.StatusBadRequest,
					"Dates must be formatted as "+schema.DateFormat, err)
				return
			}

			if err := rental.ValidateStay(pickup.Time, dropoff.Time); err != nil {
				middleware.HandleError(ctx, http.StatusBadRequest, err.Error(), err)
				return
			}

			slowLog := slowlog.CreateLogger(logger)
			slowLog.Start("vehicles:search")
			defer slowLog.Stop("vehicles:search")

			candidates, err := store.ListVehicles(ctx.Request.Context())
			if err != nil {
				middleware.HandleError(ctx, http.StatusInternalServerError, "Failed to search vehicles", err)
				return
			}

			results := rental.Search(
				candidates,
				pickup.Time,
				dropoff.Time,
				searchFilters(params),
			)

			ctx.JSON(http.StatusOK, searchResponse{
				Success:  true,
				Count:    len(results),
				Vehicles: results,
			})
		},
	)

	vehicles.GET("/:id", func(ctx *gin.Context) {
		id := ctx.Params.ByName("id")

		// A malformed id can never reference a row
		if _, err := uuid.Parse(id); err != nil {
			middleware.HandleError(ctx, http.StatusNotFound, "Vehicle not found", err)
			return
		}

		vehicle, err := store.GetVehicle(ctx.Request.Context(), id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				middleware.HandleError(ctx, http.StatusNotFound, "Vehicle not found", err)
				return
			}

			middleware.HandleError(ctx, http.StatusInternalServerError, "Failed to get vehicle", err)
			return
		}

		ctx.JSON(http.StatusOK, vehicleResponse{Success: true, Vehicle: vehicle})
	})
}
