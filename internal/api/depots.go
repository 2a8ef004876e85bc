package api

import (
	"net/http"

	"bitbucket.org/crgw/booking-hub/internal/schema"
	"bitbucket.org/crgw/booking-hub/internal/web/middleware"
	"github.com/gin-gonic/gin"
)

type depotsResponse struct {
	Success bool                       `json:"success"`
	Count   int                        `json:"count"`
	Depots  []schema.DepotWithOperator `json:"depots"`
}

func registerDepotRoutes(group *gin.RouterGroup, store Storage) {
	depots := group.Group("/depots")

	depots.GET("", func(ctx *gin.Context) {
		all, err := store.ListDepots(ctx.Request.Context())
		if err != nil {
			middleware.HandleError(ctx, http.StatusInternalServerError, "Failed to get depots", err)
			return
		}

		ctx.JSON(http.StatusOK, depotsResponse{Success: true, Count: len(all), Depots: all})
	})

	depots.GET("/city/:city", func(ctx *gin.Context) {
		city := ctx.Params.ByName("city")

		inCity, err := store.ListDepotsByCity(ctx.Request.Context(), city)
		if err != nil {
			middleware.HandleError(ctx, http.StatusInternalServerError, "Failed to get depots", err)
			return
		}

		ctx.JSON(http.StatusOK, depotsResponse{Success: true, Count: len(inCity), Depots: inCity})
	})
}
