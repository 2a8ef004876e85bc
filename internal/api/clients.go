package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"bitbucket.org/crgw/booking-hub/internal/schema"
	"bitbucket.org/crgw/booking-hub/internal/storage"
	"bitbucket.org/crgw/booking-hub/internal/tools/caching"
	"bitbucket.org/crgw/booking-hub/internal/web/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const clientConfigCacheTTL = 5 * time.Minute

type clientConfigResponse struct {
	Success bool                `json:"success"`
	Config  schema.ClientConfig `json:"config"`
}

func clientConfigCacheKey(clientId string) string {
	return fmt.Sprintf("client-config:%s", clientId)
}

func registerClientRoutes(group *gin.RouterGroup, store Storage, cache *caching.Cacher) {
	group.GET("/clients/:clientId/config", func(ctx *gin.Context) {
		logger := ctx.MustGet("logger").(*zerolog.Logger)
		clientId := ctx.Params.ByName("clientId")

		if _, err := uuid.Parse(clientId); err != nil {
			middleware.HandleError(ctx, http.StatusNotFound, "Client not found", err)
			return
		}

		var config schema.ClientConfig
		if cache.Fetch(ctx.Request.Context(), clientConfigCacheKey(clientId), &config) {
			ctx.JSON(http.StatusOK, clientConfigResponse{Success: true, Config: config})
			return
		}

		client, err := store.GetClient(ctx.Request.Context(), clientId)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				middleware.HandleError(ctx, http.StatusNotFound, "Client not found", err)
				return
			}

			middleware.HandleError(ctx, http.StatusInternalServerError, "Failed to get client config", err)
			return
		}

		config = schema.ClientConfig{
			Id:   client.Id,
			Name: client.Name,
			Theme: schema.Theme{
				PrimaryColor:   client.ThemePrimaryColor,
				SecondaryColor: client.ThemeSecondaryColor,
			},
		}

		err = cache.Store(ctx.Request.Context(), clientConfigCacheKey(clientId), config, clientConfigCacheTTL)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to cache client config")
		}

		ctx.JSON(http.StatusOK, clientConfigResponse{Success: true, Config: config})
	})
}
