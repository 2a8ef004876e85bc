package web

import (
	"net/http"
	"os"
	"time"

	"bitbucket.org/crgw/booking-hub/internal/api"
	"bitbucket.org/crgw/booking-hub/internal/tools/caching"
	"bitbucket.org/crgw/booking-hub/internal/tools/redisfactory"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func SetupRouter(log *zerolog.Logger, store api.Storage, redisFactory *redisfactory.Factory) *gin.Engine {
	var (
		startTime       = time.Now()
		openApiLocation = os.Getenv("OPENAPI_LOCATION")
	)

	if openApiLocation == "" {
		openApiLocation = "./api/openapi.json"
	}

	openApiContent, _ := os.ReadFile(openApiLocation)

	router := gin.New()

	if os.Getenv("ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router.
		Use(StartRequest).
		Use(CorrelationId).
		Use(RegisterLogger(log)).
		Use(TraceLog).
		Use(PanicRecovery).
		Use(cors.Default()).
		Use(OpenapiValidator())

	router.GET("/status", func(c *gin.Context) {
		response := struct {
			Uptime float64 `json:"uptime"`
		}{
			Uptime: time.Since(startTime).Seconds(),
		}

		c.JSON(http.StatusOK, response)
	})

	router.GET("/openapi.json", func(c *gin.Context) {
		c.Header("Content-Type", "application/json")
		c.String(http.StatusOK, string(openApiContent))
	})

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Booking Hub API",
			"endpoints": []string{
				"GET /health",
				"GET /api/vehicles/search",
				"GET /api/vehicles/:id",
				"POST /api/bookings",
				"GET /api/bookings/:id",
				"GET /api/clients/:clientId/config",
				"GET /api/depots",
				"GET /api/depots/city/:city",
				"POST /api/quotes",
				"GET /api/quotes",
				"GET /api/quotes/client/:clientId",
			},
		})
	})

	pprof.Register(router)

	api.RegisterRoutes(
		router,
		store,
		caching.NewRedisCache(redisFactory.ConfigCacheClient()),
	)

	return router
}
