package api

import (
	"net/http"

	apiMiddleware "bitbucket.org/crgw/booking-hub/internal/api/middleware"
	"bitbucket.org/crgw/booking-hub/internal/schema"
	"bitbucket.org/crgw/booking-hub/internal/tools/converting"
	"bitbucket.org/crgw/booking-hub/internal/web/middleware"
	"github.com/gin-gonic/gin"
)

type quoteResponse struct {
	Success bool         `json:"success"`
	Quote   schema.Quote `json:"quote"`
}

type quotesResponse struct {
	Success bool                     `json:"success"`
	Count   int                      `json:"count"`
	Quotes  []schema.QuoteWithClient `json:"quotes"`
}

type clientQuotesResponse struct {
	Success bool           `json:"success"`
	Count   int            `json:"count"`
	Quotes  []schema.Quote `json:"quotes"`
}

func registerQuoteRoutes(group *gin.RouterGroup, store Storage) {
	quotes := group.Group("/quotes")

	quotes.POST("",
		apiMiddleware.PrepareParams(schema.QuoteRequestParams{}),
		func(ctx *gin.Context) {
			params := ctx.MustGet(apiMiddleware.ParamsKey).(*schema.QuoteRequestParams)

			quote, err := store.CreateQuote(ctx.Request.Context(), schema.Quote{
				ClientId:        params.ClientId,
				PickupLocation:  converting.UnwrapOr(params.PickupLocation, "Not specified"),
				DropoffLocation: converting.UnwrapOr(params.DropoffLocation, "Not specified"),
				PickupDate:      params.PickupDate,
				DropoffDate:     params.DropoffDate,
				NumberOfPeople:  params.NumberOfPeople,
			})
			if err != nil {
				middleware.HandleError(ctx, http.StatusInternalServerError, "Failed to track quote", err)
				return
			}

			ctx.JSON(http.StatusCreated, quoteResponse{Success: true, Quote: quote})
		},
	)

	quotes.GET("", func(ctx *gin.Context) {
		all, err := store.ListQuotes(ctx.Request.Context())
		if err != nil {
			middleware.HandleError(ctx, http.StatusInternalServerError, "Failed to get quotes", err)
			return
		}

		ctx.JSON(http.StatusOK, quotesResponse{Success: true, Count: len(all), Quotes: all})
	})

	quotes.GET("/client/:clientId", func(ctx *gin.Context) {
		clientId := ctx.Params.ByName("clientId")

		forClient, err := store.ListQuotesByClient(ctx.Request.Context(), clientId)
		if err != nil {
			middleware.HandleError(ctx, http.StatusInternalServerError, "Failed to get client quotes", err)
			return
		}

		ctx.JSON(http.StatusOK, clientQuotesResponse{Success: true, Count: len(forClient), Quotes: forClient})
	})
}
