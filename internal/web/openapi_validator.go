package web

import (
	"net/http"
	"os"

	"bitbucket.org/crgw/booking-hub/internal/web/middleware"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/gin-gonic/gin"
)

func noopValidator(*gin.Context) {}

// OpenapiValidator checks incoming requests against the published contract.
// Routes the contract does not describe pass through untouched, and a
// missing or unparsable document disables validation instead of taking the
// service down.
func OpenapiValidator() gin.HandlerFunc {
	location := os.Getenv("OPENAPI_LOCATION")
	if location == "" {
		location = "./api/openapi.json"
	}

	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromFile(location)
	if err != nil {
		return noopValidator
	}

	if err := doc.Validate(loader.Context); err != nil {
		return noopValidator
	}

	contractRouter, err := gorillamux.NewRouter(doc)
	if err != nil {
		return noopValidator
	}

	return validateAgainst(contractRouter)
}

func validateAgainst(contractRouter routers.Router) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		route, pathParams, err := contractRouter.FindRoute(ctx.Request)
		if err != nil {
			return
		}

		input := &openapi3filter.RequestValidationInput{
			Request:    ctx.Request,
			PathParams: pathParams,
			Route:      route,
		}

		if err := openapi3filter.ValidateRequest(ctx.Request.Context(), input); err != nil {
			middleware.HandleError(ctx, http.StatusBadRequest, "Request does not match the API contract", err)
			ctx.Abort()
		}
	}
}
