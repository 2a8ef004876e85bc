package middleware

import (
	"net/http"
	"reflect"

	webMiddleware "bitbucket.org/crgw/booking-hub/internal/web/middleware"
	"github.com/gin-gonic/gin"
)

const (
	ParamsKey string = "params"
)

func PrepareParams(val any) gin.HandlerFunc {
	value := reflect.ValueOf(val)
	if value.Kind() == reflect.Ptr {
		panic(`Bind struct can not be a pointer.`)
	}

	typ := value.Type()

	return func(ctx *gin.Context) {
		params := reflect.New(typ).Interface()

		// ShouldBind must see the concrete *T: wrapping it in another
		// pointer hides the struct from the form mapper, which silently
		// binds nothing.
		err := ctx.ShouldBind(params)
		if err != nil {
			webMiddleware.HandleError(ctx, http.StatusBadRequest, "Failed to bind request params", err)
			ctx.Abort()
			return
		}

		ctx.Set(ParamsKey, params)
	}
}
