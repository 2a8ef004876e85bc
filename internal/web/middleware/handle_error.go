package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// HandleError writes the failure envelope and logs the underlying error.
// Middlewares that want to stop the chain call ctx.Abort() themselves.
func HandleError(ctx *gin.Context, code int, message string, err error) {
	if value, ok := ctx.Get("logger"); ok {
		if logger, ok := value.(*zerolog.Logger); ok {
			event := logger.Error()
			if code < 500 {
				event = logger.Warn()
			}

			event.
				Err(err).
				Int("code", code).
				Msg(message)
		}
	}

	ctx.JSON(code, errorResponse{Success: false, Error: message})
}
