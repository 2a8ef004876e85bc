package web

import (
	"time"

	"github.com/gin-gonic/gin"
)

// CurrentTimeFunc is the clock used to stamp incoming requests. Tests that
// assert on durations swap it out.
var CurrentTimeFunc = time.Now

// StartRequest records when the request entered the chain; TraceLog reads
// the stamp back once the handlers are done.
func StartRequest(c *gin.Context) {
	c.Set("requestStartTime", CurrentTimeFunc())
}
