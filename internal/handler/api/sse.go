package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const sseHeartbeat = 25 * time.Second

// streamEvents writes server-sent events until the client disconnects or
// next fails. An idle stream gets a comment line every sseHeartbeat so
// proxies keep the connection open.
func streamEvents[T any](c *gin.Context, next func(ctx context.Context) (T, error), name func(T) string) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.Writer.WriteHeaderNow()
	c.Writer.Flush()

	ctx := c.Request.Context()
	for {
		waitCtx, cancel := context.WithTimeout(ctx, sseHeartbeat)
		ev, err := next(waitCtx)
		timedOut := waitCtx.Err() == context.DeadlineExceeded
		cancel()

		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if timedOut {
				if _, werr := c.Writer.WriteString(": ping\n\n"); werr != nil {
					return
				}
				c.Writer.Flush()
				continue
			}
			slog.DebugContext(ctx, "event stream ended", "path", c.Request.URL.Path, "error", err.Error())
			return
		}

		c.SSEvent(name(ev), ev)
		c.Writer.Flush()
	}
}
