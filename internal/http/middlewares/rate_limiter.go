package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/rueidis"

	"flowdesk.com/flowdesk/internal/logging"
)

// RateLimiter is a fixed-window per-client limiter backed by Redis, so
// the count survives restarts and is shared across replicas. If Redis
// is unreachable the request is let through.
func RateLimiter(client rueidis.Client, limit int, window time.Duration) echo.MiddlewareFunc {
	windowSecs := int64(window.Seconds())

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := fmt.Sprintf(
				"ratelimit:%s:%d",
				c.RealIP(),
				time.Now().Unix()/windowSecs,
			)

			count, err := client.Do(
				ctx,
				client.B().Incr().Key(key).Build(),
			).AsInt64()
			if err != nil {
				logging.Logger.Warnf("rate limiter unavailable: %v", err)
				return next(c)
			}

			if count == 1 {
				if err := client.Do(
					ctx,
					client.B().Expire().Key(key).Seconds(windowSecs).Build(),
				).Error(); err != nil {
					logging.Logger.Warnf("rate limiter expire failed: %v", err)
				}
			}

			if count > int64(limit) {
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}

			return next(c)
		}
	}
}
