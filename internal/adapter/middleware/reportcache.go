package middleware

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ---- Data types ----
type cacheEntry struct {
	Code     int       `json:"code"`
	Body     []byte    `json:"body"`
	CachedAt time.Time `json:"cached_at"`
}

type respRecorder struct {
	w    http.ResponseWriter
	buf  *bytes.Buffer
	code int
}

func (r *respRecorder) Header() http.Header { return r.w.Header() }
func (r *respRecorder) Write(b []byte) (int, error) {
	if r.buf != nil {
		r.buf.Write(b)
	}
	return r.w.Write(b)
}
func (r *respRecorder) WriteHeader(statusCode int) { r.code = statusCode; r.w.WriteHeader(statusCode) }

// ReportCacheMiddleware serves recent report payloads from Redis.
// Key = route + query string, so every filter combination caches
// independently. Only 200 responses are stored; a degraded section is
// still a 200 and may be cached, which matches the TTL being short.
// Redis being down never fails the request, the report is just rebuilt.
func ReportCacheMiddleware(rdb *redis.Client, ttl time.Duration, log *logrus.Logger) echo.MiddlewareFunc {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.Method != http.MethodGet {
				return next(c)
			}

			key := buildCacheKey(req.URL.Path, req.URL.RawQuery)
			ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
			defer cancel()

			if entry, err := loadEntry(ctx, rdb, key); err == nil && entry.Code != 0 {
				c.Response().Header().Set("X-Cache", "HIT")
				return c.Blob(entry.Code, echo.MIMEApplicationJSON, entry.Body)
			} else if err != nil && err != redis.Nil {
				log.WithError(err).WithField("key", key).Warn("report cache read failed")
			}

			rec := &respRecorder{w: c.Response().Writer, buf: &bytes.Buffer{}, code: http.StatusOK}
			c.Response().Writer = rec
			c.Response().Header().Set("X-Cache", "MISS")
			if err := next(c); err != nil {
				c.Error(err)
			}

			if rec.code == http.StatusOK {
				entry := cacheEntry{Code: rec.code, Body: rec.buf.Bytes(), CachedAt: nowUTC()}
				if err := saveEntry(context.Background(), rdb, key, entry, ttl); err != nil {
					log.WithError(err).WithField("key", key).Warn("report cache write failed")
				}
			}
			return nil
		}
	}
}
