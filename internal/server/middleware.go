package server

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// accessLog tags every request with an X-Request-ID and logs method, path,
// status, and latency after the handler chain runs.
func accessLog(logger *log.Logger) fiber.Handler {
	if logger == nil {
		logger = log.Default()
	}
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := c.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
			c.Set("X-Request-ID", rid)
		}

		err := c.Next()

		logger.Printf("http rid=%s method=%s path=%s status=%d latency=%s",
			rid, c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
		return err
	}
}
