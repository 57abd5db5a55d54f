package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// The site sleeps between 23:00 and 07:00 local time.
var (
	curfewStart = 23 * time.Hour
	curfewEnd   = 7 * time.Hour
)

type CurfewConfig struct {
	Enabled  bool
	Location *time.Location

	// Static/media assets stay reachable so the unavailable page renders.
	ExemptPrefixes []string

	// Now is overridable in tests; defaults to time.Now.
	Now func() time.Time
}

// Curfew short-circuits every request inside the nightly window before any
// other middleware runs. Gated requests never reach auth or the database.
func Curfew(cfg CurfewConfig) fiber.Handler {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}

	return func(ctx *fiber.Ctx) error {
		if !cfg.Enabled {
			return ctx.Next()
		}

		path := ctx.Path()
		for _, prefix := range cfg.ExemptPrefixes {
			if strings.HasPrefix(path, prefix) {
				return ctx.Next()
			}
		}

		t := now().In(loc)
		sinceMidnight := time.Duration(t.Hour())*time.Hour +
			time.Duration(t.Minute())*time.Minute +
			time.Duration(t.Second())*time.Second

		if sinceMidnight >= curfewStart || sinceMidnight < curfewEnd {
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "service unavailable between 23:00 and 07:00",
			})
		}

		return ctx.Next()
	}
}
