package middleware

import (
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/plasmadinah/cms-backend/internal/httpx"
)

// allowedOriginSet parses ALLOWED_ORIGINS (comma separated) into a lookup set.
// Entries are matched case-insensitively and without trailing slashes.
func allowedOriginSet(raw string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimRight(strings.TrimSpace(entry), "/")
		if entry != "" {
			set[strings.ToLower(entry)] = struct{}{}
		}
	}
	return set
}

// originPermitted reports whether an Origin header value is on the allow-list.
// An empty allow-list permits everything.
func originPermitted(origin string, allowed map[string]struct{}) bool {
	if len(allowed) == 0 {
		return true
	}
	origin = strings.ToLower(strings.TrimRight(strings.TrimSpace(origin), "/"))
	_, ok := allowed[origin]
	return ok
}

// OriginAllowed rejects browser requests whose Origin header is not on the
// configured allow-list. Requests without an Origin header pass through.
func OriginAllowed() fiber.Handler {
	allowed := allowedOriginSet(os.Getenv("ALLOWED_ORIGINS"))
	return func(c *fiber.Ctx) error {
		origin := strings.TrimSpace(c.Get(fiber.HeaderOrigin))
		if origin == "" {
			return c.Next()
		}
		if !originPermitted(origin, allowed) {
			return httpx.Forbidden(c, "forbidden_origin", "Origin not allowed")
		}
		return c.Next()
	}
}
