package middleware

import (
	"crypto/subtle"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/plasmadinah/cms-backend/internal/httpx"
)

type csrfConfig struct {
	// mode is one of:
	//   token  - require X-PD-CSRF header matching the pd_csrf cookie (default)
	//   origin - only enforce the Origin allow-list
	//   off    - disable checks
	mode    string
	allowed map[string]struct{}
}

func loadCSRFConfig() csrfConfig {
	mode := strings.ToLower(strings.TrimSpace(os.Getenv("CSRF_MODE")))
	if mode == "" {
		mode = "token"
	}
	return csrfConfig{
		mode:    mode,
		allowed: allowedOriginSet(os.Getenv("ALLOWED_ORIGINS")),
	}
}

// CSRFRequired protects cookie-authenticated admin mutations.
func CSRFRequired() fiber.Handler {
	cfg := loadCSRFConfig()

	return func(c *fiber.Ctx) error {
		if cfg.mode == "off" {
			return c.Next()
		}

		switch c.Method() {
		case fiber.MethodGet, fiber.MethodHead, fiber.MethodOptions:
			return c.Next()
		}

		origin := strings.TrimSpace(c.Get(fiber.HeaderOrigin))
		if origin == "" {
			// Non-browser clients carry no Origin and no ambient cookies;
			// the double-submit check has nothing to defend there.
			return c.Next()
		}
		if !originPermitted(origin, cfg.allowed) {
			return httpx.Forbidden(c, "forbidden_origin", "Origin not allowed")
		}
		if cfg.mode == "origin" {
			return c.Next()
		}

		cookie := c.Cookies("pd_csrf")
		header := c.Get("X-PD-CSRF")
		if cookie == "" || header == "" {
			return httpx.Forbidden(c, "csrf_required", "Missing CSRF token")
		}
		if subtle.ConstantTimeCompare([]byte(cookie), []byte(header)) != 1 {
			return httpx.Forbidden(c, "csrf_invalid", "Invalid CSRF token")
		}
		return c.Next()
	}
}
