package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v3"
)

// Extractor pulls a credential out of a request. An empty string means the
// credential is absent.
type Extractor func(c fiber.Ctx) string

// HeaderOrQuery extracts the credential from the named header, falling back to
// the named query parameter.
func HeaderOrQuery(header, query string) Extractor {
	return func(c fiber.Ctx) string {
		if v := c.Get(header); v != "" {
			return v
		}
		return c.Query(query)
	}
}

// Bearer extracts a bearer-scheme credential from the Authorization header.
// A header that is present but not bearer-scheme counts as absent.
func Bearer() Extractor {
	return func(c fiber.Ctx) string {
		h := c.Get("Authorization")
		if h == "" {
			return ""
		}
		parts := strings.SplitN(h, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return ""
		}
		return strings.TrimSpace(parts[1])
	}
}

// SharedSecret gates a route on a static secret: 401 when the credential is
// absent, 403 when it does not match, pass-through otherwise. The API-key and
// admin-bearer gates are both instances of this with different extractors.
func SharedSecret(extract Extractor, secret string) fiber.Handler {
	return func(c fiber.Ctx) error {
		cred := extract(c)
		if cred == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "missing credentials",
			})
		}
		if subtle.ConstantTimeCompare([]byte(cred), []byte(secret)) != 1 {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"message": "invalid credentials",
			})
		}
		return c.Next()
	}
}
