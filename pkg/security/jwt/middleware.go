package jwt

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/harizal/portfolio/pkg/auth"
)

// LocalSubject is the c.Locals key holding the authenticated subject id.
const LocalSubject = "adminId"

// Verifier checks a raw token.
type Verifier interface {
	Verify(token string) (auth.Subject, error)
}

// NewAuthMiddleware returns a Fiber middleware that validates Bearer tokens.
// Missing and expired tokens are 401, any other failure is 403.
func NewAuthMiddleware(v Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sub, err := v.Verify(bearerToken(c.Get(fiber.HeaderAuthorization)))
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrTokenMissing):
				return deny(c, http.StatusUnauthorized, "missing Authorization header")
			case errors.Is(err, auth.ErrTokenExpired):
				return deny(c, http.StatusUnauthorized, "token expired")
			default:
				return deny(c, http.StatusForbidden, "invalid token")
			}
		}
		c.Locals(LocalSubject, sub.ID)
		return c.Next()
	}
}

// bearerToken supports both "Bearer <token>" and a bare "<token>".
func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if scheme, rest, ok := strings.Cut(header, " "); ok && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(rest)
	}
	return header
}

func deny(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "message": message})
}
