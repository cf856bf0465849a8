// Package session is the single source of truth for who is logged in and
// what they can do. The upstream bearer token and the serialized principal
// travel in one signed HTTP-only cookie; a cookie that fails to parse or
// verify is cleared and the request proceeds logged-out.
package session

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"rh-portal/app/models"
)

// CookieName holds the signed session under a fixed key.
const CookieName = "rh_session"

const (
	localPrincipal = "principal"
	localToken     = "api_token"
)

// Claims wrap the upstream token and principal for the session cookie.
type Claims struct {
	Token     string            `json:"token"`
	Principal *models.Principal `json:"principal"`
	jwt.RegisteredClaims
}

// Store signs and restores session cookies. One instance is built at startup
// and injected into every route package.
type Store struct {
	secret []byte
	ttl    time.Duration
}

func NewStore(secret string, ttl time.Duration) *Store {
	return &Store{secret: []byte(secret), ttl: ttl}
}

// Login persists the token and principal and makes them visible to the rest
// of the current request. The caller navigates to the landing view.
func (s *Store) Login(c *fiber.Ctx, token string, principal *models.Principal) error {
	claims := Claims{
		Token:     token,
		Principal: principal,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "rh-portal",
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    signed,
		Expires:  time.Now().Add(s.ttl),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	c.Locals(localPrincipal, principal)
	c.Locals(localToken, token)
	return nil
}

// Logout clears all persisted auth state. Callable from any handler, e.g.
// when the upstream API rejects the token.
func (s *Store) Logout(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	c.Locals(localPrincipal, nil)
	c.Locals(localToken, nil)
}

// Current restores the session from the cookie. Corrupt or expired cookies
// resolve to logged-out, never to an error.
func (s *Store) Current(c *fiber.Ctx) (*models.Principal, string) {
	raw := c.Cookies(CookieName)
	if raw == "" {
		return nil, ""
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil || !token.Valid || claims.Principal == nil {
		log.Printf("session: discarding unreadable cookie: %v", err)
		s.Logout(c)
		return nil, ""
	}
	return claims.Principal, claims.Token
}

// Middleware resolves the principal before any gated handler runs, so
// permission checks never see an indeterminate session. Unauthenticated API
// requests get 401 JSON; page requests are redirected to login.
func (s *Store) Middleware(c *fiber.Ctx) error {
	principal, token := s.Current(c)
	if principal == nil {
		if isAPIRequest(c) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Não autenticado",
				"code":  "unauthorized",
			})
		}
		return c.Redirect("/auth/login")
	}
	c.Locals(localPrincipal, principal)
	c.Locals(localToken, token)
	return c.Next()
}

// RequireAdmin redirects every non-admin away from administrative views. It
// must run after Middleware.
func (s *Store) RequireAdmin(c *fiber.Ctx) error {
	if !Principal(c).IsAdmin() {
		if isAPIRequest(c) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Acesso restrito a administradores"})
		}
		return c.Redirect("/dashboard")
	}
	return c.Next()
}

// Principal returns the principal resolved for this request, nil when
// logged out.
func Principal(c *fiber.Ctx) *models.Principal {
	p, _ := c.Locals(localPrincipal).(*models.Principal)
	return p
}

// Token returns the upstream bearer token for this request, "" when logged
// out.
func Token(c *fiber.Ctx) string {
	t, _ := c.Locals(localToken).(string)
	return t
}

func isAPIRequest(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Path(), "/api/")
}
