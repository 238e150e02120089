package http

import (
	"errors"
	"net/http"
	"strings"

	"catering/internal/core/domain/model/identity"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/generated/servers"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const sessionContextKey = "session"

var errMalformedAuthorization = errors.New("authorization header must use the Bearer scheme")

// Claims are the JWT claims the API accepts: the user id in "sub" and the
// role name in "role".
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Authenticator turns bearer tokens into sessions.
type Authenticator struct {
	secret []byte
	parser *jwt.Parser
}

func NewAuthenticator(secret string) *Authenticator {
	return &Authenticator{
		secret: []byte(secret),
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
	}
}

// Middleware stores the caller's session in the echo context. Requests
// without an Authorization header run anonymously; a header that does not
// carry a valid HS256 token is rejected with 401.
func (a *Authenticator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				ctx.Set(sessionContextKey, identity.Anonymous())
				return next(ctx)
			}

			session, err := a.Authenticate(header)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, servers.Error{
					Code:    http.StatusUnauthorized,
					Message: "Invalid or expired token",
				})
			}

			ctx.Set(sessionContextKey, session)
			return next(ctx)
		}
	}
}

// Authenticate parses an Authorization header value.
func (a *Authenticator) Authenticate(header string) (identity.Session, error) {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(raw) == "" {
		return identity.Session{}, errMalformedAuthorization
	}

	var claims Claims
	if _, err := a.parser.ParseWithClaims(strings.TrimSpace(raw), &claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}); err != nil {
		return identity.Session{}, err
	}

	userID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return identity.Session{}, err
	}
	role, err := identity.ParseRole(claims.Role)
	if err != nil {
		return identity.Session{}, err
	}
	return identity.NewSession(userID, role)
}

func sessionFrom(ctx echo.Context) identity.Session {
	if session, ok := ctx.Get(sessionContextKey).(identity.Session); ok {
		return session
	}
	return identity.Anonymous()
}
