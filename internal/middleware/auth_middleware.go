package middleware

import (
	"context"
	"strings"

	"go-hrm/internal/domain"
	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/shared/contextutil"
	"go-hrm/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookie = "access_token"

	identityKey = "identity"
)

// TokenResolver turns a bearer token into the identity it was issued for.
type TokenResolver interface {
	ResolveToken(ctx context.Context, token string) (domain.Identity, error)
}

// ExtractToken reads the bearer token from the Authorization header and
// falls back to the access_token cookie used by web clients.
func ExtractToken(c *gin.Context) string {
	tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	if found && tokenString != "" {
		return strings.TrimSpace(tokenString)
	}

	if cookie, err := c.Cookie(AccessTokenCookie); err == nil {
		return cookie
	}
	return ""
}

// AuthMiddleware resolves the caller's token. Any limiters given are keyed by
// the resolved account id.
func AuthMiddleware(resolver TokenResolver, limiters ...*KeyedRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ExtractToken(c)
		if tokenString == "" {
			e := apperror.ErrUnauthorized
			response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
			c.Abort()
			return
		}

		identity, err := resolver.ResolveToken(c.Request.Context(), tokenString)
		if err != nil {
			httpErr := apperror.ToHTTP(err)
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
			c.Abort()
			return
		}

		for _, l := range limiters {
			if !l.GetLimiter(identity.AccountID.String()).Allow() {
				tooManyRequests(c)
				return
			}
		}

		SetIdentity(c, identity)
		c.Request = c.Request.WithContext(
			contextutil.WithAccountID(c.Request.Context(), identity.AccountID.String()),
		)

		c.Next()
	}
}

// SetIdentity stores the authenticated identity on the gin context.
func SetIdentity(c *gin.Context, identity domain.Identity) {
	c.Set(identityKey, identity)
	c.Set("account_id", identity.AccountID.String())
	c.Set("role", identity.Role)
}

func CurrentIdentity(c *gin.Context) (domain.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return domain.Identity{}, false
	}
	identity, ok := v.(domain.Identity)
	return identity, ok
}
