package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/pkg/apperr"
	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/pkg/resp"
	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/utils"
)

// RequireAuth verifies the Bearer token and, when roles are given,
// enforces them. The role check runs strictly after token verification:
// a bad token is always 401, a good token with the wrong role is 403.
func RequireAuth(secret string, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			resp.Error(c, apperr.ErrUnauthorized)
			return
		}
		scheme, token, found := strings.Cut(header, " ")
		if !found || scheme != "Bearer" || token == "" {
			resp.Error(c, apperr.ErrUnauthorized)
			return
		}

		claims, err := utils.ParseToken(token, secret)
		if err != nil {
			resp.Error(c, err) // TOKEN_EXPIRED or TOKEN_INVALID
			return
		}

		c.Set(utils.CtxUserID, claims.UserID)
		c.Set(utils.CtxRole, claims.Role)

		if len(roles) > 0 {
			allowed := false
			for _, role := range roles {
				if claims.Role == role {
					allowed = true
					break
				}
			}
			if !allowed {
				resp.Error(c, apperr.ErrForbidden)
				return
			}
		}

		c.Next()
	}
}
