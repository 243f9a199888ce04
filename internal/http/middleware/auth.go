package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainagg "github.com/yungbote/talentswap-backend/internal/domain/aggregates"
	"github.com/yungbote/talentswap-backend/internal/http/response"
	"github.com/yungbote/talentswap-backend/internal/platform/ctxutil"
	"github.com/yungbote/talentswap-backend/internal/platform/logger"
	"github.com/yungbote/talentswap-backend/internal/services"
)

type AuthMiddleware struct {
	log         *logger.Logger
	authService services.AuthService
}

func NewAuthMiddleware(log *logger.Logger, authService services.AuthService) *AuthMiddleware {
	middlewareLogger := log.With("Middleware", "AuthMiddleware")
	return &AuthMiddleware{log: middlewareLogger, authService: authService}
}

func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			response.Error(c, domainagg.NewError(domainagg.CodeUnauthorized, "auth.require", "missing token", nil))
			return
		}
		ctx, err := am.authService.SetContextFromToken(c.Request.Context(), tokenString)
		if err != nil {
			am.log.Debug("token rejected", "error", err)
			response.Error(c, err)
			return
		}
		c.Request = c.Request.WithContext(ctx)
		if _, ok := ctxutil.MemberID(ctx); !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, response.APIError{Message: "forbidden", Code: "FORBIDDEN"})
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}
