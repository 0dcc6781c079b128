package middleware

import (
	"Campus/internal/api/config"
	"Campus/internal/pkg/consts"
	"Campus/internal/pkg/response"
	"Campus/internal/pkg/security"
	log "log/slog"

	"github.com/gin-gonic/gin"
)

// SessionMiddleware 校验会话 Cookie，并将管理员用户名注入 Context
func SessionMiddleware(cfg config.SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cfg.CookieName)
		if err != nil || token == "" {
			response.Fail(c, response.Unauthorized, "会话 Cookie 缺失", nil)
			return
		}

		claims, err := security.ValidateToken(cfg.Secret, token)
		if err != nil {
			log.WarnContext(c.Request.Context(), "session rejected", "path", c.FullPath(), "err", err)
			response.Fail(c, response.Unauthorized, "会话无效或已过期", nil)
			return
		}

		c.Set(consts.SessionUserKey, claims.Username)
		c.Next()
	}
}
