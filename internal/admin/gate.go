package admin

import (
	"Campus/internal/api/config"
	log "log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
)

// Gate 将会话 Cookie 转发给校验接口，未通过时跳转登录页
type Gate struct {
	client    *resty.Client
	verifyURL string
	cookie    string
	loginPath string
}

func NewGate(cfg config.SessionConfig) *Gate {
	return &Gate{
		client:    resty.New().SetTimeout(3 * time.Second),
		verifyURL: cfg.VerifyURL,
		cookie:    cfg.CookieName,
		loginPath: cfg.LoginPath,
	}
}

func (s *Gate) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(s.cookie)
		if err != nil || token == "" {
			s.redirect(c)
			return
		}

		resp, err := s.client.R().
			SetContext(c.Request.Context()).
			SetCookie(&http.Cookie{Name: s.cookie, Value: token}).
			Get(s.verifyURL)
		if err != nil {
			log.ErrorContext(c.Request.Context(), "session verify request failed", "url", s.verifyURL, "err", err)
			s.redirect(c)
			return
		}
		if resp.StatusCode() != http.StatusOK {
			s.redirect(c)
			return
		}
		c.Next()
	}
}

func (s *Gate) redirect(c *gin.Context) {
	c.Redirect(http.StatusFound, s.loginPath)
	c.Abort()
}
