package handler

import (
	"Campus/internal/api/config"
	"Campus/internal/pkg/response"
	"Campus/internal/pkg/security"
	"Campus/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler 只校验会话，不负责签发
type AuthHandler struct {
	cfg config.SessionConfig
}

func NewAuthHandler(cfg config.SessionConfig) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

func (s *AuthHandler) Verify(c *gin.Context) {
	token, _ := c.Cookie(s.cfg.CookieName)
	claims, err := security.ValidateToken(s.cfg.Secret, token)
	if err != nil {
		response.Error(c, service.UnauthorizedError)
		return
	}
	response.Success(c, gin.H{"username": claims.Username})
}
