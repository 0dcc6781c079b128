package response

import (
	"Campus/internal/api/dto"
	"Campus/internal/service"
	"errors"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	Ok                  = 200
	Created             = 201
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

// Success 成功返回封装
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, dto.Response{
		Code:    Ok,
		Message: "success",
		Data:    data,
	})
}

// CreatedWith 创建成功，返回 201
func CreatedWith(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, dto.Response{
		Code:    Created,
		Message: "created",
		Data:    data,
	})
}

// Fail 失败返回封装，HTTP 状态码与 code 一致
func Fail(c *gin.Context, code int, message string, data interface{}) {
	c.AbortWithStatusJSON(code, dto.Response{
		Code:    code,
		Message: message,
		Data:    data,
	})
}

// Error 按错误类型映射状态码，未知错误不向外暴露细节
func Error(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		Fail(c, BadRequest, service.ErrParamInvalid.Error(), validationErr.Fields)
		return
	}

	for target, code := range service.ErrorMap {
		if errors.Is(err, target) {
			if code >= InternalServerError {
				log.ErrorContext(ctx, "request failed", "path", c.FullPath(), "err", err)
			}
			Fail(c, code, target.Error(), nil)
			return
		}
	}

	var corruptionErr *service.DataCorruptionError
	var persistenceErr *service.PersistenceError
	switch {
	case errors.As(err, &corruptionErr):
		log.ErrorContext(ctx, "stored data corrupted", "path", c.FullPath(), "kind", corruptionErr.Kind, "id", corruptionErr.ID, "err", err)
	case errors.As(err, &persistenceErr):
		log.ErrorContext(ctx, "persistence failed", "path", c.FullPath(), "op", persistenceErr.Op, "err", err)
	default:
		log.ErrorContext(ctx, "unexpected error", "path", c.FullPath(), "err", err)
	}
	Fail(c, InternalServerError, service.UnExpectedError.Error(), nil)
}
