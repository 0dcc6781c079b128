package handler

import (
	"Campus/internal/api/dto"
	"Campus/internal/service"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

// bindJSON 请求体解析失败统一转为字段校验错误
func bindJSON(c *gin.Context, obj any) error {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return nil
	}

	field := dto.FieldError{Field: "body", Reason: "invalid json object"}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		field = dto.FieldError{Field: typeErr.Field, Reason: "type " + typeErr.Type.String()}
	}
	return &service.ValidationError{Fields: []dto.FieldError{field}}
}

func parseID(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, service.ErrParamInvalid
	}
	return id, nil
}
