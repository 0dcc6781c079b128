package util

import (
	"Campus/internal/api/dto"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// 错误中使用 json 字段名
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})

	_ = validate.RegisterValidation("flexdate", func(fl validator.FieldLevel) bool {
		_, err := dto.ParseFlexDate(fl.Field().String())
		return err == nil
	})
}

// ValidateDTO 校验结构体，返回全部失败字段；校验通过返回 nil
func ValidateDTO(v any) []dto.FieldError {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return []dto.FieldError{{Field: "body", Reason: err.Error()}}
	}

	fields := make([]dto.FieldError, 0, len(vErrs))
	for _, e := range vErrs {
		fields = append(fields, dto.FieldError{
			Field:  fieldPath(e.Namespace()),
			Reason: reason(e),
		})
	}
	return fields
}

// fieldPath 去掉根结构体名，BlogCreateDTO.images[0].fileId -> images[0].fileId
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func reason(e validator.FieldError) string {
	if e.Param() == "" {
		return e.Tag()
	}
	return e.Tag() + "=" + e.Param()
}
