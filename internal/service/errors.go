package service

import (
	"Campus/internal/api/dto"
	"Campus/internal/model"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrParamInvalid   = errors.New("参数错误")
	ErrNotFound       = errors.New("资源不存在")
	ErrFileNotSupport = errors.New("不支持的文件类型")
	UnauthorizedError = errors.New("未登录或会话已过期")
	UnExpectedError   = errors.New("系统异常，请稍后重试")
)

// ValidationError 请求体校验失败，包含全部失败字段
type ValidationError struct {
	Fields []dto.FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Reason)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// PersistenceError 存储层失败，不重试
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// ExternalServiceError 图床调用失败，只记录日志，不返回给调用方
type ExternalServiceError struct {
	Op      string
	FileIDs []string
	Err     error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("asset store %s %v: %v", e.Op, e.FileIDs, e.Err)
}

func (e *ExternalServiceError) Unwrap() error { return e.Err }

// DataCorruptionError 已存储的 images 无法通过自身结构校验
type DataCorruptionError struct {
	Kind model.Kind
	ID   uint64
	Err  error
}

func (e *DataCorruptionError) Error() string {
	return fmt.Sprintf("%s %d: %v", e.Kind, e.ID, e.Err)
}

func (e *DataCorruptionError) Unwrap() error { return e.Err }

// ErrorMap 业务错误 -> HTTP 状态码
var ErrorMap = map[error]int{
	ErrParamInvalid:   400,
	ErrNotFound:       404,
	ErrFileNotSupport: 400,
	UnauthorizedError: 401,
	UnExpectedError:   500,
}

func persistence(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}
