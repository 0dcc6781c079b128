package dto

// Response 统一返回结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// FieldError 单个字段的校验失败原因
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// CreatedDTO 创建成功返回的 id
type CreatedDTO struct {
	ID uint64 `json:"id"`
}

// IDBodyDTO 旧版删除接口在 body 中携带 id
type IDBodyDTO struct {
	ID *uint64 `json:"id"`
}
