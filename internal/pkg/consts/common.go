package consts

const (
	MimePrefixImage = "image/"
)

const (
	// SessionUserKey gin.Context 中会话用户名
	SessionUserKey = "username"
)

const (
	// TraceIDHeader 请求与响应中携带链路 ID 的头
	TraceIDHeader = "X-Trace-ID"
	// MaxTraceIDLen 外部传入的链路 ID 超过该长度时重新生成
	MaxTraceIDLen = 64
)
