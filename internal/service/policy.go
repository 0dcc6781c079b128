package service

import (
	"Campus/internal/api/config"
	"Campus/internal/model"
	"fmt"
)

// CorruptionPolicy 删除时 images 损坏的处理方式
type CorruptionPolicy string

const (
	// PolicyAbort 中止删除并返回错误，记录保留
	PolicyAbort CorruptionPolicy = "abort"
	// PolicySkip 记录日志，跳过远端清理，继续删除本地记录
	PolicySkip CorruptionPolicy = "skip"
)

// ParsePolicy 解析配置值
func ParsePolicy(value string) (CorruptionPolicy, error) {
	switch CorruptionPolicy(value) {
	case PolicyAbort, PolicySkip:
		return CorruptionPolicy(value), nil
	case "":
		return PolicySkip, nil
	}
	return "", fmt.Errorf("unknown corruption policy %q", value)
}

// PolicyFor 取资源类型对应的策略，未单独配置时使用默认策略
func PolicyFor(cfg config.LifecycleConfig, kind model.Kind) (CorruptionPolicy, error) {
	if value, ok := cfg.CorruptionPolicy[string(kind)]; ok {
		return ParsePolicy(value)
	}
	return ParsePolicy(cfg.DefaultPolicy)
}
