package config

import "time"

// Config 配置主体
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	DB        DBConfig        `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	MinIO     MinIOConfig     `mapstructure:"minio"`
	ImageKit  ImageKitConfig  `mapstructure:"imagekit"`
	Asset     AssetConfig     `mapstructure:"asset"`
	Lifecycle LifecycleConfig `mapstructure:"lifecycle"`
	Session   SessionConfig   `mapstructure:"session"`
	Log       LogConfig       `mapstructure:"log"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
	// AllowedOrigins 允许跨域访问的前端来源，为空时拒绝所有跨域请求
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
}

// RedisConfig 地址为空时不启用孤儿文件登记
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// MinIOConfig MinIO配置
type MinIOConfig struct {
	InternalEndpoint string `mapstructure:"internal_endpoint"`
	ExternalEndpoint string `mapstructure:"external_endpoint"`
	AccessKey        string `mapstructure:"access_key"`
	SecretKey        string `mapstructure:"secret_key"`
	Bucket           string `mapstructure:"bucket"`
	InternalUseSSL   bool   `mapstructure:"internal_use_ssl"`
}

// ImageKitConfig 图床 CDN 配置
type ImageKitConfig struct {
	APIEndpoint    string `mapstructure:"api_endpoint"`
	UploadEndpoint string `mapstructure:"upload_endpoint"`
	PrivateKey     string `mapstructure:"private_key"`
	Folder         string `mapstructure:"folder"`
}

// AssetConfig 外部文件存储
type AssetConfig struct {
	Provider       string        `mapstructure:"provider"`
	DeleteTimeout  time.Duration `mapstructure:"delete_timeout"`
	ReconcileCron  string        `mapstructure:"reconcile_cron"`
	ReconcileBatch int64         `mapstructure:"reconcile_batch"`
}

// LifecycleConfig 资源生命周期策略
type LifecycleConfig struct {
	// CorruptionPolicy 资源类型 -> abort|skip，未配置的类型使用 DefaultPolicy
	CorruptionPolicy map[string]string `mapstructure:"corruption_policy"`
	DefaultPolicy    string            `mapstructure:"default_policy"`
}

// SessionConfig 会话 Cookie 校验
type SessionConfig struct {
	CookieName string `mapstructure:"cookie_name"`
	Secret     string `mapstructure:"secret"`
	VerifyURL  string `mapstructure:"verify_url"`
	LoginPath  string `mapstructure:"login_path"`
}

// LogConfig 日志
type LogConfig struct {
	Level string `mapstructure:"level"`
}
