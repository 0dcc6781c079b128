package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "CAMPUS"

// LoadConfig 从 path 目录加载 config.yaml，环境变量 CAMPUS_* 覆盖同名配置
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Session.Secret == "" {
		return nil, errors.New("session.secret is required")
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("database.max_idle", 10)
	v.SetDefault("database.max_open", 50)
	v.SetDefault("database.max_lifetime", 30)
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("asset.provider", "minio")
	v.SetDefault("asset.delete_timeout", "5s")
	v.SetDefault("asset.reconcile_cron", "@every 10m")
	v.SetDefault("asset.reconcile_batch", 100)
	v.SetDefault("imagekit.api_endpoint", "https://api.imagekit.io")
	v.SetDefault("imagekit.upload_endpoint", "https://upload.imagekit.io")
	v.SetDefault("lifecycle.default_policy", "skip")
	v.SetDefault("session.cookie_name", "session")
	v.SetDefault("session.login_path", "/admin/login")
	v.SetDefault("log.level", "info")

	// 只有注册过的 key 才会被 AutomaticEnv 覆盖
	for _, key := range []string{
		"database.dsn", "redis.addr", "redis.password", "redis.db",
		"minio.internal_endpoint", "minio.external_endpoint", "minio.access_key", "minio.secret_key",
		"minio.bucket", "minio.internal_use_ssl", "imagekit.private_key", "imagekit.folder",
		"session.secret", "session.verify_url", "server.allowed_origins",
	} {
		_ = v.BindEnv(key)
	}
}
