package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config 服务配置，全部来自环境变量
type Config struct {
	Port string `env:"PORT" envDefault:"8000"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// MySQLDSN 为空时不记录历史对局
	MySQLDSN string `env:"MYSQL_DSN"`

	JWTAccessSecret  string        `env:"JWT_ACCESS_SECRET" envDefault:"access-secret"`
	JWTRefreshSecret string        `env:"JWT_REFRESH_SECRET" envDefault:"refresh-secret"`
	AccessTokenTTL   time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"15m"`
	RefreshTokenTTL  time.Duration `env:"REFRESH_TOKEN_TTL" envDefault:"168h"`

	AIDelay    time.Duration `env:"AI_DELAY" envDefault:"3s"`
	LockTTL    time.Duration `env:"LOCK_TTL" envDefault:"5s"`
	LogLevel   string        `env:"LOG_LEVEL" envDefault:"info"`
	GameLogDir string        `env:"GAME_LOG_DIR" envDefault:"./game_logs"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load 读取并校验配置
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.LockTTL <= 0 {
		return Config{}, fmt.Errorf("LOCK_TTL 必须大于 0")
	}
	if cfg.AIDelay < 0 {
		return Config{}, fmt.Errorf("AI_DELAY 不能为负")
	}
	return cfg, nil
}
