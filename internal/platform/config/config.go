// Package config は環境変数ベースのアプリケーション設定を提供します。
// 設定は.envファイル（存在する場合）とプロセス環境変数から読み込まれます。
package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config はサーバー全体の設定を保持します。
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Redis   RedisConfig
	Admin   AdminConfig
	Session SessionConfig
}

// ServerConfig はHTTPサーバーの設定です。
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
}

// DBConfig はデータベース接続の設定です。
// Driver が "postgres" の場合は Host/Port/User/Password/Name を使用し、
// それ以外は Path のSQLiteファイルを開きます。
type DBConfig struct {
	Driver   string `envconfig:"DB_DRIVER" default:"sqlite"`
	Path     string `envconfig:"DB_PATH" default:"gym.db"`
	Host     string `envconfig:"DB_HOST"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	Name     string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
}

// RedisConfig はRedis接続の設定です。Hostが空の場合、Redisは使用されません。
type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
}

// AdminConfig は管理者アカウントの設定です。
// PasswordHash(bcrypt)が設定されている場合はそちらが優先されます。
type AdminConfig struct {
	ID           string `envconfig:"ADMIN_ID" required:"true"`
	Password     string `envconfig:"ADMIN_PASSWORD"`
	PasswordHash string `envconfig:"ADMIN_PASSWORD_HASH"`
}

// SessionConfig は管理者セッションの設定です。
type SessionConfig struct {
	Secret string        `envconfig:"SESSION_SECRET" required:"true"`
	TTL    time.Duration `envconfig:"SESSION_TTL" default:"1h"`
}

// Load は.envファイル（存在する場合）と環境変数から設定を読み込みます。
// .envが無いのはエラーではありません。
func Load(path string) (*Config, error) {
	if path != "" {
		// ローカル開発用。本番では環境変数のみで動作する
		_ = godotenv.Load(path)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
