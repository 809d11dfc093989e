// Package logger はJSON形式のzapロガーを提供します。
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New はISO8601タイムスタンプ付きの本番用JSONロガーを生成します。
func New() (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "json"
	config.OutputPaths = []string{"stdout"}
	config.EncoderConfig = zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	return config.Build()
}

// Init はグローバルロガーを初期化して差し替えます。
// ハンドラー層は zap.S() 経由でこのロガーを使用します。
func Init() (*zap.Logger, error) {
	l, err := New()
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(l)
	return l, nil
}
