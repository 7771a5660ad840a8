package utils

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogConfig 日志配置
type LogConfig struct {
	// Level 日志级别：debug / info / warn / error（空字符串等同 info）
	Level string `yaml:"level"`
	// File 日志输出文件，空表示 stderr
	File string `yaml:"file"`
	// ShowCaller 是否输出调用位置
	ShowCaller bool `yaml:"show_caller"`
}

// ParseLogLevel 将配置中的级别字符串转换为 zapcore.Level
func ParseLogLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	}
	return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", level)
}

// NewLogger 按配置构建 SugaredLogger，并替换 zap 全局 logger
//
// 输出格式为开发模式控制台格式，不带时间戳和堆栈
func NewLogger(p LogConfig) (*zap.SugaredLogger, error) {
	level, err := ParseLogLevel(p.Level)
	if err != nil {
		return nil, err
	}

	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.Level = zap.NewAtomicLevelAt(level)
	config.EncoderConfig.TimeKey = ""
	config.EncoderConfig.StacktraceKey = ""
	if !p.ShowCaller {
		config.EncoderConfig.CallerKey = ""
	}
	if p.File != "" {
		// 写文件时不要颜色转义
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		config.OutputPaths = []string{p.File}
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	zap.ReplaceGlobals(logger)
	return logger.Sugar(), nil
}
