package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/atomic"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Settings 存储日志的配置
type Settings struct {
	Path       string `yaml:"path"`        // 日志目录，为空时只输出到控制台
	Name       string `yaml:"name"`        // 日志文件名（不含扩展名）
	Ext        string `yaml:"ext"`         // 日志文件扩展名
	Level      string `yaml:"level"`       // debug/info/warn/error
	MaxSizeMB  int    `yaml:"max-size"`    // 单个文件达到多大时切割
	MaxBackups int    `yaml:"max-backups"` // 保留的旧文件个数
	MaxAgeDays int    `yaml:"max-age"`     // 旧文件保留天数
	Console    bool   `yaml:"console"`     // 是否同时输出到控制台
}

var (
	logger      *zap.Logger
	sugar       *zap.SugaredLogger
	level       = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	initialized atomic.Bool
)

func init() {
	// 未调用 Setup 之前也能输出到控制台
	logger = zap.New(consoleCore(), zap.AddCaller(), zap.AddCallerSkip(1))
	sugar = logger.Sugar()
}

func consoleCore() zapcore.Core {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stdout), level)
}

// Setup 初始化日志文件以及日志对象，只有第一次调用生效
func Setup(settings *Settings) error {
	if !initialized.CompareAndSwap(false, true) {
		return nil
	}
	if settings.Level != "" {
		if err := level.UnmarshalText([]byte(settings.Level)); err != nil {
			initialized.Store(false)
			return fmt.Errorf("logger: bad level %q: %w", settings.Level, err)
		}
	}

	var cores []zapcore.Core
	if settings.Console || settings.Path == "" {
		cores = append(cores, consoleCore())
	}
	if settings.Path != "" {
		ext := settings.Ext
		if ext == "" {
			ext = "log"
		}
		// lumberjack 按大小切割，目录不存在时自动创建
		w := &lumberjack.Logger{
			Filename:   filepath.Join(settings.Path, fmt.Sprintf("%s.%s", settings.Name, ext)),
			MaxSize:    settings.MaxSizeMB,
			MaxBackups: settings.MaxBackups,
			MaxAge:     settings.MaxAgeDays,
		}
		encCfg := zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(w), level))
	}

	logger = zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1))
	sugar = logger.Sugar()
	return nil
}

// L 返回结构化日志对象，适合带字段的日志
func L() *zap.Logger {
	return logger.WithOptions(zap.AddCallerSkip(-1))
}

// SetLevel 运行时调整日志级别
func SetLevel(l zapcore.Level) {
	level.SetLevel(l)
}

// Sync 刷新缓冲
func Sync() error {
	return logger.Sync()
}

// Debug 打印Debug日志
func Debug(v ...interface{}) {
	sugar.Debug(v...)
}

// Info 打印常规日志
func Info(v ...interface{}) {
	sugar.Info(v...)
}

// Warn 打印警告日志
func Warn(v ...interface{}) {
	sugar.Warn(v...)
}

// Error 打印错误日志
func Error(v ...interface{}) {
	sugar.Error(v...)
}

// Fatal 打印错误日志并停止程序
func Fatal(v ...interface{}) {
	sugar.Fatal(v...)
}
