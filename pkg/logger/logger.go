package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var log = zap.NewNop()

// Init настраивает глобальный логгер из переменных окружения:
//   - LOG_LEVEL=debug|info|warn|error (по умолчанию info)
//   - LOG_FORMAT=json|console (по умолчанию json)
//   - LOG_FILE=./logs/slot_game.log или LOG_DIR=./logs включают запись в файл
//   - LOG_MAX_SIZE_MB, LOG_MAX_BACKUPS, LOG_MAX_DAYS, LOG_COMPRESS - ротация
func Init() {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.LowercaseLevelEncoder

	level := zap.NewAtomicLevelAt(parseLevel(os.Getenv("LOG_LEVEL")))

	var enc zapcore.Encoder
	if strings.EqualFold(strings.TrimSpace(os.Getenv("LOG_FORMAT")), "console") {
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(enc, zapcore.Lock(os.Stdout), level),
	}

	logFile := strings.TrimSpace(os.Getenv("LOG_FILE"))
	if dir := strings.TrimSpace(os.Getenv("LOG_DIR")); logFile == "" && dir != "" {
		logFile = filepath.Join(dir, "slot_game.log")
	}
	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
			// Пишем только в stdout
			_, _ = fmt.Fprintf(os.Stderr, "logger: cannot create log dir: %v\n", err)
		} else {
			w := &lumberjack.Logger{
				Filename:   logFile,
				MaxSize:    envInt("LOG_MAX_SIZE_MB", 100),
				MaxBackups: envInt("LOG_MAX_BACKUPS", 7),
				MaxAge:     envInt("LOG_MAX_DAYS", 14),
				Compress:   envBool("LOG_COMPRESS", true),
			}
			cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(w), level))
		}
	}

	log = zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1))
}

// Set подменяет глобальный логгер (используется в тестах)
func Set(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	log = l
}

// L возвращает текущий логгер без сдвига caller
func L() *zap.Logger {
	return log.WithOptions(zap.AddCallerSkip(-1))
}

func Sync() error { return log.Sync() }

func Debug(msg string, fields ...zap.Field) { log.Debug(msg, fields...) }
func Info(msg string, fields ...zap.Field)  { log.Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { log.Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { log.Error(msg, fields...) }

func parseLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func envInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envBool(key string, def bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return v
}
