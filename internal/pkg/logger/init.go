package logger

import (
	"io"
	log "log/slog"
	"os"
)

var LogWriter io.Writer

// InitLogger 初始化全局 slog，JSON 输出到 stdout，并注入 trace_id
func InitLogger() {
	LogWriter = os.Stdout

	hStdout := log.NewJSONHandler(os.Stdout, &log.HandlerOptions{Level: log.LevelInfo})

	logger := log.New(&ContextHandler{hStdout})
	log.SetDefault(logger)
}
