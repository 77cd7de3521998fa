package log

import (
	"log/slog"
	"os"
	"sync/atomic"
)

var root atomic.Value

// The root logger discards everything until a program installs a handler.
// 在程序安装处理器之前，根日志记录器丢弃所有记录。
func init() {
	root.Store(&logger{slog.New(DiscardHandler())})
}

// SetDefault sets the default global logger
// SetDefault 设置默认的全局日志记录器
func SetDefault(l Logger) {
	root.Store(l)
	if lg, ok := l.(*logger); ok {
		slog.SetDefault(lg.inner)
	}
}

// Root returns the root logger
func Root() Logger {
	return root.Load().(Logger)
}

// The following functions bypass the exported logger methods (logger.Debug,
// etc.) to keep the call depth the same for all paths to logger.Write so
// runtime.Caller(2) always refers to the call site in client code.
// 以下函数绕过导出的日志方法，以保持到 logger.Write 的调用深度一致。

// Trace is a convenient alias for Root().Trace
//
//	log.Trace("msg", "key1", val1)
func Trace(msg string, ctx ...interface{}) {
	Root().Write(LevelTrace, msg, ctx...)
}

// Debug is a convenient alias for Root().Debug
//
//	log.Debug("msg", "key1", val1)
func Debug(msg string, ctx ...interface{}) {
	Root().Write(LevelDebug, msg, ctx...)
}

// Info is a convenient alias for Root().Info
//
//	log.Info("msg", "key1", val1)
func Info(msg string, ctx ...interface{}) {
	Root().Write(LevelInfo, msg, ctx...)
}

// Warn is a convenient alias for Root().Warn
//
//	log.Warn("msg", "key1", val1)
func Warn(msg string, ctx ...interface{}) {
	Root().Write(LevelWarn, msg, ctx...)
}

// Error is a convenient alias for Root().Error
//
//	log.Error("msg", "key1", val1)
func Error(msg string, ctx ...interface{}) {
	Root().Write(LevelError, msg, ctx...)
}

// Crit is a convenient alias for Root().Crit. It exits the program.
// Crit 是 Root().Crit 的便捷别名，记录后退出程序。
//
//	log.Crit("msg", "key1", val1)
func Crit(msg string, ctx ...interface{}) {
	Root().Write(LevelCrit, msg, ctx...)
	os.Exit(1)
}

// New returns a new logger with the given context.
// New is a convenient alias for Root().New
func New(ctx ...interface{}) Logger {
	return Root().With(ctx...)
}
