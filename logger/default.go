package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/Philipp01105/kvlog/sink"
	"github.com/Philipp01105/kvlog/sink/zapsink"
)

var (
	factory   sink.Factory
	factoryMu sync.RWMutex
)

func init() {
	factory = defaultFactory()
}

// defaultFactory is a zap production logger, or a plain stderr console
// sink when zap cannot be built.
func defaultFactory() sink.Factory {
	zl, err := zap.NewProduction()
	if err != nil {
		return sink.NewConsole(sink.ConsoleConfig{Writer: os.Stderr})
	}
	return zapsink.NewFactory(zl)
}

// CurrentFactory returns the factory New resolves sinks from
func CurrentFactory() sink.Factory {
	factoryMu.RLock()
	defer factoryMu.RUnlock()
	return factory
}

// SetFactory replaces the factory New resolves sinks from and returns
// the previous one. A nil factory restores the default. Loggers created
// earlier keep their sink.
func SetFactory(f sink.Factory) sink.Factory {
	if f == nil {
		f = defaultFactory()
	}
	factoryMu.Lock()
	defer factoryMu.Unlock()
	prev := factory
	factory = f
	return prev
}

// Default returns an empty Logger for the root category
func Default() *Logger {
	return New(RootCategory)
}

// With starts a root Logger with one field
func With(key string, value any) *Logger {
	return Default().With(key, value)
}

// Withf starts a root Logger with one templated field
func Withf(key, template string, values ...any) *Logger {
	return Default().Withf(key, template, values...)
}
