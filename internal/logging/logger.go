package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a zap logger. format "json" selects the production encoder,
// anything else the colored development console encoder.
func New(level, format string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var config zap.Config
	if format == "json" {
		config = zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	config.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Sugar adapts a zap logger to the printf-style Logger the engine expects
type Sugar struct {
	s *zap.SugaredLogger
}

// NewSugar wraps logger
func NewSugar(logger *zap.Logger) Sugar {
	return Sugar{s: logger.Sugar()}
}

func (l Sugar) Debugf(format string, args ...any) { l.s.Debugf(format, args...) }
func (l Sugar) Infof(format string, args ...any)  { l.s.Infof(format, args...) }
func (l Sugar) Warnf(format string, args ...any)  { l.s.Warnf(format, args...) }
func (l Sugar) Errorf(format string, args ...any) { l.s.Errorf(format, args...) }
