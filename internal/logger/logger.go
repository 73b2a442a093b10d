package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

// NewLogger creates the engine's default zap logger. Production JSON output
// unless DOORINSIGHTS_DEBUG is set, in which case the human-readable
// development encoder is used.
func NewLogger() *zap.Logger {
	var logger *zap.Logger
	var err error

	if os.Getenv("DOORINSIGHTS_DEBUG") != "" {
		logger, err = NewDevelopmentLogger()
	} else {
		logger, err = NewProductionLogger()
	}
	if err != nil {
		// Fallback to no-op logger if construction fails
		return zap.NewNop()
	}

	return logger.With(zap.String("service", "doorinsights"))
}

// NewProductionLogger creates a new zap logger configured for production use
func NewProductionLogger() (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build production logger: %w", err)
	}
	return logger, nil
}

// NewDevelopmentLogger creates a new zap logger configured for development use
func NewDevelopmentLogger() (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build development logger: %w", err)
	}
	return logger, nil
}
