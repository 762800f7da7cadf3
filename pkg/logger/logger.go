package logger

import "go.uber.org/zap"

// New builds the process logger: human-readable in development, JSON
// elsewhere. Falls back to a no-op logger rather than failing startup.
func New(env string) *zap.Logger {
	var (
		l   *zap.Logger
		err error
	)
	if env == "development" || env == "dev" || env == "local" {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return zap.NewNop()
	}
	return l
}
