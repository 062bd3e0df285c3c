package logger

import (
	"go.uber.org/zap"
)

// New builds the application logger. The logger is passed explicitly to
// everything that needs it; there is no package-level global.
func New(appEnv string) (*zap.Logger, error) {
	if appEnv == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
