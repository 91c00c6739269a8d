package logger

import (
	"os"

	"go.uber.org/zap"
)

// New builds the process logger. Development mode (human-readable output,
// debug level) is selected with APP_ENV=development.
func New() (*zap.Logger, error) {
	if os.Getenv("APP_ENV") == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
