package app

import (
	"go-workforce/internal/config"

	"go.uber.org/zap"
)

// NewLogger returns a JSON production logger in production and a console
// development logger everywhere else.
func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.App.Env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
