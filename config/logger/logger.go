package logger

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// New builds the process logger and installs it as the zap global.
func New(production bool) (*zap.SugaredLogger, error) {
	var logger *zap.Logger
	var err error

	if production {
		logger, err = zap.NewProduction()
	} else {
		z := zap.NewDevelopmentConfig()
		z.OutputPaths = []string{"stdout"}
		logger, err = z.Build()
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize logger")
	}

	zap.ReplaceGlobals(logger)
	return logger.Sugar(), nil
}
