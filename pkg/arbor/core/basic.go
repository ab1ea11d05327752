package core

import "github.com/sirupsen/logrus"

type Named interface {
	// Returns the human readable name of the entity. Names are labels only and
	// are not required to be unique.
	Name() string
}

type LoggerProvider interface {
	// Logger returns the logger to be used for logging.
	Logger() *logrus.Logger
}
