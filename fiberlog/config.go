package fiberlog

import "github.com/sirupsen/logrus"

// Config controls the request-logging middleware. Logger is the target
// logrus logger (the package-level logger when nil), Tags selects which
// request fields get attached to every entry.
type Config struct {
	Logger *logrus.Logger
	Tags   []string
}

// ConfigDefault is used by New when no Config is passed.
var ConfigDefault = Config{
	Logger: nil,
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
		RequestID,
	},
}
