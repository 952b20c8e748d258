// Package logrus adapts a logrus.Entry to the bytekit.Logger interface.
package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/unkn0wn-root/bytekit"
)

type LogrusLogger struct{ E *logrus.Entry }

var _ bytekit.Logger = LogrusLogger{}

func (l LogrusLogger) Debug(msg string, f bytekit.Fields) {
	l.E.WithFields(logrus.Fields(f)).Debug(msg)
}
func (l LogrusLogger) Info(msg string, f bytekit.Fields) { l.E.WithFields(logrus.Fields(f)).Info(msg) }
func (l LogrusLogger) Warn(msg string, f bytekit.Fields) { l.E.WithFields(logrus.Fields(f)).Warn(msg) }
func (l LogrusLogger) Error(msg string, f bytekit.Fields) {
	l.E.WithFields(logrus.Fields(f)).Error(msg)
}
