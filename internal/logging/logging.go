// Package logging provides the sink abstraction the analysis core logs
// through. Callers hand a Logger in rather than the core reaching for a
// process-wide global, the same shape the teacher's components take a
// logger parameter instead of importing charmbracelet/log themselves.
package logging

import (
	"os"

	"github.com/charmbracelet/log"
)

// Logger is the minimal surface the core needs. *log.Logger satisfies it.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// Discard is a Logger that drops everything, used as the default when a
// caller does not supply one (e.g. in tests or library use where stderr
// output would be unwelcome).
var Discard Logger = discard{}

type discard struct{}

func (discard) Debugf(string, ...interface{}) {}
func (discard) Infof(string, ...interface{})  {}
func (discard) Warnf(string, ...interface{})  {}
func (discard) Errorf(string, ...interface{}) {}

// Stderr returns a logger that writes to os.Stderr, for use by cmd/ mains.
func Stderr(name string) Logger {
	return log.NewWithOptions(os.Stderr, log.Options{Prefix: name})
}
