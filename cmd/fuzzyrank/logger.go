package main

import (
	"fmt"
	"io"
	"os"
)

// Logger is the minimal structured-logging surface the rest of the CLI
// depends on, never the concrete stderrLogger: run takes a Logger so a
// different implementation (one backed by a bytes.Buffer, say) can stand in
// for the real os.Stderr.
type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// stderrLogger is the default Logger: every line is tagged with the run's
// correlation id so output from concurrent runs (or a run's stdout piped
// alongside its stderr) can be told apart after the fact.
type stderrLogger struct {
	correlationID string
	out           io.Writer
}

// newLogger builds the default stderr-backed Logger, tagging every line
// with correlationID.
func newLogger(correlationID string) *stderrLogger {
	return &stderrLogger{correlationID: correlationID, out: os.Stderr}
}

func (l *stderrLogger) log(level, format string, args ...interface{}) {
	fmt.Fprintf(l.out, "%s [%s] %s\n", l.correlationID, level, fmt.Sprintf(format, args...))
}

func (l *stderrLogger) Infof(format string, args ...interface{})  { l.log("INFO", format, args...) }
func (l *stderrLogger) Warnf(format string, args ...interface{})  { l.log("WARN", format, args...) }
func (l *stderrLogger) Errorf(format string, args ...interface{}) { l.log("ERROR", format, args...) }
