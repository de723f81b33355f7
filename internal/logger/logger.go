// Package logger is the command's leveled logger.
package logger

import (
	"io"
	"log"
)

// Logger is the logging surface used by the command.
type Logger interface {
	Debugf(format string, v ...interface{})
	Infof(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

type stdLogger struct {
	l       *log.Logger
	verbose bool
}

// New returns a Logger writing to w.  Debugf output is dropped unless verbose
// is true.
func New(w io.Writer, verbose bool) Logger {
	return &stdLogger{l: log.New(w, "huffman: ", 0), verbose: verbose}
}

func (s *stdLogger) Debugf(format string, v ...interface{}) {
	if s.verbose {
		s.l.Printf("[DEBUG] "+format, v...)
	}
}

func (s *stdLogger) Infof(format string, v ...interface{})  { s.l.Printf("[INFO] "+format, v...) }
func (s *stdLogger) Errorf(format string, v ...interface{}) { s.l.Printf("[ERROR] "+format, v...) }
