// Package journal writes operation records to the console.
//
// Every notable event (a render, a refresh, a server start) is a Record with a status.
// Records are JSON lines, or tab separated lines when the console is a terminal.
package journal

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
)

// Format is the line format of a Logger.
type Format int

const (
	FormatJSON Format = iota
	FormatText
)

// FormatFor returns FormatText if f is a terminal, otherwise FormatJSON.
func FormatFor(f *os.File) Format {
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return FormatText
	}
	return FormatJSON
}

// Logger writes Records.
// Copies made by the With methods share the same writer and lock.
type Logger struct {
	mu     *sync.Mutex
	writer io.Writer
	format Format
	target string
	extra  map[string]interface{}

	stime    time.Time
	useTimer bool
}

// New makes a Logger.
func New(w io.Writer, format Format) Logger {
	return Logger{
		mu:     &sync.Mutex{},
		writer: w,
		format: format,
	}
}

// Discard is a Logger that writes nothing.
var Discard = New(io.Discard, FormatJSON)

// Print writes a Record.
// Empty Time and Target are filled from the Logger.
// The zero Logger writes nothing.
func (l Logger) Print(r Record) error {
	if l.writer == nil {
		return nil
	}

	if r.Target == "" {
		r.Target = l.target
	}

	if l.useTimer {
		r.Time = l.stime
		r.Latency = time.Since(l.stime)
	} else if r.Time.IsZero() {
		r.Time = time.Now()
	}

	if len(l.extra) > 0 {
		merged := make(map[string]interface{}, len(l.extra)+len(r.Extra))
		for k, v := range l.extra {
			merged[k] = v
		}
		for k, v := range r.Extra {
			merged[k] = v
		}
		r.Extra = merged
	}

	var line []byte
	if l.format == FormatText {
		line = []byte(r.String())
	} else {
		var err error
		if line, err = r.MarshalJSON(); err != nil {
			return err
		}
	}
	line = append(line, '\n')

	l.mu.Lock()
	defer l.mu.Unlock()

	_, err := l.writer.Write(line)
	return err
}

// Healthy prints a Healthy record.
func (l Logger) Healthy(message string, extra map[string]interface{}) error {
	return l.Print(Record{
		Status:  StatusHealthy,
		Message: message,
		Extra:   extra,
	})
}

// Failure prints a Failure record.
func (l Logger) Failure(message string, extra map[string]interface{}) error {
	return l.Print(Record{
		Status:  StatusFailure,
		Message: message,
		Extra:   extra,
	})
}

// Aborted prints an Aborted record.
func (l Logger) Aborted(message string, extra map[string]interface{}) error {
	return l.Print(Record{
		Status:  StatusAborted,
		Message: message,
		Extra:   extra,
	})
}

// WithTarget makes new Logger with the target.
func (l Logger) WithTarget(target string) Logger {
	l.target = target
	return l
}

// With makes new Logger that adds the key and value to every record.
func (l Logger) With(key string, value interface{}) Logger {
	extra := make(map[string]interface{}, len(l.extra)+1)
	for k, v := range l.extra {
		extra[k] = v
	}
	extra[key] = value
	l.extra = extra
	return l
}

// StartTimer makes new Logger that measures latency from now until the next print.
func (l Logger) StartTimer() Logger {
	l.stime = time.Now()
	l.useTimer = true
	return l
}
