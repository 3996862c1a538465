package logging

import (
	"bytes"
	"fmt"
	"io"
	"log"

	"github.com/fatih/color"
)

// writer is an io.Writer that splits its input stream into lines and writes
// those lines to an underlying logger.
type writer struct {
	// callback is the logging callback.
	callback func(string)
	// buffer is any incomplete line fragment left over from a previous write.
	buffer []byte
}

// trimCarriageReturn trims any single trailing carriage return from the end of
// a byte slice.
func trimCarriageReturn(buffer []byte) []byte {
	if len(buffer) > 0 && buffer[len(buffer)-1] == '\r' {
		return buffer[:len(buffer)-1]
	}
	return buffer
}

// Write implements io.Writer.Write.
func (w *writer) Write(buffer []byte) (int, error) {
	// Append the data to our internal buffer.
	w.buffer = append(w.buffer, buffer...)

	// Process all complete lines in the buffer.
	remaining := w.buffer
	for {
		index := bytes.IndexByte(remaining, '\n')
		if index == -1 {
			break
		}
		w.callback(string(trimCarriageReturn(remaining[:index])))
		remaining = remaining[index+1:]
	}

	// Shift any leftover fragment to the front of the buffer.
	w.buffer = append(w.buffer[:0], remaining...)

	// Done.
	return len(buffer), nil
}

// Logger is the main logger type. It has the novel property that it still
// functions if nil, but it doesn't log anything. Loggers derived from one
// another share an output destination and level. It is safe for concurrent
// usage.
type Logger struct {
	// level is the log level.
	level Level
	// prefix is any prefix specified for the logger.
	prefix string
	// output is the underlying output logger.
	output *log.Logger
}

// NewLogger creates a new root logger that writes lines at or below the
// specified level to writer.
func NewLogger(level Level, writer io.Writer) *Logger {
	return &Logger{
		level:  level,
		output: log.New(writer, "", log.LstdFlags|log.Lmicroseconds),
	}
}

// Sublogger creates a new sublogger with the specified name.
func (l *Logger) Sublogger(name string) *Logger {
	// If the logger is nil, then the sublogger will be as well.
	if l == nil {
		return nil
	}

	// Compute the new prefix.
	prefix := name
	if l.prefix != "" {
		prefix = l.prefix + "." + name
	}

	// Create the new logger.
	return &Logger{
		level:  l.level,
		prefix: prefix,
		output: l.output,
	}
}

// Level returns the logger's log level. A nil logger reports LevelDisabled.
func (l *Logger) Level() Level {
	if l == nil {
		return LevelDisabled
	}
	return l.level
}

// enabled returns whether or not lines at the specified level are emitted.
func (l *Logger) enabled(level Level) bool {
	return l != nil && l.level >= level
}

// write is the internal logging method.
func (l *Logger) write(line string) {
	// Add a prefix if necessary.
	if l.prefix != "" {
		line = fmt.Sprintf("[%s] %s", l.prefix, line)
	}

	// Log.
	l.output.Output(3, line)
}

// Error logs error information with an error prefix and red color.
func (l *Logger) Error(err error) {
	if l.enabled(LevelError) {
		l.write(color.RedString("Error: %v", err))
	}
}

// Errorf logs error information with semantics equivalent to fmt.Printf, using
// an error prefix and red color.
func (l *Logger) Errorf(format string, v ...interface{}) {
	if l.enabled(LevelError) {
		l.write(color.RedString("Error: "+format, v...))
	}
}

// Warn logs error information with a warning prefix and yellow color.
func (l *Logger) Warn(err error) {
	if l.enabled(LevelWarn) {
		l.write(color.YellowString("Warning: %v", err))
	}
}

// Warnf logs warning information with semantics equivalent to fmt.Printf,
// using a warning prefix and yellow color.
func (l *Logger) Warnf(format string, v ...interface{}) {
	if l.enabled(LevelWarn) {
		l.write(color.YellowString("Warning: "+format, v...))
	}
}

// Info logs basic execution information with semantics equivalent to
// fmt.Print.
func (l *Logger) Info(v ...interface{}) {
	if l.enabled(LevelInfo) {
		l.write(fmt.Sprint(v...))
	}
}

// Infof logs basic execution information with semantics equivalent to
// fmt.Printf.
func (l *Logger) Infof(format string, v ...interface{}) {
	if l.enabled(LevelInfo) {
		l.write(fmt.Sprintf(format, v...))
	}
}

// Debug logs advanced execution information with semantics equivalent to
// fmt.Print.
func (l *Logger) Debug(v ...interface{}) {
	if l.enabled(LevelDebug) {
		l.write(fmt.Sprint(v...))
	}
}

// Debugf logs advanced execution information with semantics equivalent to
// fmt.Printf.
func (l *Logger) Debugf(format string, v ...interface{}) {
	if l.enabled(LevelDebug) {
		l.write(fmt.Sprintf(format, v...))
	}
}

// Trace logs low-level execution information with semantics equivalent to
// fmt.Print.
func (l *Logger) Trace(v ...interface{}) {
	if l.enabled(LevelTrace) {
		l.write(fmt.Sprint(v...))
	}
}

// Tracef logs low-level execution information with semantics equivalent to
// fmt.Printf.
func (l *Logger) Tracef(format string, v ...interface{}) {
	if l.enabled(LevelTrace) {
		l.write(fmt.Sprintf(format, v...))
	}
}

// Writer returns an io.Writer that logs each line written to it at the
// specified level.
func (l *Logger) Writer(level Level) io.Writer {
	// If the level isn't enabled, then we can just discard input since it
	// won't be logged anyway. This saves us the overhead of scanning lines.
	if !l.enabled(level) {
		return io.Discard
	}

	// Create the writer.
	return &writer{
		callback: func(s string) {
			l.write(s)
		},
	}
}
