// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"sync/atomic"

	"github.com/H0llyW00dzZ/x509-keygrip/src/internal/helper/gc"
)

// Logger defines the interface for logging operations.
// It provides methods for different log levels and formatted output.
//
// This interface supports both CLI and [MCP] server modes, allowing seamless
// switching between human-readable output and structured logging.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type Logger interface {
	// Printf formats and prints a log message.
	Printf(format string, v ...any)
	// Println prints a log message with a newline.
	Println(v ...any)
	// Debugf formats and prints a message only when debug output is enabled.
	Debugf(format string, v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// CLILogger implements Logger using the standard log package.
// It's designed for command-line interface output with human-readable formatting.
type CLILogger struct {
	logger *log.Logger
	debug  atomic.Bool
}

// NewCLILogger creates a new CLI logger with timestamps disabled.
// This is suitable for user-facing CLI output. Debug output starts disabled.
func NewCLILogger() *CLILogger {
	l := log.New(os.Stderr, "", 0)
	return &CLILogger{logger: l}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// Debugf prints a message prefixed with "debug: " when debug output is enabled.
func (c *CLILogger) Debugf(format string, v ...any) {
	if !c.debug.Load() {
		return
	}
	c.logger.Printf("debug: "+format, v...)
}

// SetDebug toggles debug output.
func (c *CLILogger) SetDebug(enabled bool) { c.debug.Store(enabled) }

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) { c.logger.SetOutput(w) }

// JSONLogger implements Logger with one JSON object per line.
// It suppresses output when silent, which is the default for the [MCP] server
// since MCP communication happens over stdio.
//
// JSONLogger is safe for concurrent use by multiple goroutines.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type JSONLogger struct {
	mu     sync.Mutex
	writer io.Writer
	silent bool
	debug  atomic.Bool
}

type entry struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// NewJSONLogger creates a new JSON logger writing to writer.
// A nil writer discards output. When silent is true nothing is written at all.
func NewJSONLogger(writer io.Writer, silent bool) *JSONLogger {
	if writer == nil {
		writer = io.Discard
	}
	return &JSONLogger{
		writer: writer,
		silent: silent,
	}
}

// Printf formats and logs an info level entry.
//
// Printf is safe for concurrent use by multiple goroutines.
func (j *JSONLogger) Printf(format string, v ...any) {
	if j.silent {
		return
	}
	j.write("info", fmt.Sprintf(format, v...))
}

// Println logs an info level entry.
//
// Println is safe for concurrent use by multiple goroutines.
func (j *JSONLogger) Println(v ...any) {
	if j.silent {
		return
	}
	j.write("info", fmt.Sprint(v...))
}

// Debugf logs a debug level entry when debug output is enabled.
func (j *JSONLogger) Debugf(format string, v ...any) {
	if j.silent || !j.debug.Load() {
		return
	}
	j.write("debug", fmt.Sprintf(format, v...))
}

// SetDebug toggles debug output.
func (j *JSONLogger) SetDebug(enabled bool) { j.debug.Store(enabled) }

func (j *JSONLogger) write(level, msg string) {
	buf := gc.Default.Get()
	defer gc.Default.Put(buf)

	// Encode appends the trailing newline.
	if err := json.NewEncoder(buf).Encode(entry{Level: level, Message: msg}); err != nil {
		return
	}

	j.mu.Lock()
	j.writer.Write(buf.Bytes())
	j.mu.Unlock()
}

// SetOutput sets the output destination for the JSON logger.
//
// SetOutput is safe for concurrent use by multiple goroutines.
func (j *JSONLogger) SetOutput(w io.Writer) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if w == nil {
		j.writer = io.Discard
	} else {
		j.writer = w
	}
}
