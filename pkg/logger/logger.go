package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/hashicorp/go-hclog"
)

var (
	mu      sync.RWMutex
	std     hclog.Logger
	logFile *os.File
)

// Options configures the process-wide logger.
type Options struct {
	Level string
	JSON  bool
	// File, when set, receives a copy of every log line.
	File   string
	Output io.Writer
}

// InitLogger initializes the logger with console output and an optional file output.
func InitLogger(opts Options) error {
	mu.Lock()
	defer mu.Unlock()
	closeFile()

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return err
		}
		logFile = f
		out = io.MultiWriter(out, logFile)
	}

	std = hclog.New(&hclog.LoggerOptions{
		Name:       "tabconv",
		Level:      hclog.LevelFromString(opts.Level),
		JSONFormat: opts.JSON,
		Output:     out,
	})
	return nil
}

func Close() {
	mu.Lock()
	defer mu.Unlock()
	closeFile()
}

func closeFile() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// newDefault builds the console logger at info level used before InitLogger.
func newDefault() hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   "tabconv",
		Level:  hclog.Info,
		Output: os.Stderr,
	})
}

// get returns the process logger, creating the default one on first use.
func get() hclog.Logger {
	mu.RLock()
	l := std
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if std == nil {
		std = newDefault()
	}
	return std
}

// Named returns a child logger for key/value logging.
func Named(name string) hclog.Logger {
	return get().Named(name)
}

func Debugf(format string, v ...interface{}) {
	get().Debug(fmt.Sprintf(format, v...))
}

func Infof(format string, v ...interface{}) {
	get().Info(fmt.Sprintf(format, v...))
}

func Errorf(format string, v ...interface{}) {
	get().Error(fmt.Sprintf(format, v...))
}
