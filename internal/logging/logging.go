// Package logging sets up the process log file. TUI mode cannot write
// to stdout, so logs go to a size-rotated file instead.
package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// New returns a logger writing to a rotated file under dir, creating
// the directory if needed.
func New(dir string) (*log.Logger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	writer := &lumberjack.Logger{
		Filename:   filepath.Join(dir, "deepclean.log"),
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     14, // days
		Compress:   true,
	}
	return log.New(writer, "", log.LstdFlags), nil
}

// Default places the log under the user's cache directory. Failing
// that, logging is discarded rather than breaking the program.
func Default() *log.Logger {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return Discard()
	}
	logger, err := New(filepath.Join(cacheDir, "deepclean"))
	if err != nil {
		return Discard()
	}
	return logger
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard, "", 0)
}
