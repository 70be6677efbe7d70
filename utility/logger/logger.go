package logger

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"

	log "github.com/jeanphorn/log4go"
)

var (
	mu      sync.RWMutex
	current = log.NewDefaultLogger(log.DEBUG)
)

// SetLevel replaces the console logger with one filtering below level
// (DEBUG, INFO, WARNING, ERROR)
func SetLevel(level string) {
	lvl := log.DEBUG
	switch strings.ToUpper(level) {
	case "INFO":
		lvl = log.INFO
	case "WARNING", "WARN":
		lvl = log.WARNING
	case "ERROR":
		lvl = log.ERROR
	}
	mu.Lock()
	defer mu.Unlock()
	current.Close()
	current = log.NewDefaultLogger(lvl)
}

func write(lvl log.Level, arg0 interface{}, args ...interface{}) {
	mu.RLock()
	defer mu.RUnlock()
	current.Log(lvl, getSource(), format(arg0, args...))
}

func format(arg0 interface{}, args ...interface{}) string {
	if f, ok := arg0.(string); ok {
		return fmt.Sprintf(f, args...)
	}
	return fmt.Sprint(append([]interface{}{arg0}, args...)...)
}

// Info log information
func Info(arg0 interface{}, args ...interface{}) {
	write(log.INFO, arg0, args...)
}

// Debug log debug
func Debug(arg0 interface{}, args ...interface{}) {
	write(log.DEBUG, arg0, args...)
}

// Warning log warnings
func Warning(arg0 interface{}, args ...interface{}) {
	write(log.WARNING, arg0, args...)
}

// Error log errors
func Error(arg0 interface{}, args ...interface{}) {
	write(log.ERROR, arg0, args...)
}

// Fatal log fatal errors
func Fatal(arg0 interface{}, args ...interface{}) {
	write(log.CRITICAL, arg0, args...)
	mu.Lock()
	current.Close()
	mu.Unlock()
	os.Exit(1)
}

func getSource() (source string) {
	if pc, _, line, ok := runtime.Caller(3); ok {
		source = fmt.Sprintf("%s:%d", runtime.FuncForPC(pc).Name(), line)
	}
	return
}
