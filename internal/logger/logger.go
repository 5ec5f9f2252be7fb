package logger

import (
	"fmt"
	"io"
	"log"
	"strings"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var (
	CurrentLevel = LevelWarn
	Color        = true
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// ParseLevel accepts the names printed by Level.String, case-insensitively.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug, nil
	case "INFO":
		return LevelInfo, nil
	case "WARN", "WARNING":
		return LevelWarn, nil
	case "ERROR":
		return LevelError, nil
	}
	return LevelWarn, fmt.Errorf("unknown log level %q", s)
}

// SetOutput redirects every level. The terminal host points this away from
// stderr while tcell owns the screen.
func SetOutput(w io.Writer) { log.SetOutput(w) }

func logMessage(level Level, format string, v ...interface{}) {
	if level < CurrentLevel {
		return
	}

	const (
		colorReset  = "\033[0m"
		colorCyan   = "\033[36m"
		colorBlue   = "\033[34m"
		colorYellow = "\033[33m"
		colorRed    = "\033[31m"
	)

	if !Color {
		log.Printf("["+level.String()+"] "+format, v...)
		return
	}

	var colorCode string
	switch level {
	case LevelDebug:
		colorCode = colorCyan
	case LevelInfo:
		colorCode = colorBlue
	case LevelWarn:
		colorCode = colorYellow
	case LevelError:
		colorCode = colorRed
	}

	prefix := fmt.Sprintf("%s[%s]%s ", colorCode, level.String(), colorReset)
	log.Printf(prefix+format, v...)
}

func Debug(format string, v ...interface{}) { logMessage(LevelDebug, format, v...) }
func Info(format string, v ...interface{})  { logMessage(LevelInfo, format, v...) }
func Warn(format string, v ...interface{})  { logMessage(LevelWarn, format, v...) }
func Error(format string, v ...interface{}) { logMessage(LevelError, format, v...) }
