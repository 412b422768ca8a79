// Package telemetry provides a leveled, per-subsystem logger for the
// emulator core. Logging is opt-in and off by default so that cycle-exact
// hot paths (CPU.Clock, PPU.Clock) never pay for formatting unless a
// subsystem toggle is explicitly enabled.
package telemetry

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Level orders logging verbosity from Off to Trace.
type Level int

const (
	LevelOff Level = iota
	LevelError
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

// Logger gates per-subsystem log lines behind both a global level and a
// subsystem enable flag, so "CPU trace" and "PPU trace" can be toggled
// independently without touching call sites.
type Logger struct {
	level  Level
	writer io.Writer

	cpuEnabled    bool
	ppuEnabled    bool
	mapperEnabled bool
	busEnabled    bool
}

var global *Logger

// Init sets up the global logger. An empty filename logs to stdout.
func Init(level Level, filename string) error {
	var writer io.Writer = os.Stdout
	if filename != "" {
		file, err := os.Create(filename)
		if err != nil {
			return fmt.Errorf("failed to create log file: %w", err)
		}
		writer = file
	}

	global = &Logger{level: level, writer: writer}
	return nil
}

// SetCPU enables or disables CPU instruction tracing.
func SetCPU(enabled bool) {
	if global != nil {
		global.cpuEnabled = enabled
	}
}

// SetPPU enables or disables PPU dot-level tracing.
func SetPPU(enabled bool) {
	if global != nil {
		global.ppuEnabled = enabled
	}
}

// SetMapper enables or disables mapper register/IRQ tracing.
func SetMapper(enabled bool) {
	if global != nil {
		global.mapperEnabled = enabled
	}
}

// SetBus enables or disables bus DMA/interrupt-routing tracing.
func SetBus(enabled bool) {
	if global != nil {
		global.busEnabled = enabled
	}
}

// CPU logs a CPU-subsystem line at Trace level when CPU tracing is on.
func CPU(format string, args ...interface{}) {
	if global != nil && global.cpuEnabled && global.level >= LevelTrace {
		emit(global, "CPU", format, args...)
	}
}

// PPU logs a PPU-subsystem line at Trace level when PPU tracing is on.
func PPU(format string, args ...interface{}) {
	if global != nil && global.ppuEnabled && global.level >= LevelTrace {
		emit(global, "PPU", format, args...)
	}
}

// Mapper logs a mapper-subsystem line at Debug level when mapper tracing is
// on.
func Mapper(format string, args ...interface{}) {
	if global != nil && global.mapperEnabled && global.level >= LevelDebug {
		emit(global, "MAPPER", format, args...)
	}
}

// Bus logs a bus-subsystem line at Debug level when bus tracing is on.
func Bus(format string, args ...interface{}) {
	if global != nil && global.busEnabled && global.level >= LevelDebug {
		emit(global, "BUS", format, args...)
	}
}

// Info logs a general informational line.
func Info(format string, args ...interface{}) {
	if global != nil && global.level >= LevelInfo {
		emit(global, "INFO", format, args...)
	}
}

// Error logs an error line regardless of subsystem toggles.
func Error(format string, args ...interface{}) {
	if global != nil && global.level >= LevelError {
		emit(global, "ERROR", format, args...)
	}
}

func emit(l *Logger, tag, format string, args ...interface{}) {
	timestamp := time.Now().Format("15:04:05.000")
	fmt.Fprintf(l.writer, "[%s] %s: %s\n", timestamp, tag, fmt.Sprintf(format, args...))
}

// LevelFromString parses a CLI-friendly level name, defaulting to Info for
// anything unrecognized.
func LevelFromString(level string) Level {
	switch level {
	case "off":
		return LevelOff
	case "error":
		return LevelError
	case "warn":
		return LevelWarn
	case "info":
		return LevelInfo
	case "debug":
		return LevelDebug
	case "trace":
		return LevelTrace
	default:
		return LevelInfo
	}
}

// Close releases the log file, if one was opened.
func Close() {
	if global != nil {
		if file, ok := global.writer.(*os.File); ok && file != os.Stdout && file != os.Stderr {
			file.Close()
		}
	}
}
