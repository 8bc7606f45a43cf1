// Package log provides structured logging with verbosity levels for srgn.
// It wraps log/slog and follows kubectl/klog verbosity patterns.
package log

import "log/slog"

// LevelTrace is a custom trace level (more verbose than debug).
// slog only defines Debug/Info/Warn/Error, so use a custom level below Debug.
const LevelTrace = slog.Level(-8)

// Verbosity level constants for documentation and reference.
const (
	VerbosityError = 0 // Errors only (quiet)
	VerbosityWarn  = 1 // + Warnings
	VerbosityInfo  = 2 // + Info (scope narrowed, actions applied, summaries)
	VerbosityDebug = 3 // + Debug (files scanned, query matches, timing)
	VerbosityTrace = 4 // + Trace (function entry/exit, full scope dumps)
)

// VerbosityToLevel maps -v=N to an slog level.
func VerbosityToLevel(v int) slog.Level {
	switch {
	case v <= 0:
		return slog.LevelError
	case v == 1:
		return slog.LevelWarn
	case v == 2:
		return slog.LevelInfo
	case v == 3:
		return slog.LevelDebug
	default:
		return LevelTrace
	}
}

// LevelToVerbosity maps an slog level to -v=N (for display).
func LevelToVerbosity(l slog.Level) int {
	switch {
	case l >= slog.LevelError:
		return VerbosityError
	case l >= slog.LevelWarn:
		return VerbosityWarn
	case l >= slog.LevelInfo:
		return VerbosityInfo
	case l >= slog.LevelDebug:
		return VerbosityDebug
	default:
		return VerbosityTrace
	}
}

// LevelName returns the display name for a level, including the custom
// trace level slog has no built-in name for.
func LevelName(l slog.Level) string {
	if l == LevelTrace {
		return "TRACE"
	}
	return l.String()
}
