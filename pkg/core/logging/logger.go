package logging

import smlog "github.com/Cal-ly/SnakeMath-sub002/foundation/core/log"

// Level is the coarse severity used by the host surfaces
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

func (l Level) foundation() smlog.Level {
	switch l {
	case LevelDebug:
		return smlog.LevelDebug
	case LevelWarn:
		return smlog.LevelWarn
	case LevelError:
		return smlog.LevelError
	default:
		return smlog.LevelInfo
	}
}

// VerboseLevel maps the --verbose flag onto a level name
func VerboseLevel(verbose bool, configured string) string {
	if verbose {
		return LevelDebug.String()
	}
	return configured
}
