package logger

import (
	"fmt"
	"strings"

	"github.com/Philipp01105/kvlog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	AllLevel     = core.AllLevel
	FinestLevel  = core.FinestLevel
	FinerLevel   = core.FinerLevel
	FineLevel    = core.FineLevel
	ConfigLevel  = core.ConfigLevel
	InfoLevel    = core.InfoLevel
	WarningLevel = core.WarningLevel
	SevereLevel  = core.SevereLevel

	TraceLevel = core.TraceLevel
	DebugLevel = core.DebugLevel
	WarnLevel  = core.WarnLevel
	ErrorLevel = core.ErrorLevel
)

// ParseLevel converts a level name to a Level. Both the short names
// (TRACE, DEBUG, INFO, WARN, ERROR) and the categorized names (ALL,
// FINEST, FINER, FINE, CONFIG, WARNING, SEVERE) are accepted, in any case.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ALL":
		return AllLevel, nil
	case "TRACE", "FINEST":
		return FinestLevel, nil
	case "FINER":
		return FinerLevel, nil
	case "DEBUG", "FINE":
		return FineLevel, nil
	case "CONFIG":
		return ConfigLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarningLevel, nil
	case "ERROR", "SEVERE":
		return SevereLevel, nil
	default:
		return InfoLevel, fmt.Errorf("unknown level %q", s)
	}
}
