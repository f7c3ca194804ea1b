package core

// Level represents the severity of an emitted log line.
//
// The ordering follows the categorized logger vocabulary
// (ALL < FINEST < FINER < FINE < CONFIG < INFO < WARNING < SEVERE).
// TraceLevel, DebugLevel, WarnLevel and ErrorLevel are aliases onto it.
type Level int8

const (
	// AllLevel is the lowest level, used for "log everything" lines
	AllLevel Level = iota
	// FinestLevel for highly detailed tracing
	FinestLevel
	// FinerLevel for fairly detailed tracing
	FinerLevel
	// FineLevel for debugging information
	FineLevel
	// ConfigLevel for static configuration messages
	ConfigLevel
	// InfoLevel for general informational messages
	InfoLevel
	// WarningLevel for potential problems
	WarningLevel
	// SevereLevel for serious failures
	SevereLevel
)

const (
	TraceLevel = FinestLevel
	DebugLevel = FineLevel
	WarnLevel  = WarningLevel
	ErrorLevel = SevereLevel
)

var levelNames = [...]string{
	AllLevel:     "ALL",
	FinestLevel:  "TRACE",
	FinerLevel:   "FINER",
	FineLevel:    "DEBUG",
	ConfigLevel:  "CONFIG",
	InfoLevel:    "INFO",
	WarningLevel: "WARN",
	SevereLevel:  "ERROR",
}

// String returns the string representation of the level
func (l Level) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// Levels lists every level in ascending order.
func Levels() []Level {
	return []Level{AllLevel, FinestLevel, FinerLevel, FineLevel, ConfigLevel, InfoLevel, WarningLevel, SevereLevel}
}
