package logger

import (
	"strings"

	"github.com/Philipp01105/kvlog/core"
)

// Layouts used by the date and time setters
const (
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04:05.000"
	DateTimeLayout = "2006-01-02 15:04:05.000 -0700"
	TimeZoneLayout = "-0700"
)

// now is read by every date and time setter; tests replace it
var now = core.CoarseNow

// Day adds the day of the month
func (l *Logger) Day() *Logger {
	return l.WithKey(KeyDay, now().Day())
}

// DayName adds the upper-case weekday, e.g. MONDAY
func (l *Logger) DayName() *Logger {
	return l.WithKey(KeyDay, strings.ToUpper(now().Weekday().String()))
}

// Month adds the month number, 1 to 12
func (l *Logger) Month() *Logger {
	return l.WithKey(KeyMonth, int(now().Month()))
}

// MonthName adds the upper-case month, e.g. JANUARY
func (l *Logger) MonthName() *Logger {
	return l.WithKey(KeyMonth, strings.ToUpper(now().Month().String()))
}

// Year adds the four-digit year
func (l *Logger) Year() *Logger {
	return l.WithKey(KeyYear, now().Year())
}

// Date adds the current date as 2006-01-02
func (l *Logger) Date() *Logger {
	return l.DateFormat(DateLayout)
}

// DateFormat adds the current date in the given time layout
func (l *Logger) DateFormat(layout string) *Logger {
	return l.WithKey(KeyDate, now().Format(layout))
}

// Time adds the current time of day as 15:04:05.000
func (l *Logger) Time() *Logger {
	return l.TimeFormat(TimeLayout)
}

// TimeFormat adds the current time in the given time layout
func (l *Logger) TimeFormat(layout string) *Logger {
	return l.WithKey(KeyTime, now().Format(layout))
}

// DateTime adds the current date, time and zone offset
func (l *Logger) DateTime() *Logger {
	return l.DateTimeFormat(DateTimeLayout)
}

// DateTimeFormat adds the current date and time in the given time layout
func (l *Logger) DateTimeFormat(layout string) *Logger {
	return l.WithKey(KeyDateTime, now().Format(layout))
}

// DateTimeKey adds the current time under a custom key
func (l *Logger) DateTimeKey(key, layout string) *Logger {
	return l.With(key, now().Format(layout))
}

// TimeZone adds the zone offset, e.g. -0700
func (l *Logger) TimeZone() *Logger {
	return l.WithKey(KeyTimeZone, now().Format(TimeZoneLayout))
}

// TimeZoneName adds the name of the clock's location, e.g. Europe/Berlin
func (l *Logger) TimeZoneName() *Logger {
	return l.WithKey(KeyTimeZone, now().Location().String())
}
