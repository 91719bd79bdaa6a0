package format

import (
	"strings"
	"time"

	"github.com/footprint-tools/brig/internal/domain"
)

// Formatter renders timestamps using the display_date and display_time
// config keys.
type Formatter struct {
	cfg domain.ConfigProvider
}

// New returns a formatter reading cfg. A nil cfg uses the defaults.
func New(cfg domain.ConfigProvider) *Formatter {
	return &Formatter{cfg: cfg}
}

func (f *Formatter) get(key string) string {
	if f == nil || f.cfg == nil {
		return ""
	}
	v, _ := f.cfg.Get(key)
	return v
}

// DateTime formats a time with both date and time according to config.
// Example output: "23/01/2024 15:04" or "01/23/2024 3:04 PM"
func (f *Formatter) DateTime(t time.Time) string {
	return f.Date(t) + " " + f.Time(t)
}

// DateTimeShort formats a time with short date and time (no year).
// Example output: "23/01 15:04" or "01/23 3:04 PM"
func (f *Formatter) DateTimeShort(t time.Time) string {
	return f.DateShort(t) + " " + f.Time(t)
}

// Date formats only the date portion according to config.
// Example output: "23/01/2024" or "01/23/2024" or "2024-01-23"
func (f *Formatter) Date(t time.Time) string {
	format := f.getDateFormat()
	return t.Format(format)
}

// DateShort formats date without year.
// Example output: "23/01" or "01/23"
func (f *Formatter) DateShort(t time.Time) string {
	format := f.getDateFormatShort()
	return t.Format(format)
}

// Time formats only the time portion according to config.
// Example output: "15:04" or "3:04 PM"
func (f *Formatter) Time(t time.Time) string {
	format := f.getTimeFormat()
	return t.Format(format)
}

// TimeFull formats time with seconds.
// Example output: "15:04:05" or "3:04:05 PM"
func (f *Formatter) TimeFull(t time.Time) string {
	format := f.getTimeFormatFull()
	return t.Format(format)
}

// Full formats with full date and time with seconds.
// Example output: "23/01/2024 15:04:05"
func (f *Formatter) Full(t time.Time) string {
	return f.Date(t) + " " + f.TimeFull(t)
}

// getDateFormat returns the Go time format string for dates.
func (f *Formatter) getDateFormat() string {
	displayDate := f.get("display_date")
	if displayDate == "" {
		displayDate = "Jan 02"
	}

	// Check for preset formats
	switch displayDate {
	case "mm/dd/yyyy":
		return "01/02/2006"
	case "yyyy-mm-dd":
		return "2006-01-02"
	case "dd/mm/yyyy":
		return "02/01/2006"
	default:
		// Assume it's a custom Go time format (e.g., "Jan 02")
		return displayDate
	}
}

// getDateFormatShort returns the Go time format string for short dates (no year).
func (f *Formatter) getDateFormatShort() string {
	displayDate := f.get("display_date")
	if displayDate == "" {
		displayDate = "Jan 02"
	}

	// Check for preset formats
	switch displayDate {
	case "mm/dd/yyyy":
		return "01/02"
	case "yyyy-mm-dd":
		return "01-02"
	case "dd/mm/yyyy":
		return "02/01"
	default:
		// For custom formats, try to derive a short version by removing year patterns
		short := displayDate
		// Remove common year patterns
		short = strings.ReplaceAll(short, "2006", "")
		short = strings.ReplaceAll(short, "/06", "")
		short = strings.ReplaceAll(short, "-06", "")
		short = strings.ReplaceAll(short, " 06", "")
		short = strings.TrimSpace(short)
		short = strings.Trim(short, "/-")
		if short == "" {
			return "Jan 02" // fallback
		}
		return short
	}
}

// getTimeFormat returns the Go time format string for times.
func (f *Formatter) getTimeFormat() string {
	displayTime := f.get("display_time")
	if displayTime == "" {
		displayTime = "24h"
	}

	switch displayTime {
	case "12h":
		return "3:04 PM"
	case "24h":
		fallthrough
	default:
		return "15:04"
	}
}

// getTimeFormatFull returns the Go time format string for times with seconds.
func (f *Formatter) getTimeFormatFull() string {
	displayTime := f.get("display_time")
	if displayTime == "" {
		displayTime = "24h"
	}

	switch displayTime {
	case "12h":
		return "3:04:05 PM"
	case "24h":
		fallthrough
	default:
		return "15:04:05"
	}
}
