package dateutil

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Display and storage layouts
const (
	DisplayLayout = "02/01/2006"
	StorageLayout = "2006-01-02"
)

// Accepted year range for member dates
const (
	MinYear = 1900
	MaxYear = 2100
)

var (
	ErrInvalidDayMonth = errors.New("invalid day/month, expected DD/MM")

	displayPattern  = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)
	dayMonthPattern = regexp.MustCompile(`^(\d{2})/(\d{2})$`)
	nonDigits       = regexp.MustCompile(`[^\d]`)
)

// ToDisplay formats a stored date as DD/MM/YYYY.
// A nil or zero date yields an empty string.
func ToDisplay(date *time.Time) string {
	if date == nil || date.IsZero() {
		return ""
	}
	return date.Format(DisplayLayout)
}

// FormatStorage formats a stored date as YYYY-MM-DD.
func FormatStorage(date *time.Time) string {
	if date == nil || date.IsZero() {
		return ""
	}
	return date.Format(StorageLayout)
}

// ToStorage parses a DD/MM/YYYY string into a plain calendar date (UTC midnight).
// It returns nil when the input is empty, malformed or not a real date.
func ToStorage(display string) *time.Time {
	display = strings.TrimSpace(display)
	if display == "" {
		return nil
	}

	m := displayPattern.FindStringSubmatch(display)
	if m == nil {
		return nil
	}

	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])

	if year < MinYear || year > MaxYear || month < 1 || month > 12 {
		return nil
	}

	// time.Date normalizes overflow (31/02 -> 02/03), so compare the parts back
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || int(date.Month()) != month || date.Day() != day {
		return nil
	}
	return &date
}

// IsValidDisplay reports whether s is empty or a valid DD/MM/YYYY date.
func IsValidDisplay(s string) bool {
	if strings.TrimSpace(s) == "" {
		return true
	}
	return ToStorage(s) != nil
}

// ParseDayMonth parses a DD/MM string with a lenient range check:
// month in 1..12 and day in 1..31, regardless of the month length.
func ParseDayMonth(s string) (day, month int, err error) {
	m := dayMonthPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, 0, ErrInvalidDayMonth
	}
	day, _ = strconv.Atoi(m[1])
	month, _ = strconv.Atoi(m[2])
	if !ValidDayMonth(day, month) {
		return 0, 0, ErrInvalidDayMonth
	}
	return day, month, nil
}

// ValidDayMonth is the syntactic range check used by birthday lookups.
func ValidDayMonth(day, month int) bool {
	return month >= 1 && month <= 12 && day >= 1 && day <= 31
}

// MaskDisplay turns partially typed input into the DD/MM/YYYY shape.
// Non-digits are dropped and at most eight digits are kept.
func MaskDisplay(input string) string {
	digits := nonDigits.ReplaceAllString(input, "")
	switch {
	case len(digits) <= 2:
		return digits
	case len(digits) <= 4:
		return digits[:2] + "/" + digits[2:]
	default:
		if len(digits) > 8 {
			digits = digits[:8]
		}
		return digits[:2] + "/" + digits[2:4] + "/" + digits[4:]
	}
}

// MaskDayMonth turns partially typed input into the DD/MM shape.
func MaskDayMonth(input string) string {
	digits := nonDigits.ReplaceAllString(input, "")
	if len(digits) <= 2 {
		return digits
	}
	if len(digits) > 4 {
		digits = digits[:4]
	}
	return digits[:2] + "/" + digits[2:]
}
