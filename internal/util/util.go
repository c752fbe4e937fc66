package util

import (
	"strconv"
	"strings"
	"time"
)

// FormatRupees formats an amount for display, dropping the fraction when it is whole
func FormatRupees(amount float64) string {
	return "₹" + strconv.FormatFloat(amount, 'f', -1, 64)
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// FormatDate renders a backend timestamp as a local calendar date. Values it
// cannot parse are returned unchanged.
func FormatDate(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t.Local().Format("02 Jan 2006")
		}
	}

	return value
}

// OrDash returns value, or "-" when it is blank
func OrDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

// Capitalize upper-cases the first letter of an ASCII word
func Capitalize(word string) string {
	if word == "" {
		return ""
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
