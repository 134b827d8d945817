package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeToMinutes converts a 12-hour clock string like "09:00 AM" to minutes
// since midnight. The period marker is separated on the last space, so
// inputs with stray inner whitespace are rejected by the hour/minute parse.
func TimeToMinutes(timeStr string) (int, error) {
	idx := strings.LastIndex(timeStr, " ")
	if idx < 0 {
		return 0, fmt.Errorf("invalid time %q: missing AM/PM marker", timeStr)
	}
	timePart := timeStr[:idx]
	period := timeStr[idx+1:]
	if period != "AM" && period != "PM" {
		return 0, fmt.Errorf("invalid time %q: period must be AM or PM", timeStr)
	}

	parts := strings.Split(timePart, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: expected hh:mm", timeStr)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: bad hour: %w", timeStr, err)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: bad minute: %w", timeStr, err)
	}
	if hours < 1 || hours > 12 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid time %q: out of range", timeStr)
	}

	if period == "PM" && hours != 12 {
		hours += 12
	} else if period == "AM" && hours == 12 {
		hours = 0
	}

	return hours*60 + minutes, nil
}

// MinutesToTime converts minutes since midnight back to a 12-hour clock
// string like "09:00 AM".
func MinutesToTime(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60

	period := "AM"
	if hours >= 12 {
		period = "PM"
	}

	if hours == 0 {
		hours = 12
	} else if hours > 12 {
		hours -= 12
	}

	return fmt.Sprintf("%02d:%02d %s", hours, mins, period)
}
