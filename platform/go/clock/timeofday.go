// Package clock converts wall-clock times of day to and from offsets since midnight.
package clock

import (
	"fmt"
	"strings"
	"time"
)

var layouts = []string{"15:04", "15:04:05"}

// ParseTimeOfDay parses "HH:MM" (or "HH:MM:SS") into an offset from midnight.
func ParseTimeOfDay(value string) (time.Duration, error) {
	trimmed := strings.TrimSpace(value)
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, trimmed)
		if err == nil {
			return time.Duration(parsed.Hour())*time.Hour +
				time.Duration(parsed.Minute())*time.Minute +
				time.Duration(parsed.Second())*time.Second, nil
		}
	}
	return 0, fmt.Errorf("invalid time of day %q", value)
}

// FormatTimeOfDay renders an offset from midnight as "HH:MM". Seconds are dropped.
func FormatTimeOfDay(offset time.Duration) string {
	if offset < 0 {
		offset = 0
	}
	hours := int(offset / time.Hour)
	minutes := int((offset % time.Hour) / time.Minute)
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

// Minutes returns the whole minutes between start and end, zero when end is not after start.
func Minutes(start, end time.Duration) int {
	if end <= start {
		return 0
	}
	return int((end - start) / time.Minute)
}
