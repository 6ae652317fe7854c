package utils

import (
	"strconv"
	"strings"
	"time"
)

// ParseUnix converts a unix-seconds attribute value to a UTC instant.
// Empty or malformed values mean the log carries no instant.
func ParseUnix(s string) *time.Time {
	if s == "" {
		return nil
	}
	secs, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	t := time.Unix(secs, 0).UTC()
	return &t
}

// ParseHourMinute converts an "H:MM" flight-time string to a duration.
func ParseHourMinute(s string) *time.Duration {
	if s == "" {
		return nil
	}
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return nil
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil
	}
	d := time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute
	return &d
}
