package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseDuration parses durations with a day suffix in addition to time.ParseDuration units.
// ParseDuration 解析时长，额外支持 d（天）后缀，如 7d、24h、30m
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}

	if strings.HasSuffix(s, "d") {
		days, err := strconv.ParseFloat(strings.TrimSuffix(s, "d"), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q: %w", s, err)
		}
		return time.Duration(days * 24 * float64(time.Hour)), nil
	}

	return time.ParseDuration(s)
}
