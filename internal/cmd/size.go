package cmd

import (
	"fmt"
	"strconv"
	"strings"
)

// parseByteSize parses a human-readable byte count such as "4096", "256MB",
// or "1.5 GB". Suffixes are binary multiples and case-insensitive.
func parseByteSize(s string) (int64, error) {
	trimmed := strings.TrimSpace(s)
	upper := strings.ToUpper(trimmed)

	var multiplier int64 = 1
	switch {
	case strings.HasSuffix(upper, "TB"):
		multiplier = 1 << 40
		trimmed = trimmed[:len(trimmed)-2]
	case strings.HasSuffix(upper, "GB"):
		multiplier = 1 << 30
		trimmed = trimmed[:len(trimmed)-2]
	case strings.HasSuffix(upper, "MB"):
		multiplier = 1 << 20
		trimmed = trimmed[:len(trimmed)-2]
	case strings.HasSuffix(upper, "KB"):
		multiplier = 1 << 10
		trimmed = trimmed[:len(trimmed)-2]
	case strings.HasSuffix(upper, "B"):
		trimmed = trimmed[:len(trimmed)-1]
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(trimmed), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid byte size %q", s)
	}

	return int64(value * float64(multiplier)), nil
}
