// Package util holds small formatting helpers shared by upload paths and their logs.
package util

import (
	"fmt"
	"time"
)

// FormatBytes renders a byte count with decimal units, matching how upload limits are configured (6000000 -> "6.0 MB").
func FormatBytes(bytes int64) string {
	const unit = 1000
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	const prefixes = "kMGTPE"
	value := float64(bytes)
	exp := -1
	for value >= unit && exp < len(prefixes)-1 {
		value /= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", value, prefixes[exp])
}

// FormatDuration renders transfer times: milliseconds below a second, then "5m10s"-style output.
func FormatDuration(duration time.Duration) string {
	if duration < time.Second {
		return fmt.Sprintf("%dms", duration.Milliseconds())
	}

	duration = duration.Round(time.Second)
	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	return fmt.Sprintf("%dm%ds", int(duration.Minutes()), int(duration.Seconds())%60)
}
