package app

import (
	"fmt"
	"time"
)

// FormatBytes renders a byte count with binary units, one decimal from KB up.
func FormatBytes(b uint64) string {
	const unit = 1024
	switch {
	case b < unit:
		return fmt.Sprintf("%d B", b)
	case b < unit*unit:
		return fmt.Sprintf("%.1f KB", float64(b)/unit)
	case b < unit*unit*unit:
		return fmt.Sprintf("%.1f MB", float64(b)/(unit*unit))
	default:
		return fmt.Sprintf("%.2f GB", float64(b)/(unit*unit*unit))
	}
}

// FormatRate renders a bytes-per-second rate.
func FormatRate(bps float64) string {
	const unit = 1024.0
	switch {
	case bps < unit:
		return fmt.Sprintf("%.0f B/s", bps)
	case bps < unit*unit:
		return fmt.Sprintf("%.1f KB/s", bps/unit)
	case bps < unit*unit*unit:
		return fmt.Sprintf("%.1f MB/s", bps/(unit*unit))
	default:
		return fmt.Sprintf("%.2f GB/s", bps/(unit*unit*unit))
	}
}

// FormatUptime renders seconds as "3d 4h 12m" dropping leading zero parts.
func FormatUptime(sec uint64) string {
	d := time.Duration(sec) * time.Second
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	mins := int(d.Minutes()) % 60
	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, mins)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}

// Truncate shortens s to at most max runes, ending with an ellipsis.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
