package convert

import (
	"fmt"
)

const gibibyte = 1024 * 1024 * 1024

// BytesToGigabytes converts a byte count to whole GiB, truncating.
func BytesToGigabytes(bytes uint64) uint64 {
	return bytes / gibibyte
}

func BytesToHumanReadable(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	// Units: KB, MB, GB, TB, PB, EB
	units := []string{"KB", "MB", "GB", "TB", "PB", "EB"}

	if exp >= len(units) {
		return fmt.Sprintf("%.1f B", float64(bytes))
	}

	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), units[exp])
}
