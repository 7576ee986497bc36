package universe

import (
	"fmt"
	"strings"
)

var countSuffixes = []string{"k", "M", "B", "T", "Q"}

// FormatCount renders a population count with a metric suffix: 1234 becomes
// "1.23k", 1500000 becomes "1.5M". Counts below one thousand print as-is.
func FormatCount(count uint64) string {
	if count < 1_000 {
		return fmt.Sprintf("%d", count)
	}

	value := float64(count)
	idx := 0
	for value >= 1_000.0 && idx < len(countSuffixes) {
		value /= 1_000.0
		idx++
	}

	formatted := fmt.Sprintf("%.2f", value)
	cleaned := strings.TrimRight(strings.TrimRight(formatted, "0"), ".")
	return cleaned + countSuffixes[idx-1]
}
