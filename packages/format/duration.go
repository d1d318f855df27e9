package format

import "fmt"

// FormatDuration renders elapsed milliseconds for display: plain
// milliseconds below one second, seconds with two decimals below one
// minute, minutes with two decimals above that.
func FormatDuration(ms int64) string {
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	if ms < 60000 {
		return fmt.Sprintf("%.2fs", float64(ms)/1000)
	}
	return fmt.Sprintf("%.2fm", float64(ms)/60000)
}

var sizeUnits = []string{"B", "KB", "MB", "GB"}

// FormatSize renders a byte count using binary units. Plain bytes print
// as an integer; larger units keep two decimals.
func FormatSize(bytes int) string {
	size := float64(bytes)
	unit := 0

	for size >= 1024 && unit < len(sizeUnits)-1 {
		size /= 1024
		unit++
	}

	if unit == 0 {
		return fmt.Sprintf("%d %s", bytes, sizeUnits[0])
	}
	return fmt.Sprintf("%.2f %s", size, sizeUnits[unit])
}
