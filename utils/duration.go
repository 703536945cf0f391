package utils

import (
	"database/sql"
	"fmt"
)

// FormatDurationMs renders a millisecond duration as whole hours,
// minutes and seconds. A NULL duration renders as "N/A".
func FormatDurationMs(d sql.NullInt64) string {
	if !d.Valid {
		return "N/A"
	}
	ms := d.Int64
	hours := ms / 3600000
	minutes := (ms % 3600000) / 60000
	seconds := (ms % 60000) / 1000
	return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
}
