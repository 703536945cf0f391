package utils

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDurationMs(t *testing.T) {
	tests := []struct {
		name string
		in   sql.NullInt64
		want string
	}{
		{"null renders as N/A", sql.NullInt64{}, "N/A"},
		{"ninety seconds", sql.NullInt64{Int64: 90000, Valid: true}, "0h 1m 30s"},
		{"zero", sql.NullInt64{Int64: 0, Valid: true}, "0h 0m 0s"},
		{"one hour", sql.NullInt64{Int64: 3600000, Valid: true}, "1h 0m 0s"},
		{"mixed", sql.NullInt64{Int64: 3_600_000 + 25*60_000 + 42_000, Valid: true}, "1h 25m 42s"},
		{"sub-second truncates", sql.NullInt64{Int64: 999, Valid: true}, "0h 0m 0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDurationMs(tt.in))
		})
	}
}
