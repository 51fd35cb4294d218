package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-08-29")
	require.NoError(t, err)
	assert.Equal(t, Date("2025-08-29"), d)

	for _, bad := range []string{"", "2025-8-29", "29-08-2025", "2025-13-01", "yesterday"} {
		_, err := ParseDate(bad)
		assert.ErrorIs(t, err, ErrInvalidInput, "input %q", bad)
	}
}

func TestDateAddDays(t *testing.T) {
	d := Date("2025-08-29")
	assert.Equal(t, Date("2025-08-30"), d.AddDays(1))
	assert.Equal(t, Date("2025-08-23"), d.AddDays(-6))
	// Month and year boundaries.
	assert.Equal(t, Date("2025-09-01"), d.AddDays(3))
	assert.Equal(t, Date("2024-12-31"), Date("2025-01-01").AddDays(-1))
}

func TestDateBefore(t *testing.T) {
	assert.True(t, Date("2025-08-28").Before("2025-08-29"))
	assert.False(t, Date("2025-08-29").Before("2025-08-29"))
	assert.False(t, Date("2025-09-01").Before("2025-08-29"))
}
