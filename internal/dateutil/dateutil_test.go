package dateutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValidDate(t *testing.T) {
	ts, err := Parse("2025-06-15")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-15", Format(ts))
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, day := range []string{"", "2025-6-15", "15-06-2025", "2025-13-01", "2025-02-30", "yesterday"} {
		_, err := Parse(day)
		assert.Error(t, err, "expected %q to be rejected", day)
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("2025-01-31"))
	assert.False(t, Valid("2025-01-32"))
	assert.False(t, Valid("not-a-date"))
}

func TestAddDays(t *testing.T) {
	got, err := AddDays("2025-06-15", 3)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-18", got)

	got, err = AddDays("2025-06-15", -20)
	require.NoError(t, err)
	assert.Equal(t, "2025-05-26", got)
}

func TestAddDaysAcrossMonthEnd(t *testing.T) {
	got, err := AddDays("2025-01-31", 1)
	require.NoError(t, err)
	assert.Equal(t, "2025-02-01", got)
}

func TestLastNDays(t *testing.T) {
	days, err := LastNDays("2025-06-15", 7)
	require.NoError(t, err)
	require.Len(t, days, 7)
	assert.Equal(t, "2025-06-09", days[0])
	assert.Equal(t, "2025-06-15", days[6])
}

func TestLastNDaysAcrossYearBoundary(t *testing.T) {
	days, err := LastNDays("2025-01-02", 7)
	require.NoError(t, err)
	assert.Equal(t, "2024-12-27", days[0])
	assert.Equal(t, "2025-01-02", days[6])
}

func TestNextNDays(t *testing.T) {
	days, err := NextNDays("2025-06-15", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-06-15", "2025-06-16", "2025-06-17"}, days)
}

func TestInWindow(t *testing.T) {
	ref := "2025-06-15"

	assert.True(t, InWindow("2025-06-15", ref, 7))
	assert.True(t, InWindow("2025-06-09", ref, 7))
	assert.False(t, InWindow("2025-06-08", ref, 7))
	assert.False(t, InWindow("2025-06-16", ref, 7))
}

func TestTodayIsValid(t *testing.T) {
	assert.True(t, Valid(Today()))
}
