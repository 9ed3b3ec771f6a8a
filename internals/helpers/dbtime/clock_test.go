package dbtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClock_UsesGymZone(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*3600)
	// 20:00 UTC = 03:00 WIB besoknya
	c := Clock{Loc: jakarta, NowFn: func() time.Time { return time.Date(2024, 5, 31, 20, 0, 0, 0, time.UTC) }}

	assert.Equal(t, "2024-06-01", c.Today())
	assert.Equal(t, "2024-06", c.Month())
	assert.Equal(t, "2024-06-08", c.AddDays(7))
	assert.Equal(t, "03:00 AM", c.Now().Format(TimeOfDayLayout))
}

func TestClock_ZeroValue(t *testing.T) {
	var c Clock
	assert.Equal(t, time.UTC, c.Now().Location())
}

func TestIsDateIsMonth(t *testing.T) {
	assert.True(t, IsDate("2024-02-29"))
	assert.False(t, IsDate("2023-02-29"))
	assert.False(t, IsDate("2024-6-1"))
	assert.True(t, IsMonth("2024-06"))
	assert.False(t, IsMonth("2024-13"))
}
