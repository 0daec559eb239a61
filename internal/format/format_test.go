package format_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aurelia-studios/aurelia-web/internal/format"
)

func TestCounter(t *testing.T) {
	t.Parallel()

	require.Equal(t, "12,500", format.Counter(12500))
	require.Equal(t, "850", format.Counter(850))
	require.Equal(t, "4.9", format.Counter(4.9))
	require.Equal(t, "0", format.Counter(0))
}

func TestCompactCount(t *testing.T) {
	t.Parallel()

	require.Equal(t, "8", format.CompactCount(8))
	require.Equal(t, "120", format.CompactCount(120))
	require.Equal(t, "999", format.CompactCount(999))
	require.Equal(t, "1.2k", format.CompactCount(1200))
}

func TestStars(t *testing.T) {
	t.Parallel()

	require.Equal(t, "★★★★★", format.Stars(5))
	require.Equal(t, "★★★☆☆", format.Stars(3))
	require.Equal(t, "☆☆☆☆☆", format.Stars(0))
	require.Equal(t, "☆☆☆☆☆", format.Stars(-2), "underflow clamps")
	require.Equal(t, "★★★★★", format.Stars(9), "overflow clamps")
}

func TestDate(t *testing.T) {
	t.Parallel()

	require.Equal(t, "9 March 2026", format.Date(time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)))
	require.Empty(t, format.Date(time.Time{}))
}

func TestRelDate(t *testing.T) {
	t.Parallel()

	require.Empty(t, format.RelDate(time.Time{}))
	require.Contains(t, format.RelDate(time.Now().Add(-48*time.Hour)), "ago")
}
