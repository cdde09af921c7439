package istime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()

	in := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	once := Normalize(in)
	twice := Normalize(once)

	assert.True(t, once.Equal(twice))
	assert.Equal(t, once.Location(), twice.Location())
}

func TestNormalizeConvertsAware(t *testing.T) {
	t.Parallel()

	utc := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	got := Normalize(utc)

	// IST is UTC+05:30, no DST.
	assert.Equal(t, 15, got.Hour())
	assert.Equal(t, 0, got.Minute())
	assert.True(t, got.Equal(utc), "normalization must not shift the instant")
}

func TestParseNaiveIsIST(t *testing.T) {
	t.Parallel()

	// Offsetless input is taken as already-IST, not shifted. Clients that
	// accidentally omit the offset get this reinterpretation; the behavior
	// is load-bearing for studio-entered times.
	got, err := Parse("2026-06-01T18:00:00")
	require.NoError(t, err)

	assert.Equal(t, 18, got.Hour())

	_, offset := got.Zone()
	assert.Equal(t, 5*3600+30*60, offset)
}

func TestParseAwareConverts(t *testing.T) {
	t.Parallel()

	got, err := Parse("2026-06-01T12:30:00Z")
	require.NoError(t, err)

	assert.Equal(t, 18, got.Hour())
	assert.Equal(t, 0, got.Minute())
}

func TestParseInvalid(t *testing.T) {
	t.Parallel()

	_, err := Parse("not-a-date")
	require.Error(t, err)

	_, err = Parse("01.06.2026 18:00")
	require.Error(t, err)
}

func TestIsPast(t *testing.T) {
	t.Parallel()

	assert.True(t, IsPast(Now().Add(-time.Second)))
	assert.False(t, IsPast(Now().Add(time.Hour)))
}

func TestIsPastStrict(t *testing.T) {
	t.Parallel()

	// Comparison is strictly less-than, so a moment safely in the future is
	// never past even by a hair.
	soon := Now().Add(50 * time.Millisecond)
	assert.False(t, IsPast(soon))
}
