package temporal

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocalTime_Valid(t *testing.T) {
	lt, err := NewLocalTime(14, 30, 0, 250)
	require.NoError(t, err)
	assert.Equal(t, "14:30:00.250", lt.String())
	assert.Equal(t, 52200250, lt.MillisOfDay())
}

func TestNewLocalTime_OutOfRange(t *testing.T) {
	cases := [][4]int{
		{24, 0, 0, 0},
		{-1, 0, 0, 0},
		{0, 60, 0, 0},
		{0, 0, 60, 0},
		{0, 0, 0, 1000},
	}
	for _, c := range cases {
		_, err := NewLocalTime(c[0], c[1], c[2], c[3])
		require.Error(t, err)

		var convErr *ConversionError
		require.True(t, errors.As(err, &convErr))
		assert.Equal(t, ErrCodeOutOfRange, convErr.Code)
	}
}

func TestOffsetTime_AtUTC(t *testing.T) {
	lt, err := NewLocalTime(14, 30, 0, 250)
	require.NoError(t, err)

	shifted := OffsetTime{Time: lt, OffsetSec: 7 * 3600}.AtUTC()
	assert.Equal(t, 0, shifted.OffsetSec)
	assert.Equal(t, "07:30:00.250", shifted.Time.String())
}

func TestOffsetTime_AtUTC_WrapsAroundMidnight(t *testing.T) {
	lt, err := NewLocalTime(1, 30, 0, 0)
	require.NoError(t, err)

	shifted := OffsetTime{Time: lt, OffsetSec: 2 * 3600}.AtUTC()
	assert.Equal(t, "23:30:00.000", shifted.Time.String())

	lt, err = NewLocalTime(23, 30, 0, 0)
	require.NoError(t, err)

	shifted = OffsetTime{Time: lt, OffsetSec: -2 * 3600}.AtUTC()
	assert.Equal(t, "01:30:00.000", shifted.Time.String())
}

func TestOffsetTime_AtUTC_AlreadyZero(t *testing.T) {
	lt, err := NewLocalTime(14, 30, 0, 250)
	require.NoError(t, err)

	ot := OffsetTime{Time: lt, OffsetSec: 0}
	assert.Equal(t, ot, ot.AtUTC())
}

func TestConstructorsTruncateToMillis(t *testing.T) {
	instant := time.Date(2024, time.January, 15, 10, 30, 0, 123456789, time.UTC)

	zdt := NewZonedDateTime(instant, time.UTC)
	assert.Equal(t, 123000000, zdt.T.Nanosecond())

	odt := NewOffsetDateTime(instant, 0)
	assert.Equal(t, 123000000, odt.T.Nanosecond())

	ldt := NewLocalDateTime(instant)
	assert.Equal(t, 123000000, ldt.T.Nanosecond())
}

func TestNewOffsetDateTime_OffsetName(t *testing.T) {
	instant := time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC)

	odt := NewOffsetDateTime(instant, -7*3600)
	name, off := odt.T.Zone()
	assert.Equal(t, "-07:00", name)
	assert.Equal(t, -7*3600, off)
	assert.True(t, odt.T.Equal(instant))
}
