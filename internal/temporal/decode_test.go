package temporal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_NullAlwaysAbsent(t *testing.T) {
	for _, wire := range []WireType{WireTime, WireTimestamp} {
		for _, native := range []string{"time", "time with time zone", "timestamp", "timestamp with time zone"} {
			v, ok, err := Decode(wire, native, nil, time.UTC)
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Nil(t, v)
		}
	}
}

func TestDecode_TimeWithZoneStaysAtUTC(t *testing.T) {
	raw := time.Date(1970, time.January, 1, 14, 30, 0, 250000000, time.UTC)

	v, ok, err := Decode(WireTime, "time with time zone", raw, nil)
	require.NoError(t, err)
	require.True(t, ok)

	// Presto returns zone-aware times already at offset zero; the decoded
	// value is pinned at UTC, not shifted further.
	ot, isOffset := v.(OffsetTime)
	require.True(t, isOffset)
	assert.Equal(t, 0, ot.OffsetSec)
	assert.Equal(t, "14:30:00.250", ot.Time.String())
}

func TestDecode_NaiveTimeIsLocal(t *testing.T) {
	raw := time.Date(1970, time.January, 1, 14, 30, 0, 250000000, time.UTC)

	v, ok, err := Decode(WireTime, "time", raw, nil)
	require.NoError(t, err)
	require.True(t, ok)

	lt, isLocal := v.(LocalTime)
	require.True(t, isLocal)
	assert.Equal(t, "14:30:00.250", lt.String())
}

func TestDecode_TimeFromMillisOfDay(t *testing.T) {
	// Milliseconds must survive the decode; 52200250ms = 14:30:00.250.
	v, ok, err := Decode(WireTime, "time", int64(52200250), nil)
	require.NoError(t, err)
	require.True(t, ok)

	lt, isLocal := v.(LocalTime)
	require.True(t, isLocal)
	assert.Equal(t, 250, lt.Milli)
	assert.Equal(t, "14:30:00.250", lt.String())
}

func TestDecode_TimeFromText(t *testing.T) {
	v, ok, err := Decode(WireTime, "time", "14:30:00.250", nil)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "14:30:00.250", v.(LocalTime).String())
}

func TestDecode_TimeWithZoneFromText(t *testing.T) {
	// Zone-aware cells render with an offset suffix; the suffix folds into
	// the value and the result sits at offset zero.
	tests := []struct {
		raw  string
		want string
	}{
		{"14:30:00.250+00:00", "14:30:00.250"},
		{"16:30:00.250+02:00", "14:30:00.250"},
		{"07:30:00.250 -07:00", "14:30:00.250"},
	}
	for _, tt := range tests {
		v, ok, err := Decode(WireTime, "time with time zone", tt.raw, nil)
		require.NoError(t, err, tt.raw)
		require.True(t, ok, tt.raw)

		ot, isOffset := v.(OffsetTime)
		require.True(t, isOffset, tt.raw)
		assert.Equal(t, 0, ot.OffsetSec, tt.raw)
		assert.Equal(t, tt.want, ot.Time.String(), tt.raw)
	}
}

func TestDecode_TimestampWithOffsetNormalizesToUTC(t *testing.T) {
	v, ok, err := Decode(WireTimestamp, "timestamp with time zone",
		"2024-01-15 10:30:00.000 -07:00", nil)
	require.NoError(t, err)
	require.True(t, ok)

	odt, isOffset := v.(OffsetDateTime)
	require.True(t, isOffset)
	_, off := odt.T.Zone()
	assert.Equal(t, 0, off)
	assert.True(t, odt.T.Equal(time.Date(2024, time.January, 15, 17, 30, 0, 0, time.UTC)))
}

func TestDecode_TimestampWithZoneNameNormalizesToUTC(t *testing.T) {
	v, ok, err := Decode(WireTimestamp, "timestamp with time zone",
		"2024-01-15 10:30:00.000 America/Denver", nil)
	require.NoError(t, err)
	require.True(t, ok)

	odt, isOffset := v.(OffsetDateTime)
	require.True(t, isOffset)
	assert.True(t, odt.T.Equal(time.Date(2024, time.January, 15, 17, 30, 0, 0, time.UTC)))
}

func TestDecode_ZoneAwareTimestampFromDriverValue(t *testing.T) {
	denver, err := time.LoadLocation("America/Denver")
	require.NoError(t, err)

	// A zone-aware column storing a UTC instant arrives from the driver as
	// a time.Time located at time.UTC. The native type name, not the
	// location, decides zone-awareness: no session-zone undo, same instant.
	instant := time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)
	v, ok, err := Decode(WireTimestamp, "timestamp with time zone", instant, denver)
	require.NoError(t, err)
	require.True(t, ok)

	odt, isOffset := v.(OffsetDateTime)
	require.True(t, isOffset)
	_, off := odt.T.Zone()
	assert.Equal(t, 0, off)
	assert.True(t, odt.T.Equal(instant))

	// Same column with a non-UTC location normalizes to the same instant.
	v, ok, err = Decode(WireTimestamp, "timestamp with time zone", instant.In(denver), denver)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, v.(OffsetDateTime).T.Equal(instant))
}

func TestDecode_NaiveTimestampFromDriverValue(t *testing.T) {
	denver, err := time.LoadLocation("America/Denver")
	require.NoError(t, err)

	// The driver hands naive cells over as UTC-located time.Time values;
	// their wall components still carry Presto's session-zone shift, which
	// decoding undoes: 05:00 in Denver (UTC-7 in January) is 12:00 UTC.
	raw := time.Date(2024, time.January, 15, 5, 0, 0, 0, time.UTC)
	v, ok, err := Decode(WireTimestamp, "timestamp", raw, denver)
	require.NoError(t, err)
	require.True(t, ok)

	ldt, isLocal := v.(LocalDateTime)
	require.True(t, isLocal)
	assert.Equal(t, "2024-01-15T12:00:00.000", ldt.T.Format("2006-01-02T15:04:05.000"))
}

func TestDecode_NaiveTimestampUndoesSessionShift(t *testing.T) {
	denver, err := time.LoadLocation("America/Denver")
	require.NoError(t, err)

	// Presto has rendered a stored instant in session-local wall time.
	// Decoding must reinterpret it in the session zone and re-express it
	// in UTC: 05:00 in Denver (UTC-7 in January) is 12:00 UTC.
	v, ok, err := Decode(WireTimestamp, "timestamp", "2024-01-15 05:00:00.000", denver)
	require.NoError(t, err)
	require.True(t, ok)

	ldt, isLocal := v.(LocalDateTime)
	require.True(t, isLocal)
	assert.Equal(t, "2024-01-15T12:00:00.000", ldt.T.Format("2006-01-02T15:04:05.000"))
}

func TestDecode_NaiveTimestampWithoutSessionZoneUnchanged(t *testing.T) {
	v, ok, err := Decode(WireTimestamp, "timestamp", "2024-01-15 05:00:00.000", nil)
	require.NoError(t, err)
	require.True(t, ok)

	ldt, isLocal := v.(LocalDateTime)
	require.True(t, isLocal)
	assert.Equal(t, "2024-01-15T05:00:00.000", ldt.T.Format("2006-01-02T15:04:05.000"))
}

func TestDecode_RoundTripRecoversInstant(t *testing.T) {
	denver, err := time.LoadLocation("America/Denver")
	require.NoError(t, err)

	// Outbound-then-inbound: take an instant, render it the way Presto
	// renders a naive timestamp in session-local time, decode, and expect
	// the original instant back in UTC components.
	instant := time.Date(2024, time.March, 1, 12, 34, 56, 789000000, time.UTC)
	raw := instant.In(denver).Format("2006-01-02 15:04:05.000")

	v, ok, err := Decode(WireTimestamp, "timestamp", raw, denver)
	require.NoError(t, err)
	require.True(t, ok)

	ldt, isLocal := v.(LocalDateTime)
	require.True(t, isLocal)
	assert.Equal(t, "2024-03-01T12:34:56.789", ldt.T.Format("2006-01-02T15:04:05.000"))
}

func TestDecode_UnparseableTextDegradesToAbsent(t *testing.T) {
	v, ok, err := Decode(WireTimestamp, "timestamp", "certainly not a timestamp", time.UTC)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestDecode_UnsupportedRawTypeIsAnError(t *testing.T) {
	_, _, err := Decode(WireTimestamp, "timestamp", 3.14, nil)
	require.Error(t, err)

	_, _, err = Decode(WireTime, "time", 3.14, nil)
	require.Error(t, err)
}

func TestParseTemporal_Forms(t *testing.T) {
	tests := []struct {
		text string
		kind string
	}{
		{"2024-01-15 10:30:00.000 -07:00", "offset"},
		{"2024-01-15T10:30:00.123Z", "offset"},
		{"2024-01-15 10:30:00.000 UTC", "zoned"},
		{"2024-01-15 10:30:00.000 America/Denver", "zoned"},
		{"2024-01-15 10:30:00", "local"},
		{"2024-01-15T10:30:00.5", "local"},
		{"2024-01-15", "local"},
	}
	for _, tt := range tests {
		v, ok := parseTemporal(tt.text)
		require.True(t, ok, "parse %q", tt.text)
		switch tt.kind {
		case "offset":
			assert.IsType(t, OffsetDateTime{}, v, "parse %q", tt.text)
		case "zoned":
			assert.IsType(t, ZonedDateTime{}, v, "parse %q", tt.text)
		case "local":
			assert.IsType(t, LocalDateTime{}, v, "parse %q", tt.text)
		}
	}
}

func TestParseTemporal_Rejects(t *testing.T) {
	for _, text := range []string{"", "  ", "tomorrow", "10:30:00", "2024-13-45 99:99:99"} {
		_, ok := parseTemporal(text)
		assert.False(t, ok, "parse %q", text)
	}
}

func TestWireTypeForName(t *testing.T) {
	wire, ok := WireTypeForName("time")
	require.True(t, ok)
	assert.Equal(t, WireTime, wire)

	wire, ok = WireTypeForName("time with time zone")
	require.True(t, ok)
	assert.Equal(t, WireTime, wire)

	wire, ok = WireTypeForName("timestamp(3) with time zone")
	require.True(t, ok)
	assert.Equal(t, WireTimestamp, wire)

	_, ok = WireTypeForName("varchar")
	assert.False(t, ok)
}
