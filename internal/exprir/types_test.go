package exprir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseTypeForName(t *testing.T) {
	tests := []struct {
		name string
		want BaseType
	}{
		{"timestamp", TypeTimestamp},
		{"timestamp with time zone", TypeTimestampTZ},
		{"timestamp(3) with time zone", TypeTimestampTZ},
		{"TIME", TypeTime},
		{"time with time zone", TypeTimeTZ},
		{"time(3)", TypeTime},
		{"date", TypeDate},
		{"  Timestamp  ", TypeTimestamp},
		{"varchar", TypeUnknown},
		{"decimal(10,2)", TypeUnknown},
		{"", TypeUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BaseTypeForName(tt.name), "name %q", tt.name)
	}
}

func TestZoneShiftable(t *testing.T) {
	assert.True(t, TypeTimestamp.ZoneShiftable())
	assert.True(t, TypeTimestampTZ.ZoneShiftable())
	assert.True(t, TypeTime.ZoneShiftable())
	assert.True(t, TypeTimeTZ.ZoneShiftable())

	assert.False(t, TypeDate.ZoneShiftable())
	assert.False(t, TypeUnknown.ZoneShiftable())
}

func TestTypeOf(t *testing.T) {
	assert.Equal(t, TypeTimestamp, TypeOf(ColumnRef{Name: "ts", Type: TypeTimestamp}))
	assert.Equal(t, TypeTimestampTZ, TypeOf(Cast{Inner: StringLit{}, TypeName: "timestamp with time zone"}))
	assert.Equal(t, TypeTimestampTZ, TypeOf(AtTimeZone{Inner: ColumnRef{Name: "ts"}, Zone: "UTC"}))
	assert.Equal(t, TypeTimestampTZ, TypeOf(FuncCall{Name: "now"}))
	assert.Equal(t, TypeUnknown, TypeOf(FuncCall{Name: "concat"}))
	assert.Equal(t, TypeUnknown, TypeOf(IntLit{Value: 1}))
}
