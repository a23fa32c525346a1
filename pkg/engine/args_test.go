package engine

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgs_Int(t *testing.T) {
	tests := []struct {
		name string
		arg  any
		want int
	}{
		{"int", 7, 7},
		{"int64", int64(-7), -7},
		{"uint", uint(5), 5},
		{"uint64 in range", uint64(math.MaxInt), math.MaxInt},
		{"whole float", 3.0, 3},
		{"string", " 12 ", 12},
		{"leading zero", "08", 8},
		{"negative leading zero", "-09", -9},
		{"zero", "000", 0},
		{"exponent", "1e3", 1000},
		{"hex", "0x10", 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Args{tt.arg}.Int(0, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	got, err := Args{}.Int(0, 42)
	require.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestArgs_IntRejectsLossyValues(t *testing.T) {
	tests := []struct {
		name string
		arg  any
	}{
		{"uint64 overflow", uint64(math.MaxUint64)},
		{"uint overflow", uint(math.MaxInt) + 1},
		{"huge float", 1e30},
		{"huge negative float", -1e30},
		{"fraction", 2.5},
		{"nan", math.NaN()},
		{"inf", math.Inf(1)},
		{"huge string", "99999999999999999999"},
		{"fraction string", "2.5"},
		{"word", "ten"},
		{"bool", true},
		{"slice", []int{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Args{tt.arg}.Int(0, 0)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestArgs_Float(t *testing.T) {
	f, err := Args{" 2.5 "}.Float(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 2.5, f)

	f, err = Args{uint64(3)}.Float(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, f)

	_, err = Args{"abc"}.Float(0, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = Args{false}.Float(0, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestArgs_Bool(t *testing.T) {
	b, err := Args{"true"}.Bool(0, false)
	require.NoError(t, err)
	assert.True(t, b)

	b, err = Args{nil}.Bool(0, true)
	require.NoError(t, err)
	assert.True(t, b)

	_, err = Args{"maybe"}.Bool(0, false)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = Args{1}.Bool(0, false)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestArgs_Time(t *testing.T) {
	def := fixedNow.AddDate(-30, 0, 0)
	tests := []struct {
		name string
		arg  any
		want time.Time
	}{
		{"missing", nil, def},
		{"now", "now", fixedNow},
		{"now any case", " NOW ", fixedNow},
		{"rfc3339", "2020-01-02T03:04:05Z", time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)},
		{"date", "2020-01-02", time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"unix string", "86400", time.Unix(86400, 0)},
		{"unix int", 86400, time.Unix(86400, 0)},
		{"time", fixedNow, fixedNow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Args{tt.arg}.Time(0, def, fixedNow)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s, want %s", got, tt.want)
		})
	}

	_, err := Args{"yesterday-ish"}.Time(0, def, fixedNow)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = Args{1.5}.Time(0, def, fixedNow)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestArgs_Duration(t *testing.T) {
	tests := []struct {
		name string
		arg  any
		want time.Duration
	}{
		{"missing", nil, time.Minute},
		{"seconds", 90, 90 * time.Second},
		{"seconds string", "3600", time.Hour},
		{"duration string", "-48h", -48 * time.Hour},
		{"duration", 5 * time.Millisecond, 5 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Args{tt.arg}.Duration(0, time.Minute)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Args{"soon"}.Duration(0, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = Args{int64(math.MaxInt64)}.Duration(0, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
