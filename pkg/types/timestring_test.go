package types

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 6, 15, 9, 5, 30, 0, time.UTC))
	assert.Equal(t, TimeString("09:05"), ts)
}

func TestNewTimeStringFromString(t *testing.T) {
	cases := []struct {
		in      string
		want    TimeString
		wantErr bool
	}{
		{"09:00", "09:00", false},
		{"00:00", "00:00", false},
		{"23:59", "23:59", false},
		{"9:00", "", true},
		{"09:00 AM", "", true},
		{"24:00", "", true},
		{"12:60", "", true},
		{"", "", true},
		{"morning", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := NewTimeStringFromString(tc.in)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, TimeString("14:30").Validate())
	assert.ErrorIs(t, TimeString("2:30 PM").Validate(), ErrInvalidTimeString)
	assert.ErrorIs(t, TimeString("").Validate(), ErrInvalidTimeString)
}

func TestIsZero(t *testing.T) {
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("00:00").IsZero())
}

func TestAddMinutes(t *testing.T) {
	got, err := TimeString("09:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), got)

	// выход за пределы суток
	_, err = TimeString("23:30").AddMinutes(60)
	require.Error(t, err)

	_, err = TimeString("bad").AddMinutes(10)
	require.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestOrdering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("14:00"))
	assert.True(t, TimeString("14:00").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))

	// лексикографический порядок совпадает с хронологическим
	times := []string{"17:00", "09:00", "14:00", "10:00", "11:00", "16:00", "15:00"}
	sort.Strings(times)
	assert.Equal(t, []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00", "17:00"}, times)
}
