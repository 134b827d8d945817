package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeToMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"12:00 AM", 0},
		{"12:30 AM", 30},
		{"01:00 AM", 60},
		{"09:00 AM", 540},
		{"11:59 AM", 719},
		{"12:00 PM", 720},
		{"12:45 PM", 765},
		{"01:00 PM", 780},
		{"05:00 PM", 1020},
		{"11:59 PM", 1439},
	}

	for _, tc := range cases {
		got, err := TimeToMinutes(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestTimeToMinutesRejectsMalformed(t *testing.T) {
	bad := []string{
		"",
		"09:00",
		"09:00AM",
		"09:00 XX",
		"9 AM",
		"aa:bb AM",
		"13:00 PM",
		"00:00 AM",
		"09:75 AM",
	}

	for _, in := range bad {
		_, err := TimeToMinutes(in)
		assert.Error(t, err, in)
	}
}

func TestMinutesToTime(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "12:00 AM"},
		{30, "12:30 AM"},
		{540, "09:00 AM"},
		{719, "11:59 AM"},
		{720, "12:00 PM"},
		{780, "01:00 PM"},
		{1439, "11:59 PM"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, MinutesToTime(tc.in))
	}
}

func TestRoundTrip(t *testing.T) {
	// 08:30 AM is the buffered end of a 07:00 AM booking; the availability
	// message formats it back through MinutesToTime.
	mins, err := TimeToMinutes("07:00 AM")
	require.NoError(t, err)
	assert.Equal(t, "08:30 AM", MinutesToTime(mins+90))
}
