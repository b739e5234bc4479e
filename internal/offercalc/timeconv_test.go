package offercalc

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTo24Hour(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2:30 PM", "14:30"},
		{"12:00 AM", "00:00"},
		{"12:15 PM", "12:15"},
		{"11:00 AM", "11:00"},
		{"9:05 am", "09:05"},
		{"11:00PM", "23:00"},
		{"14:30", "14:30"},
		{"", ""},
		{"noon", "noon"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, To24Hour(tt.in))
		})
	}
}

func TestTo24Hour_Idempotent(t *testing.T) {
	for _, in := range []string{"2:30 PM", "12:00 AM", "7:45 am"} {
		once := To24Hour(in)
		assert.Equal(t, once, To24Hour(once))
	}
}

func TestTo12Hour(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"00:00", "12:00 AM"},
		{"09:00", "9:00 AM"},
		{"12:00", "12:00 PM"},
		{"14:30", "2:30 PM"},
		{"23:00", "11:00 PM"},
		{"25:00", "25:00"},
		{"garbage", "garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, To12Hour(tt.in))
		})
	}
}

func TestTimeConversion_RoundTrip(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		value := fmt.Sprintf("%02d:00", hour)
		assert.Equal(t, value, To24Hour(To12Hour(value)))
	}
}
