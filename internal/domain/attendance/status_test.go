package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timePtr(t time.Time) *time.Time { return &t }

func todPtr(s string) *TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("09:30")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay(570), tod)
	assert.Equal(t, "09:30", tod.String())

	_, err = ParseTimeOfDay("9:30am")
	assert.Error(t, err)

	_, err = ParseTimeOfDay("25:00")
	assert.Error(t, err)
}

func TestClassify(t *testing.T) {
	day := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		signIn     *time.Time
		shiftStart *TimeOfDay
		existing   Status
		want       Status
	}{
		{
			name:       "sign in before shift start is present",
			signIn:     timePtr(day.Add(8*time.Hour + 45*time.Minute)),
			shiftStart: todPtr("09:00"),
			want:       StatusPresent,
		},
		{
			name:       "sign in exactly at shift start is present",
			signIn:     timePtr(day.Add(9 * time.Hour)),
			shiftStart: todPtr("09:00"),
			want:       StatusPresent,
		},
		{
			name:       "one minute past shift start is late",
			signIn:     timePtr(day.Add(9*time.Hour + time.Minute)),
			shiftStart: todPtr("09:00"),
			want:       StatusLate,
		},
		{
			name:   "no sign in is absent",
			signIn: nil,
			want:   StatusAbsent,
		},
		{
			name:       "no shift start on file never counts as late",
			signIn:     timePtr(day.Add(15 * time.Hour)),
			shiftStart: nil,
			want:       StatusPresent,
		},
		{
			name:       "on-leave record is never reclassified",
			signIn:     timePtr(day.Add(9*time.Hour + 30*time.Minute)),
			shiftStart: todPtr("09:00"),
			existing:   StatusOnLeave,
			want:       StatusOnLeave,
		},
		{
			name:     "absent record is never reclassified",
			signIn:   nil,
			existing: StatusAbsent,
			want:     StatusAbsent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.signIn, tt.shiftStart, tt.existing)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyIdempotent(t *testing.T) {
	day := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	signIn := timePtr(day.Add(9*time.Hour + 10*time.Minute))
	shift := todPtr("09:00")

	first := Classify(signIn, shift, "")
	second := Classify(signIn, shift, first)
	assert.Equal(t, first, second)
}
