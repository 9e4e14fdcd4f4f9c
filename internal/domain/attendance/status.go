package attendance

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time expressed as minutes since midnight.
// It compares cleanly across dates and survives DST transitions that
// time.Time arithmetic does not.
type TimeOfDay int

// ParseTimeOfDay parses a "HH:MM" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

// TimeOfDayFrom extracts the wall-clock minutes of an instant in its
// own location.
func TimeOfDayFrom(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Classify derives the attendance status for a single employee-day.
//
// A record already marked on-leave or absent is authoritative and is
// never reclassified from timestamps: leave approval and end-of-day
// absence sweeps write those statuses deliberately. Otherwise a
// missing sign-in means absent, a sign-in strictly after the shift
// start means late, and anything else is present. Signing in exactly
// at the shift start counts as present. With no shift start on file
// there is nothing to be late against, so any sign-in is present.
func Classify(signIn *time.Time, shiftStart *TimeOfDay, existing Status) Status {
	if existing == StatusOnLeave || existing == StatusAbsent {
		return existing
	}
	if signIn == nil {
		return StatusAbsent
	}
	if shiftStart != nil && TimeOfDayFrom(*signIn) > *shiftStart {
		return StatusLate
	}
	return StatusPresent
}
