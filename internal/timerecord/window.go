package timerecord

import (
	"context"
	"strconv"
	"strings"
)

const windowHalfWidthMinutes = 15

type windowBand struct {
	start int // minutes since midnight, inclusive
	end   int // inclusive
}

func (b windowBand) contains(minutes int) bool {
	return minutes >= b.start && minutes <= b.end
}

// fixedWindows is the company-wide schedule: a ±15 minute band around
// each canonical punch time (08:00, 12:00, 14:00, 18:00).
var fixedWindows = map[RecordType]windowBand{
	MorningEntry:   {start: 7*60 + 45, end: 8*60 + 15},
	MorningExit:    {start: 11*60 + 45, end: 12*60 + 15},
	AfternoonEntry: {start: 13*60 + 45, end: 14*60 + 15},
	AfternoonExit:  {start: 17*60 + 45, end: 18*60 + 15},
}

// ShiftTimes mirrors the user's four configured punch anchors ("HH:MM",
// nil when unset).
type ShiftTimes struct {
	MorningEntry   *string
	MorningExit    *string
	AfternoonEntry *string
	AfternoonExit  *string
}

func (s ShiftTimes) anchorFor(t RecordType) *string {
	switch t {
	case MorningEntry:
		return s.MorningEntry
	case MorningExit:
		return s.MorningExit
	case AfternoonEntry:
		return s.AfternoonEntry
	case AfternoonExit:
		return s.AfternoonExit
	}
	return nil
}

// ShiftLookup resolves a user's configured shift times. The user
// package provides the implementation; the ledger only sees this slice.
type ShiftLookup interface {
	ShiftTimes(ctx context.Context, userID string) (ShiftTimes, error)
}

// WindowPolicy decides whether a punch clock time is acceptable for its
// type. Enforce=false reproduces the legacy behavior where every punch
// passes. Source selects between the fixed company schedule and the
// user's own shift anchors (±15 min); a user with no anchor configured
// for the punched type falls back to the fixed band.
type WindowPolicy struct {
	Enforce bool
	Source  string
	Shifts  ShiftLookup
}

const (
	WindowSourceFixed = "fixed"
	WindowSourceUser  = "user"
)

func (p WindowPolicy) Allows(ctx context.Context, userID string, t RecordType, clock string) (bool, error) {
	if !p.Enforce {
		return true, nil
	}

	if p.Source == WindowSourceUser && p.Shifts != nil {
		shifts, err := p.Shifts.ShiftTimes(ctx, userID)
		if err != nil {
			return false, err
		}
		if anchor := shifts.anchorFor(t); anchor != nil {
			if center, ok := minutesOfDay(*anchor); ok {
				band := windowBand{start: center - windowHalfWidthMinutes, end: center + windowHalfWidthMinutes}
				minutes, ok := minutesOfDay(clock)
				return ok && band.contains(minutes), nil
			}
		}
	}

	return isWithinWindow(t, clock), nil
}

// isWithinWindow reports whether clock ("HH:MM") falls inside the fixed
// band for t, inclusive on both ends. Unknown types never match.
func isWithinWindow(t RecordType, clock string) bool {
	band, ok := fixedWindows[t]
	if !ok {
		return false
	}

	minutes, ok := minutesOfDay(clock)
	return ok && band.contains(minutes)
}

func minutesOfDay(clock string) (int, bool) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, false
	}
	return hours*60 + minutes, true
}
