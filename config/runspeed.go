package config

import (
	"strings"
	"time"
)

// RunSpeed is the pace of automatic stepping in the debugger.
type RunSpeed int

//go:generate go tool stringer -linecomment -type=RunSpeed
const (
	RUN_SPEED_SLOW    = RunSpeed(0) // slow
	RUN_SPEED_MEDIUM  = RunSpeed(1) // medium
	RUN_SPEED_FAST    = RunSpeed(2) // fast
	RUN_SPEED_INSTANT = RunSpeed(3) // instant
)

// Interval returns the delay between automatic steps.
func (rs RunSpeed) Interval() time.Duration {
	switch rs {
	case RUN_SPEED_SLOW:
		return 1000 * time.Millisecond
	case RUN_SPEED_MEDIUM:
		return 250 * time.Millisecond
	case RUN_SPEED_FAST:
		return 100 * time.Millisecond
	}

	return 0
}

// MarshalText implements encoding.TextMarshaler.
func (rs RunSpeed) MarshalText() (text []byte, err error) {
	if rs < RUN_SPEED_SLOW || rs > RUN_SPEED_INSTANT {
		err = ErrRunSpeed
		return
	}

	text = []byte(rs.String())
	return
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (rs *RunSpeed) UnmarshalText(text []byte) (err error) {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for speed := RUN_SPEED_SLOW; speed <= RUN_SPEED_INSTANT; speed++ {
		if speed.String() == name {
			*rs = speed
			return
		}
	}

	err = ErrRunSpeed
	return
}
