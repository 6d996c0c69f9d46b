// Package timeclock holds the clock-time normalization and day
// classification rules shared by the attendance and payroll modules.
package timeclock

import (
	"math"
	"strconv"
	"strings"
)

const (
	// Standard shift boundaries. The business day runs 08:00-17:00;
	// anything past 17:00 is overtime.
	StandardClockIn  = "08:00"
	StandardClockOut = "17:00"

	absentClock = "00:00"
)

func isBlank(s string) bool {
	return s == "" || strings.EqualFold(s, "nan")
}

// NormalizeClockPair repairs a raw clock-in/clock-out pair. Both missing
// means a full absence; a single missing side falls back to the standard
// shift boundary. Valid pairs pass through untouched, so the function is
// idempotent. Values are not range-checked: in >= out is accepted as-is.
func NormalizeClockPair(clockIn, clockOut string) (string, string) {
	in := strings.TrimSpace(clockIn)
	out := strings.TrimSpace(clockOut)

	switch {
	case isBlank(in) && isBlank(out):
		return absentClock, absentClock
	case isBlank(in):
		return StandardClockIn, out
	case isBlank(out):
		return in, StandardClockOut
	default:
		return in, out
	}
}

// ParseWorkTime converts a worked-duration string "H:MM" into decimal hours
// rounded to 2 decimals. Anything unparseable counts as zero hours. Values
// outside 0..24 are accepted without a bounds check, a deliberate tolerance
// for device exports that overflow the day.
func ParseWorkTime(s string) float64 {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0
	}
	return Round2(float64(h) + float64(m)/60)
}

// RoundHours rounds decimal hours to the nearest whole hour, halves away
// from zero. This is the canonical rounding for day classification.
func RoundHours(h float64) int {
	return int(math.Round(h))
}

// DayUnit classifies a day from its rounded hour count: 7 or more hours is
// a full day, anything worked below that a half day. Classification is
// always done on the rounded integer value.
func DayUnit(roundedHours int) float64 {
	switch {
	case roundedHours >= 7:
		return 1.0
	case roundedHours >= 1:
		return 0.5
	default:
		return 0.0
	}
}

// clockMinutes parses "H:MM"/"HH:MM" into minutes since midnight.
func clockMinutes(s string) (int, bool) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, false
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, false
	}
	return h*60 + m, true
}

const (
	shiftStartMinutes = 8 * 60
	shiftEndMinutes   = 17 * 60
)

// OvertimeHours returns whole overtime hours worked past the 17:00 shift
// end, rounded to the nearest hour. Sentinel or unparseable clock-outs
// yield zero.
func OvertimeHours(clockOut string) int {
	out, ok := clockMinutes(clockOut)
	if !ok || out <= shiftEndMinutes {
		return 0
	}
	return int(math.Round(float64(out-shiftEndMinutes) / 60))
}

// LateHours returns decimal hours of lateness past the 08:00 shift start,
// rounded to 2 decimals.
func LateHours(clockIn string) float64 {
	in, ok := clockMinutes(clockIn)
	if !ok || in <= shiftStartMinutes {
		return 0
	}
	return Round2(float64(in-shiftStartMinutes) / 60)
}

// EarlyHours returns decimal hours left before the 17:00 shift end. The
// "0"/"00:00" sentinels mark an absent clock-out and never count as early.
func EarlyHours(clockOut string) float64 {
	trimmed := strings.TrimSpace(clockOut)
	if trimmed == "0" || trimmed == absentClock {
		return 0
	}
	out, ok := clockMinutes(trimmed)
	if !ok || out >= shiftEndMinutes {
		return 0
	}
	return Round2(float64(shiftEndMinutes-out) / 60)
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
