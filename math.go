package main

import (
	"math"
)

func Clip(val, low, high float64) float64 {
	return math.Min(math.Max(val, low), high)
}

// ApplyDeadzone shrinks error toward zero by the deadzone magnitude and
// returns exactly 0 inside the deadzone.
func ApplyDeadzone(error, deadzone float64) float64 {
	if error > deadzone {
		return error - deadzone
	}
	if error < -deadzone {
		return error + deadzone
	}
	return 0
}

// RateLimit clamps newValue to at most upStep above and dwStep below
// lastValue. dwStep is expected to be <= 0.
func RateLimit(newValue, lastValue, dwStep, upStep float64) float64 {
	return Clip(newValue, lastValue+dwStep, lastValue+upStep)
}

func round1(val float64) float64 {
	return math.Round(val*10) / 10
}

// floorMod is the python style modulo, the result takes the sign of the
// divisor.
func floorMod(a, b float64) float64 {
	m := math.Mod(a, b)
	if m < 0 {
		m += b
	}
	return m
}
