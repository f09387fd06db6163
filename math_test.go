package main

import (
	"testing"

	"github.com/bradleyjkemp/cupaloy"
)

func TestClip(t *testing.T) {
	above := Clip(11, 0, 10)
	below := Clip(-1, 0, 10)
	inside := Clip(5, 0, 10)

	cupaloy.SnapshotT(t, above, below, inside)
}

func TestApplyDeadzone(t *testing.T) {
	inside := ApplyDeadzone(3, 5)
	positive := ApplyDeadzone(7, 5)
	negative := ApplyDeadzone(-7, 5)

	cupaloy.SnapshotT(t, inside, positive, negative)
}

func TestRateLimit(t *testing.T) {
	capped := RateLimit(10, 5, -1, 2)
	wider := RateLimit(10, 5, -1, 4)
	inside := RateLimit(6, 5, -1, 4)

	cupaloy.SnapshotT(t, capped, wider, inside)
}

func TestFloorMod(t *testing.T) {
	positive := floorMod(3, 5)
	negative := floorMod(-3, 5)

	cupaloy.SnapshotT(t, "Negative operands wrap toward the divisor's sign", positive, negative)
}

func TestRound1(t *testing.T) {
	up := round1(2.25)
	down := round1(2.24)

	cupaloy.SnapshotT(t, up, down)
}
