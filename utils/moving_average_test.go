package utils

import (
	"testing"
)

func TestMovingAverage(t *testing.T) {
	var ma MovingAverage
	ma.Init(4)

	if got := ma.Update(2); got != 2 {
		t.Errorf("expected the first sample to seed the window, got %v", got)
	}
	if got := ma.Update(6); got != 3 {
		t.Errorf("expected (2+6+2+2)/4 = 3, got %v", got)
	}

	ma.Reset()
	if got := ma.Update(10); got != 10 {
		t.Errorf("expected reset to reseed the window, got %v", got)
	}
}
