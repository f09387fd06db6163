package utils

import (
	"time"
)

// UpdateTracker keeps a moving average of the time between control cycles so
// scheduling drift shows up in the debug logs.
type UpdateTracker struct {
	LastTime time.Time
	Time     time.Time
	DiffMA   MovingAverage
}

func (u *UpdateTracker) Init(maLength int) {
	u.LastTime = time.Now()
	u.Time = time.Now()
	u.DiffMA.Init(maLength)
}

func (u *UpdateTracker) Update() {
	u.LastTime = u.Time
	u.Time = time.Now()
	u.DiffMA.Update(u.Time.Sub(u.LastTime).Seconds())
}
