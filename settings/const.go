package settings

import (
	"time"
)

const (
	DEFAULT_SEGMENT_SIZE = 10 * 1024 * 1024
	SMALL_SEGMENT_SIZE   = 1024 * 1024

	// control cycle period
	DT_CTRL    = 0.01 // s
	LOOP_DELAY = 10 * time.Millisecond

	MS_TO_KPH = 3.6
	KPH_TO_MS = 1 / 3.6
	MPH_TO_MS = 0.44704
	MS_TO_MPH = 1 / 0.44704
)

func GetSegmentSize(name string) int64 {
	switch name {
	case "cruisedIn", "cruisedOut":
		return SMALL_SEGMENT_SIZE
	}
	return DEFAULT_SEGMENT_SIZE
}
