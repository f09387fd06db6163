package main

import (
	"github.com/kikiyinfu/cruised/cereal/car"
)

// ButtonEvent is a single cruise button transition.
type ButtonEvent struct {
	Type    car.ButtonType
	Pressed bool
}

// CarState is the decoded per-cycle vehicle state the controller consumes.
// ButtonEvents is empty on cycles without a button transition.
type CarState struct {
	VEgo               float32
	AEgo               float32
	CruiseSpeed        float32
	CruiseSpeedCluster float32

	GasPressed       bool
	Standstill       bool
	CruiseEnabled    bool
	CruiseAvailable  bool
	CruiseStandstill bool

	ButtonEvents []ButtonEvent
}

// Update refreshes the state from a freshly read message. Button events are
// replaced wholesale, a message without events clears the previous ones.
func (c *CarState) Update(data car.CarState) {
	c.VEgo = data.VEgo()
	c.AEgo = data.AEgo()
	c.CruiseSpeed = data.CruiseSpeed()
	c.CruiseSpeedCluster = data.CruiseSpeedCluster()

	c.GasPressed = data.GasPressed()
	c.Standstill = data.Standstill()
	c.CruiseEnabled = data.CruiseEnabled()
	c.CruiseAvailable = data.CruiseAvailable()
	c.CruiseStandstill = data.CruiseStandstill()

	c.ButtonEvents = c.ButtonEvents[:0]
	events, err := data.ButtonEvents()
	if err != nil {
		return
	}
	for i := 0; i < events.Len(); i++ {
		e := events.At(i)
		c.ButtonEvents = append(c.ButtonEvents, ButtonEvent{
			Type:    e.Type(),
			Pressed: e.Pressed(),
		})
	}
}
