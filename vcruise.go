package main

import (
	"math"

	"github.com/kikiyinfu/cruised/cereal/car"
	ms "github.com/kikiyinfu/cruised/settings"
)

// WARNING: V_CRUISE_MAX was determined based on the model's training
// distribution, model predictions above this speed can be unpredictable.
const (
	V_CRUISE_MAX        = 145.0 // kph
	V_CRUISE_MIN        = 8.0   // kph
	V_CRUISE_MIN_RAMP   = 5.0   // ramping policy lower bound, native display units
	V_CRUISE_DELTA_RAMP = 5.0   // ramping policy snap interval, native display units

	V_CRUISE_ENABLE_MIN_KPH = 30.0
	V_CRUISE_ENABLE_MIN_MPH = 32.0 // kph, enable floor when the cluster shows mph

	// shown on the cluster before the first real set
	V_CRUISE_UNSET = 255.0

	// a speed at or above this was never actually set by the driver
	V_CRUISE_NEVER_SET = 250.0

	CRUISE_LONG_PRESS = 50 // cycles

	// hold tick cadence for the ramping policy
	rampHoldSec     = 1.0
	rampFastHoldSec = 0.5
)

// AdjustPolicy selects how button presses turn into set speed changes. It is
// fixed at construction so the per-cycle path never inspects the brand.
type AdjustPolicy int

const (
	// PolicySimple consumes one button edge or long press tick per cycle.
	PolicySimple AdjustPolicy = iota
	// PolicyRamping ramps continuously while a button is held, with release
	// edges handled separately. Used by brands whose stock stalk behaves
	// this way.
	PolicyRamping
)

func PolicyForBrand(brand string) AdjustPolicy {
	if brand == "honda" {
		return PolicyRamping
	}
	return PolicySimple
}

// CarParams is the subset of the vehicle configuration the controller needs.
type CarParams struct {
	Brand              string
	PcmCruise          bool
	PcmCruiseSpeed     bool
	SteerActuatorDelay float64
}

// Provider supplies the live tunable toggles the controller re-reads every
// cycle. Re-reading is cheap and lets the toggle flip without a restart.
type Provider interface {
	ReverseAccChange() bool
}

type buttonPhase int

const (
	buttonReleased buttonPhase = iota
	buttonPressed
	buttonLongPress
)

// buttonTimer tracks one adjustable button across cycles. holdFrames counts
// consecutive held cycles, standstill is the cruise standstill state captured
// at the last press or release edge.
type buttonTimer struct {
	phase      buttonPhase
	holdFrames uint32
	standstill bool
}

func (b *buttonTimer) tick() {
	if b.phase == buttonReleased {
		return
	}
	b.holdFrames++
	if b.holdFrames > CRUISE_LONG_PRESS {
		b.phase = buttonLongPress
	}
}

func (b *buttonTimer) edge(pressed bool, standstill bool) {
	if pressed {
		b.phase = buttonPressed
		b.holdFrames = 1
	} else {
		b.phase = buttonReleased
		b.holdFrames = 0
	}
	b.standstill = standstill
}

// longPressTick reports whether a repeating long press adjustment fires this
// cycle.
func (b *buttonTimer) longPressTick() bool {
	return b.holdFrames > 0 && b.holdFrames%CRUISE_LONG_PRESS == 0
}

// longPressEnded reports whether a release edge terminates a long press whose
// adjustments already fired.
func (b *buttonTimer) longPressEnded() bool {
	return b.holdFrames > CRUISE_LONG_PRESS
}

// adjustButtons is also the scan order for pending long press ticks.
var adjustButtons = []car.ButtonType{car.ButtonTypeDecelCruise, car.ButtonTypeAccelCruise}

// VCruise owns the cruise set speed across a drive session. All state is
// mutated synchronously from the control loop, one Update per cycle.
type VCruise struct {
	cp       CarParams
	policy   AdjustPolicy
	settings Provider

	kph     float64
	cluster float64
	set     bool

	lastKPH float64
	lastSet bool

	reverse bool

	accelTimer buttonTimer
	decelTimer buttonTimer

	// ramping policy latches
	accelHeld      bool
	decelHeld      bool
	accelHeldSince float64
	decelHeldSince float64
	fastMode       bool
}

func NewVCruise(cp CarParams, settings Provider) *VCruise {
	return &VCruise{
		cp:       cp,
		policy:   PolicyForBrand(cp.Brand),
		settings: settings,
	}
}

// SetCarParams swaps the vehicle configuration in place, keeping the session
// state. Called when the configuration changes at runtime.
func (v *VCruise) SetCarParams(cp CarParams) {
	v.cp = cp
	v.policy = PolicyForBrand(cp.Brand)
}

func (v *VCruise) Initialized() bool {
	return v.set
}

func (v *VCruise) FastMode() bool {
	return v.fastMode
}

// Output returns the set speed and the cluster speed in kph, or the unset
// sentinel for both while no speed has been set.
func (v *VCruise) Output() (vCruise, vCruiseCluster float64) {
	if !v.set {
		return V_CRUISE_UNSET, V_CRUISE_UNSET
	}
	return v.kph, v.cluster
}

// Update runs one control cycle of the set speed state machine. frame is the
// monotonically increasing cycle counter, frame*DT_CTRL is elapsed seconds.
func (v *VCruise) Update(cs *CarState, enabledLong bool, isMetric bool, frame uint64) {
	v.lastKPH, v.lastSet = v.kph, v.set
	v.reverse = v.settings.ReverseAccChange()
	curTime := float64(frame) * ms.DT_CTRL

	if !cs.CruiseAvailable {
		v.set = false
		v.kph = 0
		v.cluster = 0
		return
	}

	if v.cp.PcmCruise && v.cp.PcmCruiseSpeed {
		// the car owns the set speed, mirror it
		v.kph = float64(cs.CruiseSpeed) * ms.MS_TO_KPH
		v.cluster = float64(cs.CruiseSpeedCluster) * ms.MS_TO_KPH
		v.set = true
		return
	}

	// stock cruise set speed is disabled, run our own set speed logic while
	// cruise is enabled
	if cs.CruiseEnabled {
		switch v.policy {
		case PolicyRamping:
			v.latchHeldButtons(cs, curTime)
			v.updateRamping(cs, enabledLong, isMetric, curTime)
			v.cluster = v.kph
			if v.accelHeld || v.decelHeld {
				if v.kph != v.lastKPH {
					v.accelHeldSince = curTime
					v.decelHeldSince = curTime
					v.fastMode = true
				}
			} else {
				v.fastMode = false
			}
		default:
			v.updateSimple(cs, enabledLong, isMetric)
			v.cluster = v.kph
		}
	}
	v.updateButtonTimers(cs)
}

// Initialize is called once on the transition into active cruise.
func (v *VCruise) Initialize(cs *CarState, isMetric bool) {
	// initializing is handled by the car when it owns the set speed
	if v.cp.PcmCruise && v.cp.PcmCruiseSpeed {
		return
	}

	restore := false
	for _, b := range cs.ButtonEvents {
		if b.Type == car.ButtonTypeAccelCruise || b.Type == car.ButtonTypeResumeCruise {
			restore = true
			break
		}
	}

	if restore && v.lastSet && v.lastKPH < V_CRUISE_NEVER_SET {
		v.kph = v.lastKPH
	} else {
		enableMin := V_CRUISE_ENABLE_MIN_KPH
		if !isMetric {
			enableMin = V_CRUISE_ENABLE_MIN_MPH
		}
		v.kph = math.Round(Clip(float64(cs.VEgo)*ms.MS_TO_KPH, enableMin, V_CRUISE_MAX))
	}
	v.set = true
	v.cluster = v.kph
}

func (v *VCruise) timerFor(t car.ButtonType) *buttonTimer {
	switch t {
	case car.ButtonTypeAccelCruise:
		return &v.accelTimer
	case car.ButtonTypeDecelCruise:
		return &v.decelTimer
	}
	return nil
}

// updateSimple consumes at most one button event per cycle: a release edge if
// one occurred, otherwise a pending long press tick.
func (v *VCruise) updateSimple(cs *CarState, enabledLong bool, isMetric bool) {
	if !enabledLong || !v.set {
		return
	}

	longPress := false
	var buttonType car.ButtonType
	found := false

	for _, b := range cs.ButtonEvents {
		t := v.timerFor(b.Type)
		if t == nil || b.Pressed {
			continue
		}
		if t.longPressEnded() {
			return // end long press
		}
		buttonType = b.Type
		found = true
		break
	}
	if !found {
		for _, bt := range adjustButtons {
			if v.timerFor(bt).longPressTick() {
				buttonType = bt
				longPress = true
				found = true
				break
			}
		}
	}
	if !found {
		return
	}

	// Don't adjust speed when pressing resume to exit standstill
	cruiseStandstill := v.timerFor(buttonType).standstill || cs.CruiseStandstill
	if buttonType == car.ButtonTypeAccelCruise && cruiseStandstill {
		return
	}

	// should be the exact mph interval in kph, but this causes rounding errors
	delta := 1.0
	multiplier := 10.0
	if !isMetric {
		delta = 1.6
		multiplier = 5.0
	}
	sign := 1.0
	if buttonType == car.ButtonTypeDecelCruise {
		sign = -1.0
	}

	if v.reverse {
		if !longPress {
			delta *= multiplier
		}
		if !longPress && math.Mod(v.kph, delta) != 0 { // partial interval
			v.kph = nearestInterval(buttonType, v.kph/delta) * delta
		} else {
			v.kph += delta * sign
		}
	} else {
		if longPress {
			delta *= multiplier
		}
		if longPress && math.Mod(v.kph, delta) != 0 { // partial interval
			v.kph = nearestInterval(buttonType, v.kph/delta) * delta
		} else {
			v.kph += delta * sign
		}
	}

	// If set is pressed while overriding, clip cruise speed to minimum of vEgo
	if cs.GasPressed && (buttonType == car.ButtonTypeDecelCruise || buttonType == car.ButtonTypeSetCruise) {
		v.kph = math.Max(v.kph, float64(cs.VEgo)*ms.MS_TO_KPH)
	}

	v.kph = Clip(round1(v.kph), V_CRUISE_MIN, V_CRUISE_MAX)
}

func nearestInterval(buttonType car.ButtonType, val float64) float64 {
	if buttonType == car.ButtonTypeAccelCruise {
		return math.Ceil(val)
	}
	return math.Floor(val)
}

func (v *VCruise) latchHeldButtons(cs *CarState, curTime float64) {
	for _, b := range cs.ButtonEvents {
		switch b.Type {
		case car.ButtonTypeAccelCruise:
			v.accelHeld = b.Pressed
			if b.Pressed {
				v.accelHeldSince = curTime
			}
		case car.ButtonTypeDecelCruise:
			v.decelHeld = b.Pressed
			if b.Pressed {
				v.decelHeldSince = curTime
			}
		}
	}
}

// updateRamping adjusts the set speed in the cluster's native display unit.
// A held button fires once per second of continuous hold, twice per second in
// fast mode; release edges are a no-op once a hold already fired.
func (v *VCruise) updateRamping(cs *CarState, enabledLong bool, isMetric bool, curTime float64) {
	if !v.set {
		return
	}

	speed := v.kph
	if !isMetric {
		// should be MS_TO_MPH*MS_TO_KPH, but this causes rounding errors
		speed = math.Round(v.kph*0.6233 + 0.0995)
	}

	if enabledLong {
		suppressAccel := v.accelTimer.standstill || cs.CruiseStandstill
		switch {
		case v.accelHeld:
			if !suppressAccel && v.holdTickDue(curTime, v.accelHeldSince) {
				if v.reverse {
					speed += 1
				} else {
					speed += V_CRUISE_DELTA_RAMP - floorMod(speed, V_CRUISE_DELTA_RAMP)
				}
			}
		case v.decelHeld:
			if v.holdTickDue(curTime, v.decelHeldSince) {
				if v.reverse {
					speed -= 1
				} else {
					speed -= V_CRUISE_DELTA_RAMP - floorMod(V_CRUISE_DELTA_RAMP-speed, V_CRUISE_DELTA_RAMP)
				}
			}
		default:
			for _, b := range cs.ButtonEvents {
				if !b.Pressed {
					switch b.Type {
					case car.ButtonTypeAccelCruise:
						if !v.fastMode && !suppressAccel {
							if v.reverse {
								speed += V_CRUISE_DELTA_RAMP - floorMod(speed, V_CRUISE_DELTA_RAMP)
							} else {
								speed += 1
							}
						}
					case car.ButtonTypeDecelCruise:
						if !v.fastMode {
							if v.reverse {
								speed -= V_CRUISE_DELTA_RAMP - floorMod(V_CRUISE_DELTA_RAMP-speed, V_CRUISE_DELTA_RAMP)
							} else {
								speed -= 1
							}
						}
					}
				}

				// If set is pressed while overriding, clip cruise speed to
				// minimum of vEgo
				if cs.GasPressed && (b.Type == car.ButtonTypeDecelCruise || b.Type == car.ButtonTypeSetCruise) {
					speed = math.Max(speed, float64(cs.VEgo)*ms.MS_TO_KPH)
				}
			}
		}

		speed = Clip(speed, V_CRUISE_MIN_RAMP, V_CRUISE_MAX)
	}

	if !isMetric {
		speed = math.Round((math.Round(speed) - 0.0995) / 0.6233)
	}
	v.kph = speed
}

func (v *VCruise) holdTickDue(curTime, heldSince float64) bool {
	held := curTime - heldSince
	return held >= rampHoldSec || (v.fastMode && held >= rampFastHoldSec)
}

// updateButtonTimers runs once per cycle regardless of which policy handled
// the adjustment.
func (v *VCruise) updateButtonTimers(cs *CarState) {
	// increment timers for buttons still pressed
	v.accelTimer.tick()
	v.decelTimer.tick()

	for _, b := range cs.ButtonEvents {
		if t := v.timerFor(b.Type); t != nil {
			// start/end timer and store current state on change of button
			// pressed
			t.edge(b.Pressed, cs.CruiseStandstill)
		}
	}
}
