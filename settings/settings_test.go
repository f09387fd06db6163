package settings

import (
	"path/filepath"
	"testing"

	"capnproto.org/go/capnp/v3"

	"github.com/kikiyinfu/cruised/cereal/custom"
	"github.com/kikiyinfu/cruised/params"
)

func setupTestParams(t *testing.T) {
	t.Helper()
	oldPath := params.ParamsPath
	oldSettings := params.CRUISED_SETTINGS
	oldReverse := params.REVERSE_ACC_CHANGE
	oldMetric := params.IS_METRIC
	params.ParamsPath = filepath.Join(t.TempDir(), "d")
	params.CRUISED_SETTINGS = params.ParamPath("CruisedSettings")
	params.REVERSE_ACC_CHANGE = params.ParamPath("ReverseAccChange")
	params.IS_METRIC = params.ParamPath("IsMetric")
	params.EnsureParamDirectories()
	t.Cleanup(func() {
		params.ParamsPath = oldPath
		params.CRUISED_SETTINGS = oldSettings
		params.REVERSE_ACC_CHANGE = oldReverse
		params.IS_METRIC = oldMetric
	})
}

func newInput(t *testing.T) custom.CruisedIn {
	t.Helper()
	_, seg, err := capnp.NewMessage(capnp.SingleSegment(nil))
	if err != nil {
		t.Fatal(err)
	}
	input, err := custom.NewCruisedIn(seg)
	if err != nil {
		t.Fatal(err)
	}
	return input
}

func TestDefaults(t *testing.T) {
	s := CruisedSettings{}
	s.Default()

	if s.LogLevel != "error" {
		t.Errorf("expected default log level error, got %q", s.LogLevel)
	}
	if s.SteerActuatorDelay != 0.2 {
		t.Errorf("expected default actuator delay 0.2, got %v", s.SteerActuatorDelay)
	}
	if s.PcmCruise || s.PcmCruiseSpeed {
		t.Error("expected pcm cruise to default to off")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	setupTestParams(t)

	s := CruisedSettings{}
	s.Default()
	s.CarBrand = "honda"
	s.SteerActuatorDelay = 0.35
	s.Save()

	loaded := CruisedSettings{}
	if !loaded.Load() {
		t.Fatal("expected load to succeed")
	}
	if loaded.CarBrand != "honda" {
		t.Errorf("expected honda, got %q", loaded.CarBrand)
	}
	if loaded.SteerActuatorDelay != 0.35 {
		t.Errorf("expected 0.35, got %v", loaded.SteerActuatorDelay)
	}
}

func TestLoadMissingParamFails(t *testing.T) {
	setupTestParams(t)

	s := CruisedSettings{}
	if s.Load() {
		t.Error("expected load to fail without a persisted param")
	}
}

func TestUnmarshalKeepsDefaultsForMissingKeys(t *testing.T) {
	s := CruisedSettings{}
	s.Default()
	if !s.Unmarshal([]byte(`{"car_brand":"honda"}`)) {
		t.Fatal("expected unmarshal to succeed")
	}
	if s.CarBrand != "honda" {
		t.Errorf("expected honda, got %q", s.CarBrand)
	}
	if s.SteerActuatorDelay != 0.2 {
		t.Errorf("expected the default delay to survive, got %v", s.SteerActuatorDelay)
	}
}

func TestHandleSetters(t *testing.T) {
	setupTestParams(t)

	s := CruisedSettings{}
	s.Default()

	input := newInput(t)
	input.SetType(custom.InputType_setCarBrand)
	if err := input.SetStr("honda"); err != nil {
		t.Fatal(err)
	}
	s.Handle(input)
	if s.CarBrand != "honda" {
		t.Errorf("expected honda, got %q", s.CarBrand)
	}

	input = newInput(t)
	input.SetType(custom.InputType_setSteerActuatorDelay)
	input.SetFloat(0.3)
	s.Handle(input)
	if s.SteerActuatorDelay != 0.3 {
		t.Errorf("expected 0.3, got %v", s.SteerActuatorDelay)
	}

	input = newInput(t)
	input.SetType(custom.InputType_setPcmCruise)
	input.SetBool(true)
	s.Handle(input)
	if !s.PcmCruise {
		t.Error("expected pcm cruise to be set")
	}
}

func TestHandleTogglesWriteParams(t *testing.T) {
	setupTestParams(t)

	s := CruisedSettings{}
	s.Default()

	input := newInput(t)
	input.SetType(custom.InputType_setReverseAccChange)
	input.SetBool(true)
	s.Handle(input)
	if !params.GetBool(params.REVERSE_ACC_CHANGE) {
		t.Error("expected the reverse acc change param to be written")
	}

	input = newInput(t)
	input.SetType(custom.InputType_setIsMetric)
	input.SetBool(true)
	s.Handle(input)
	if !params.GetBool(params.IS_METRIC) {
		t.Error("expected the is metric param to be written")
	}
}

func TestLoadRecommended(t *testing.T) {
	s := CruisedSettings{}
	s.Recommended()
	if s.LogLevel != "warn" {
		t.Errorf("expected warn, got %q", s.LogLevel)
	}
	if !s.DebugServerEnabled {
		t.Error("expected the debug server to be enabled")
	}
}
