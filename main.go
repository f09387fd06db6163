package main

import (
	"log/slog"
	"time"

	"capnproto.org/go/capnp/v3"

	"github.com/kikiyinfu/cruised/cereal"
	"github.com/kikiyinfu/cruised/cereal/custom"
	"github.com/kikiyinfu/cruised/cli"
	"github.com/kikiyinfu/cruised/params"
	"github.com/kikiyinfu/cruised/settings"
	"github.com/kikiyinfu/cruised/utils"
	"github.com/kikiyinfu/cruised/web"
)

// toggles caches the live param values for the current cycle.
type toggles struct {
	reverse bool
}

func (t *toggles) ReverseAccChange() bool {
	return t.reverse
}

func carParams() CarParams {
	return CarParams{
		Brand:              settings.Settings.CarBrand,
		PcmCruise:          settings.Settings.PcmCruise,
		PcmCruiseSpeed:     settings.Settings.PcmCruiseSpeed,
		SteerActuatorDelay: float64(settings.Settings.SteerActuatorDelay),
	}
}

func main() {
	cli.Handle()

	params.EnsureParamDirectories()
	settings.Settings.LoadWithRetries(30)

	carStateSub := cereal.NewSubscriber("carState", cereal.CarStateReader, true)
	defer carStateSub.Sub.Msgq.Close()
	planSub := cereal.NewSubscriber("lateralPlan", cereal.LateralPlanReader, true)
	defer planSub.Sub.Msgq.Close()
	inputSub := cereal.NewSubscriber("cruisedIn", cereal.CruisedInReader, false)
	defer inputSub.Sub.Msgq.Close()

	pub := cereal.NewPublisher("cruisedOut", cereal.CruisedOutCreator)

	state := State{}
	live := toggles{}
	vc := NewVCruise(carParams(), &live)

	var debug *web.Server
	if settings.Settings.DebugServerEnabled {
		debug = web.NewServer()
		debug.Start(settings.Settings.DebugServerPort)
	}

	tracker := utils.UpdateTracker{}
	tracker.Init(100)

	for {
		time.Sleep(settings.LOOP_DELAY)

		for {
			input, success := inputSub.Read()
			if !success {
				break
			}
			settings.Settings.Handle(input)
			if input.Type() == custom.InputType_setDebugServer && debug == nil && settings.Settings.DebugServerEnabled {
				debug = web.NewServer()
				debug.Start(settings.Settings.DebugServerPort)
			}
		}
		if cp := carParams(); cp != vc.cp {
			vc.SetCarParams(cp)
		}

		cs, success := carStateSub.Read()
		if !success {
			continue
		}
		state.Frame++
		state.Car.Update(cs)
		if plan, ok := planSub.Read(); ok {
			state.UpdatePlan(plan)
		}

		live.reverse = params.GetBool(params.REVERSE_ACC_CHANGE)
		state.IsMetric = params.GetBool(params.IS_METRIC)

		enabled := state.Car.CruiseEnabled
		if enabled && !state.EnabledLastLoop {
			vc.Initialize(&state.Car, state.IsMetric)
		}
		vc.Update(&state.Car, enabled, state.IsMetric, state.Frame)
		state.EnabledLastLoop = enabled

		state.VCruise, state.VCruiseCluster = vc.Output()
		state.DesiredCurvature, state.DesiredCurvatureRate = LagAdjustedCurvature(vc.cp, float64(state.Car.VEgo), &state.Plan)

		msg := state.ToMessage(vc, &pub)
		if err := pub.Send(msg); err != nil {
			slog.Error("Failed to send update", "error", err)
		}

		if debug != nil {
			debug.Broadcast(state.debugOutput(vc))
		}

		tracker.Update()
		slog.Debug("cycle", "dt", tracker.DiffMA.Estimate)
	}
}

func (s *State) ToMessage(vc *VCruise, pub *cereal.Publisher[custom.CruisedOut]) *capnp.Message {
	msg, output := pub.NewMessage(true)

	output.SetVCruise(float32(s.VCruise))
	output.SetVCruiseCluster(float32(s.VCruiseCluster))
	output.SetDesiredCurvature(float32(s.DesiredCurvature))
	output.SetDesiredCurvatureRate(float32(s.DesiredCurvatureRate))
	output.SetFastMode(vc.FastMode())
	output.SetInitialized(vc.Initialized())

	data, err := settings.Settings.Marshal()
	if err == nil {
		utils.Loge(output.SetSettings(string(data)))
	}

	logOutput(output)

	return msg
}

func logOutput(out custom.CruisedOut) {
	slog.Debug("cruisedOut",
		"vCruise", out.VCruise(),
		"vCruiseCluster", out.VCruiseCluster(),
		"desiredCurvature", out.DesiredCurvature(),
		"desiredCurvatureRate", out.DesiredCurvatureRate(),
		"fastMode", out.FastMode(),
		"initialized", out.Initialized(),
	)
}

type debugOut struct {
	Frame                uint64  `json:"frame"`
	VEgo                 float32 `json:"v_ego"`
	VCruise              float64 `json:"v_cruise"`
	VCruiseCluster       float64 `json:"v_cruise_cluster"`
	DesiredCurvature     float64 `json:"desired_curvature"`
	DesiredCurvatureRate float64 `json:"desired_curvature_rate"`
	FastMode             bool    `json:"fast_mode"`
	Initialized          bool    `json:"initialized"`
	IsMetric             bool    `json:"is_metric"`
	Enabled              bool    `json:"enabled"`
}

func (s *State) debugOutput(vc *VCruise) debugOut {
	return debugOut{
		Frame:                s.Frame,
		VEgo:                 s.Car.VEgo,
		VCruise:              s.VCruise,
		VCruiseCluster:       s.VCruiseCluster,
		DesiredCurvature:     s.DesiredCurvature,
		DesiredCurvatureRate: s.DesiredCurvatureRate,
		FastMode:             vc.FastMode(),
		Initialized:          vc.Initialized(),
		IsMetric:             s.IsMetric,
		Enabled:              s.EnabledLastLoop,
	}
}
