package settings

import (
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/kikiyinfu/cruised/cereal/custom"
	"github.com/kikiyinfu/cruised/params"
	"github.com/kikiyinfu/cruised/utils"
)

var (
	Settings = CruisedSettings{}
)

// CruisedSettings carries the daemon configuration, including the static car
// parameters the controller needs. The ReverseAccChange and IsMetric toggles
// live in their own params so the control loop can re-read them every cycle.
type CruisedSettings struct {
	LogLevel           string  `json:"log_level"`
	CarBrand           string  `json:"car_brand"`
	PcmCruise          bool    `json:"pcm_cruise"`
	PcmCruiseSpeed     bool    `json:"pcm_cruise_speed"`
	SteerActuatorDelay float32 `json:"steer_actuator_delay"`
	DebugServerEnabled bool    `json:"debug_server_enabled"`
	DebugServerPort    int     `json:"debug_server_port"`
}

func (s *CruisedSettings) Default() {
	s.LogLevel = "error"
	s.CarBrand = ""
	s.PcmCruise = false
	s.PcmCruiseSpeed = false
	s.SteerActuatorDelay = 0.2
	s.DebugServerEnabled = false
	s.DebugServerPort = 8282
}

func (s *CruisedSettings) Recommended() {
	s.Default()
	s.LogLevel = "warn"
	s.DebugServerEnabled = true
}

func (s *CruisedSettings) Load() (success bool) {
	s.Default() // set defaults so settings not already in param are defaulted
	data, err := params.GetParam(params.CRUISED_SETTINGS)
	if err != nil {
		utils.Loge(err)
		return false
	}

	if !s.Unmarshal(data) {
		return false
	}

	s.setLogLevel()

	return true
}

func (s *CruisedSettings) Unmarshal(data []byte) bool {
	err := json.Unmarshal(data, s)
	if err != nil {
		utils.Loge(err)
		return false
	}
	return true
}

func (s *CruisedSettings) LoadWithRetries(tries int) {
	for range tries {
		if s.Load() {
			break
		}
		time.Sleep(1 * time.Second)
	}
	s.Save()
}

func (s *CruisedSettings) Marshal() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

func (s *CruisedSettings) Save() {
	data, err := s.Marshal()
	if err != nil {
		utils.Loge(err)
		return
	}
	err = params.PutParam(params.CRUISED_SETTINGS, data)
	if err != nil {
		utils.Loge(err)
		return
	}
}

func (s *CruisedSettings) setLogLevel() {
	switch strings.ToLower(s.LogLevel) {
	case "debug":
		slog.SetLogLoggerLevel(slog.LevelDebug)
	case "info":
		slog.SetLogLoggerLevel(slog.LevelInfo)
	case "warn":
		slog.SetLogLoggerLevel(slog.LevelWarn)
	default:
		slog.SetLogLoggerLevel(slog.LevelError)
	}
}

func (s *CruisedSettings) Handle(input custom.CruisedIn) {
	switch input.Type() {
	case custom.InputType_reloadSettings:
		s.Load()
	case custom.InputType_saveSettings:
		go s.Save()
	case custom.InputType_loadDefaultSettings:
		s.Default()
	case custom.InputType_loadRecommendedSettings:
		s.Recommended()
	case custom.InputType_setLogLevel:
		logLevel, err := input.Str()
		if err != nil {
			utils.Loge(err)
			return
		}
		s.LogLevel = logLevel
		s.setLogLevel()
	case custom.InputType_setSteerActuatorDelay:
		s.SteerActuatorDelay = input.Float()
	case custom.InputType_setCarBrand:
		brand, err := input.Str()
		if err != nil {
			utils.Loge(err)
			return
		}
		s.CarBrand = brand
	case custom.InputType_setPcmCruise:
		s.PcmCruise = input.Bool()
	case custom.InputType_setPcmCruiseSpeed:
		s.PcmCruiseSpeed = input.Bool()
	case custom.InputType_setReverseAccChange:
		utils.Loge(params.PutBool(params.REVERSE_ACC_CHANGE, input.Bool()))
	case custom.InputType_setIsMetric:
		utils.Loge(params.PutBool(params.IS_METRIC, input.Bool()))
	case custom.InputType_setDebugServer:
		s.DebugServerEnabled = input.Bool()
	case custom.InputType_setDebugServerPort:
		s.DebugServerPort = int(input.Float())
	}
}
