package cereal

import (
	"github.com/kikiyinfu/cruised/cereal/car"
	"github.com/kikiyinfu/cruised/cereal/custom"
	"github.com/kikiyinfu/cruised/cereal/log"
)

func CarStateReader(evt log.Event) (car.CarState, error) {
	return evt.CarState()
}

func LateralPlanReader(evt log.Event) (custom.LateralPlan, error) {
	return evt.LateralPlan()
}

func CruisedInReader(evt log.Event) (custom.CruisedIn, error) {
	return evt.CruisedIn()
}

func CruisedOutReader(evt log.Event) (custom.CruisedOut, error) {
	return evt.CruisedOut()
}
