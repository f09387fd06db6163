package cereal

import (
	"github.com/kikiyinfu/cruised/cereal/custom"
	"github.com/kikiyinfu/cruised/cereal/log"
)

func CruisedInCreator(evt log.Event) (custom.CruisedIn, error) {
	return evt.NewCruisedIn()
}

func CruisedOutCreator(evt log.Event) (custom.CruisedOut, error) {
	return evt.NewCruisedOut()
}
