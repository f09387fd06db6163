package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kikiyinfu/cruised/cereal/custom"
)

type outputModel struct {
	output custom.CruisedOut
	valid  bool
}

func (m outputModel) Update(msg tea.Msg, mm *uiModel) (outputModel, tea.Cmd) {
	return m, nil
}

func (m outputModel) View() string {
	if !m.valid {
		return ""
	}
	return docStyle.Render(fmt.Sprintf(
		"set speed: %f\ncluster speed: %f\ndesired curvature: %f\ndesired curvature rate: %f\nfast mode: %t\ninitialized: %t",
		m.output.VCruise(),
		m.output.VCruiseCluster(),
		m.output.DesiredCurvature(),
		m.output.DesiredCurvatureRate(),
		m.output.FastMode(),
		m.output.Initialized(),
	) + "\n")
}
