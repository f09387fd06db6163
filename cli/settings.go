package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kikiyinfu/cruised/cereal/custom"
)

type SettingType int

const (
	String SettingType = iota
	Float
	Bool
)

type settingsState int

const (
	showSettingsMenu settingsState = iota
	settingsExit
	settingsInput
	saveSettings
	reloadSettings
)

type settingsItem struct {
	title, desc string
	state       settingsState
	MessageType custom.InputType
	Type        SettingType
}

func (i settingsItem) Title() string       { return i.title }
func (i settingsItem) Description() string { return i.desc }
func (i settingsItem) FilterValue() string { return i.title }

type settingsModel struct {
	list         list.Model
	state        settingsState
	textInput    textinput.Model
	selectedItem settingsItem
	prompt       string
}

func (m settingsModel) Init() tea.Cmd {
	return nil
}

func (mm *uiModel) sendInput(messageType custom.InputType, fill func(custom.CruisedIn)) {
	msg, input := mm.pub.NewMessage(true)
	input.SetType(messageType)
	if fill != nil {
		fill(input)
	}
	if err := mm.pub.Send(msg); err != nil {
		panic(err)
	}
}

func (m settingsModel) Update(msg tea.Msg, mm *uiModel) (settingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEnter && m.state == showSettingsMenu {
			it := m.list.SelectedItem().(settingsItem)
			m.selectedItem = it
			m.state = it.state
			switch m.state {
			case settingsExit:
				m.state = showSettingsMenu
				mm.state = showMenu
			case settingsInput:
				m.prompt = m.selectedItem.Title()
				m.textInput = textinput.New()
				m.textInput.Focus()
			case saveSettings:
				m.state = showSettingsMenu
				mm.state = showMenu
				mm.sendInput(custom.InputType_saveSettings, nil)
			case reloadSettings:
				m.state = showSettingsMenu
				mm.sendInput(custom.InputType_reloadSettings, nil)
			}
			return m, nil
		}
		if msg.Type == tea.KeyEnter && m.state == settingsInput {
			m.state = showSettingsMenu

			result := m.textInput.Value()
			mm.sendInput(m.selectedItem.MessageType, func(input custom.CruisedIn) {
				switch m.selectedItem.Type {
				case String:
					if err := input.SetStr(result); err != nil {
						panic(err)
					}
				case Bool:
					switch result {
					case "true":
						input.SetBool(true)
					case "false":
						input.SetBool(false)
					}
				case Float:
					val, err := strconv.ParseFloat(result, 32)
					if err != nil {
						panic(err)
					}
					input.SetFloat(float32(val))
				}
			})
			return m, nil
		}
		if msg.Type == tea.KeyEsc && m.state == settingsInput {
			m.state = showSettingsMenu
			return m, nil
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	}

	var cmd tea.Cmd
	if m.state == settingsInput {
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m settingsModel) View() string {
	switch m.state {
	case settingsInput:
		return docStyle.Render(fmt.Sprintf(
			"%s\n\n%s\n\n%s",
			m.prompt,
			m.textInput.View(),
			"(esc to cancel)",
		) + "\n")
	default:
		return docStyle.Render(m.list.View())
	}
}

func getSettingsModel() settingsModel {
	items := []list.Item{
		settingsItem{
			title:       "Car Brand",
			desc:        "The brand of the car, selects how cruise buttons adjust the set speed",
			MessageType: custom.InputType_setCarBrand,
			Type:        String,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Pcm Cruise",
			desc:        "When enabled the car's own cruise controller owns the engagement state",
			MessageType: custom.InputType_setPcmCruise,
			Type:        Bool,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Pcm Cruise Speed",
			desc:        "When enabled the car's own cruise controller owns the set speed",
			MessageType: custom.InputType_setPcmCruiseSpeed,
			Type:        Bool,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Steer Actuator Delay",
			desc:        "Seconds between a steer command and the actuator responding",
			MessageType: custom.InputType_setSteerActuatorDelay,
			Type:        Float,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Reverse Acc Change",
			desc:        "Swaps which press type jumps to the next interval and which steps by one",
			MessageType: custom.InputType_setReverseAccChange,
			Type:        Bool,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Is Metric",
			desc:        "When enabled the cluster displays kph, otherwise mph",
			MessageType: custom.InputType_setIsMetric,
			Type:        Bool,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Set Log Level",
			desc:        "Modify how verbose logging will be for the cruised system",
			MessageType: custom.InputType_setLogLevel,
			Type:        String,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Debug Server Enabled",
			desc:        "When enabled cruised serves its output over http and websocket",
			MessageType: custom.InputType_setDebugServer,
			Type:        Bool,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Debug Server Port",
			desc:        "The port the debug server listens on",
			MessageType: custom.InputType_setDebugServerPort,
			Type:        Float,
			state:       settingsInput,
		},
		settingsItem{
			title: "Reload Settings",
			desc:  "Discards unsaved changes and reloads the persisted settings",
			state: reloadSettings,
		},
		settingsItem{
			title: "Save Settings",
			desc:  "Persists any updates to the settings across reboots",
			state: saveSettings,
		},
		settingsItem{
			title: "Return to Main Menu",
			desc:  "Exit settings configuration and return to the initial actions menu",
			state: settingsExit,
		},
	}

	listDelegate := list.NewDefaultDelegate()
	m := settingsModel{list: list.New(items, listDelegate, 0, 0)}
	m.list.Title = "Cruised Settings"
	return m
}
