package cli

import (
	"fmt"

	"github.com/manifoldco/promptui"

	"github.com/kikiyinfu/cruised/cereal"
	"github.com/kikiyinfu/cruised/cereal/custom"
	"github.com/kikiyinfu/cruised/params"
)

// presets sends a preset load followed by a save to an active instance.
func presets() error {
	prompt := promptui.Select{
		Label: "Select Preset",
		Items: []string{"Default", "Recommended"},
	}

	_, result, err := prompt.Run()
	if err != nil {
		return fmt.Errorf("prompt failed: %w", err)
	}

	inputType := custom.InputType_loadDefaultSettings
	if result == "Recommended" {
		inputType = custom.InputType_loadRecommendedSettings
	}

	pub := cereal.NewPublisher("cruisedIn", cereal.CruisedInCreator)
	for _, t := range []custom.InputType{inputType, custom.InputType_saveSettings} {
		msg, input := pub.NewMessage(true)
		input.SetType(t)
		if err := pub.Send(msg); err != nil {
			return err
		}
	}

	fmt.Printf("Loaded %s settings\n", result)
	return nil
}

func listParams() error {
	names, err := params.GetParams()
	if err != nil {
		return err
	}
	for _, name := range names {
		data, err := params.GetParam(params.ParamPath(name))
		if err != nil {
			return err
		}
		if params.IsString(data) {
			fmt.Printf("%s: %s\n", name, string(data))
		} else {
			fmt.Printf("%s: %x\n", name, data)
		}
	}
	return nil
}

func resetParam(name string) error {
	confirm := promptui.Prompt{
		Label:     fmt.Sprintf("Delete param %s", name),
		IsConfirm: true,
	}
	if _, err := confirm.Run(); err != nil {
		// declined
		return nil
	}
	return params.RemoveParam(params.ParamPath(name))
}
