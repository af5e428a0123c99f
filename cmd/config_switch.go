package cmd

import (
	"fmt"

	"github.com/brogergvhs/tafsird/internal/config"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

type switchItem struct {
	Label  string
	Author string
	Output string
	Active bool
}

var configSwitchCmd = &cobra.Command{
	Use:   "switch [label]",
	Short: "Switch to a different configuration profile",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var label string

		if len(args) == 1 {
			label = args[0]
		} else {
			list, err := config.ListConfigs()
			if err != nil {
				return err
			}
			if len(list) == 0 {
				return fmt.Errorf("no configs available, run `tafsird config init`")
			}

			items := make([]switchItem, len(list))
			cursor := 0
			for i, c := range list {
				items[i] = switchItem{Label: c.Label, Active: c.Active}
				if cfg, err := config.LoadYAML(c.Path); err == nil {
					items[i].Author = cfg.Author
					items[i].Output = cfg.Output
				}
				if c.Active {
					cursor = i
				}
			}

			prompt := promptui.Select{
				Label:     "Select config",
				Items:     items,
				CursorPos: cursor,
				Templates: &promptui.SelectTemplates{
					Active:   `▸ {{ .Label | cyan }}{{ if .Active }} (active){{ end }}`,
					Inactive: `  {{ .Label }}{{ if .Active }} (active){{ end }}`,
					Selected: `Config: {{ .Label | green }}`,
					Details: `
author: {{ .Author }}
output: {{ .Output }}`,
				},
			}

			idx, _, err := prompt.Run()
			if err != nil {
				return fmt.Errorf("selection cancelled")
			}

			label = items[idx].Label
		}

		if err := config.SwitchConfig(label); err != nil {
			return err
		}

		fmt.Println("Switched to:", label)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSwitchCmd)
}
