package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"docrank/internal/report"
	"docrank/internal/tui"
)

var viewCmd = &cobra.Command{
	Use:   "view <result.json>",
	Short: "Browse a saved result document in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		result, err := report.Read(args[0])
		if err != nil {
			return err
		}
		_, err = tea.NewProgram(tui.New(result)).Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
