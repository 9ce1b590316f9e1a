package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLearnCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "learn SKILL",
		Short: "Show the learning content for a skill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := app.Catalog.LearningContent(args[0])
			if err != nil {
				return err
			}
			fmt.Print(string(content))
			return nil
		},
	}
}
