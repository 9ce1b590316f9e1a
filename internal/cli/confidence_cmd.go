package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Morris-Command-Center/agentic-skill-tree/internal/cli/formatter"
	"github.com/Morris-Command-Center/agentic-skill-tree/internal/domain"
)

func newConfidenceCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "confidence SKILL LEVEL",
		Short: "Set the confidence for a skill (red, yellow, green)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			skillID, conf := args[0], domain.Confidence(args[1])

			if err := app.Progression.UpdateConfidence(context.Background(), skillID, conf); err != nil {
				return err
			}

			fmt.Printf("%s %s → %s\n", formatter.StyleGreen.Render("✓"),
				skillID, formatter.ConfidenceIndicator(conf))
			return nil
		},
	}
}
