package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Morris-Command-Center/agentic-skill-tree/internal/cli/formatter"
)

func newHistoryCmd(app *App) *cobra.Command {
	var challengeID string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded challenge completions, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			completions, err := app.Progression.Completions(context.Background(), challengeID)
			if err != nil {
				return err
			}

			if len(completions) == 0 {
				fmt.Println("No completions recorded yet.")
				return nil
			}

			headers := []string{"WHEN", "CHALLENGE", "XP", "RATING", "NOTES"}
			rows := make([][]string, 0, len(completions))
			for _, c := range completions {
				name := c.ChallengeID
				if ch, ok := app.Catalog.Challenge(c.ChallengeID); ok {
					name = ch.Name
				}
				notes := c.Notes
				if len(notes) > 40 {
					notes = notes[:37] + "..."
				}
				rows = append(rows, []string{
					c.CompletedAt.Local().Format("2006-01-02 15:04"),
					name,
					fmt.Sprintf("+%d", c.XPEarned),
					fmt.Sprintf("%d/5", c.SelfRating),
					formatter.Dim(notes),
				})
			}

			fmt.Print(formatter.RenderBox("History", formatter.RenderTable(headers, rows)))
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().StringVar(&challengeID, "challenge", "", "Filter by challenge ID")

	return cmd
}
