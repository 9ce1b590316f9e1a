package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Morris-Command-Center/agentic-skill-tree/internal/cli/formatter"
)

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show overall progression stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := app.Stats.Summary(context.Background())
			if err != nil {
				return err
			}

			headers := []string{"BRANCH", "PROGRESS", "XP"}
			rows := make([][]string, 0, len(summary.Branches))
			// Branch order follows the catalog, not the map.
			for _, branch := range app.Catalog.Branches() {
				bs, ok := summary.Branches[branch.ID]
				if !ok {
					continue
				}
				rows = append(rows, []string{
					bs.Name,
					formatter.RenderBranchBar(bs.CompletedSkills, bs.TotalSkills, 12),
					fmt.Sprintf("%d", bs.TotalXP),
				})
			}

			content := formatter.RenderTable(headers, rows)
			content += fmt.Sprintf("\n%s %d XP · %d challenges completed\n",
				formatter.Bold("Total:"), summary.TotalXP, summary.ChallengesCompleted)

			fmt.Print(formatter.RenderBox("Stats", content))
			fmt.Println()
			return nil
		},
	}
}
