package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Morris-Command-Center/agentic-skill-tree/internal/cli/formatter"
)

func newAchievementsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "achievements",
		Short: "List achievements and their unlock state",
		RunE: func(cmd *cobra.Command, args []string) error {
			statuses, err := app.Progression.Achievements(context.Background())
			if err != nil {
				return err
			}

			if len(statuses) == 0 {
				fmt.Println("No achievements defined.")
				return nil
			}

			headers := []string{"", "ACHIEVEMENT", "UNLOCKED"}
			rows := make([][]string, 0, len(statuses))
			for _, s := range statuses {
				unlocked := formatter.Dim("—")
				if s.Unlocked {
					unlocked = formatter.StyleGreen.Render(s.UnlockedAt.Local().Format("2006-01-02"))
				}
				rows = append(rows, []string{s.Icon, s.Name, unlocked})
			}

			fmt.Print(formatter.RenderBox("Achievements", formatter.RenderTable(headers, rows)))
			fmt.Println()
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "unlock ID",
		Short: "Unlock an achievement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Progression.UnlockAchievement(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("%s unlocked %s\n", formatter.StyleGreen.Render("✓"), args[0])
			return nil
		},
	})

	return cmd
}
