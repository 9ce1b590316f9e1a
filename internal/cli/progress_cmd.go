package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Morris-Command-Center/agentic-skill-tree/internal/cli/formatter"
)

func newProgressCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "progress [SKILL]",
		Short: "Show skill progression, for one skill or the whole tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if len(args) == 1 {
				return showSkillProgress(ctx, app, args[0])
			}
			return showTree(ctx, app)
		},
	}
}

func showSkillProgress(ctx context.Context, app *App, skillID string) error {
	skill, ok := app.Catalog.Skill(skillID)
	if !ok {
		return fmt.Errorf("unknown skill %q", skillID)
	}

	p, err := app.Progression.SkillProgress(ctx, skillID)
	if err != nil {
		return err
	}

	fmt.Println(formatter.Header(skill.Name))
	fmt.Printf("%s  %s\n", formatter.LevelIndicator(p.Level), formatter.ConfidenceIndicator(p.Confidence))
	fmt.Println(formatter.RenderXPBar(p, skill.XPRequired, 20))
	if skill.Description != "" {
		fmt.Println(formatter.Dim(skill.Description))
	}
	if len(skill.Prerequisites) > 0 {
		fmt.Printf("Prerequisites: %v\n", skill.Prerequisites)
	}

	challenges := app.Catalog.ChallengesForSkill(skillID)
	if len(challenges) > 0 {
		fmt.Println()
		fmt.Println(formatter.Bold("Challenges"))
		for _, ch := range challenges {
			fmt.Printf("  %s %s (%d XP, %s)\n", formatter.Dim("·"), ch.Name, ch.XPReward, ch.Difficulty)
		}
	}
	return nil
}

func showTree(ctx context.Context, app *App) error {
	up, err := app.Stats.UserProgress(ctx)
	if err != nil {
		return err
	}

	for _, branch := range app.Catalog.Branches() {
		fmt.Println(formatter.Header(branch.Name))
		headers := []string{"SKILL", "LEVEL", "XP", "CONFIDENCE"}
		rows := make([][]string, 0, len(branch.Skills))
		for _, skill := range branch.Skills {
			p, ok := up.Skills[skill.ID]
			if !ok {
				rows = append(rows, []string{
					skill.Name,
					formatter.LevelIndicator("locked"),
					fmt.Sprintf("0/%d", skill.XPRequired),
					formatter.ConfidenceIndicator("red"),
				})
				continue
			}
			rows = append(rows, []string{
				skill.Name,
				formatter.LevelIndicator(p.Level),
				fmt.Sprintf("%d/%d", p.CurrentXP, skill.XPRequired),
				formatter.ConfidenceIndicator(p.Confidence),
			})
		}
		fmt.Println(formatter.RenderTable(headers, rows))
	}

	fmt.Printf("%s %d XP across %d completions\n",
		formatter.Bold("Total:"), up.TotalXP, up.ChallengesCompleted)
	return nil
}
