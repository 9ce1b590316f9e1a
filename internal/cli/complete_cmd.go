package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Morris-Command-Center/agentic-skill-tree/internal/cli/formatter"
	"github.com/Morris-Command-Center/agentic-skill-tree/internal/domain"
	"github.com/Morris-Command-Center/agentic-skill-tree/internal/service"
)

func newCompleteCmd(app *App) *cobra.Command {
	var notes string
	var rating int
	var conf domain.Confidence
	confFlag := &confidenceValue{conf: &conf}

	cmd := &cobra.Command{
		Use:   "complete [CHALLENGE]",
		Short: "Record a challenge completion and award its XP",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			challengeID := ""
			if len(args) == 1 {
				challengeID = args[0]
			}

			// Fall back to the interactive form when the command line did
			// not pin down the completion and we are on a terminal.
			if (challengeID == "" || rating == 0) && app.interactive() {
				if rating == 0 {
					rating = 3
				}
				confStr := confFlag.String()
				form := completionForm(app, &challengeID, &rating, &confStr, &notes)
				if err := form.Run(); err != nil {
					return err
				}
				if confStr != "" {
					conf = domain.Confidence(confStr)
					confFlag.set = true
				}
			}

			if challengeID == "" {
				return fmt.Errorf("challenge id required (pass it as an argument)")
			}

			req := service.CompletionRequest{
				ChallengeID: challengeID,
				Notes:       notes,
				SelfRating:  rating,
			}
			if confFlag.set {
				req.Confidence = &conf
			}

			res, err := app.Progression.RecordCompletion(ctx, req)
			if err != nil {
				return err
			}

			fmt.Printf("%s +%d XP\n", formatter.StyleGreen.Render("✓"), res.XPEarned)

			challenge, ok := app.Catalog.Challenge(challengeID)
			if !ok {
				return nil
			}
			for _, skillID := range challenge.SkillIDs {
				p, err := app.Progression.SkillProgress(ctx, skillID)
				if err != nil {
					continue
				}
				skill, _ := app.Catalog.Skill(skillID)
				fmt.Printf("  %s %s %s\n", formatter.Bold(skill.Name),
					formatter.RenderXPBar(p, skill.XPRequired, 12),
					formatter.LevelIndicator(p.Level))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&notes, "notes", "", "Completion notes")
	cmd.Flags().IntVar(&rating, "rating", 0, "Self rating 1-5")
	cmd.Flags().Var(confFlag, "confidence", "Confidence for the trained skills (red, yellow, green)")

	return cmd
}
