package cli

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/Morris-Command-Center/agentic-skill-tree/internal/catalog"
	"github.com/Morris-Command-Center/agentic-skill-tree/internal/service"
)

// App holds references to everything the CLI commands operate on.
type App struct {
	Catalog     *catalog.Catalog
	Progression service.ProgressionService
	Stats       service.StatsService
	Logger      *log.Logger

	// HTTPPort is the listen port for the serve command.
	HTTPPort string

	// IsInteractive reports whether stdin is a terminal; interactive forms
	// are only offered when it returns true.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "skilltree" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "skilltree",
		Short: "Track skill progression through deliberate practice challenges",
	}

	root.AddCommand(
		newServeCmd(app),
		newProgressCmd(app),
		newStatsCmd(app),
		newCompleteCmd(app),
		newConfidenceCmd(app),
		newHistoryCmd(app),
		newLearnCmd(app),
		newAchievementsCmd(app),
		newDashboardCmd(app),
	)

	return root
}
