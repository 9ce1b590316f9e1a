package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Morris-Command-Center/agentic-skill-tree/internal/cli/formatter"
	"github.com/Morris-Command-Center/agentic-skill-tree/internal/domain"
	"github.com/spf13/cobra"
)

// dashboardData holds everything the dashboard renders in one snapshot.
type dashboardData struct {
	summary  *domain.Stats
	progress *domain.UserProgress
}

// dashboardLoadedMsg signals that a snapshot has been loaded.
type dashboardLoadedMsg struct {
	data dashboardData
	err  error
}

type dashboardKeyMap struct {
	Refresh key.Binding
	Quit    key.Binding
}

var dashboardKeys = dashboardKeyMap{
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// dashboardModel is a read-only live view over the skill tree.
type dashboardModel struct {
	app     *App
	data    *dashboardData
	loading bool
	err     error
	width   int
}

func newDashboardModel(app *App) dashboardModel {
	return dashboardModel{app: app, loading: true}
}

func (m dashboardModel) Init() tea.Cmd {
	return m.load()
}

func (m dashboardModel) load() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		ctx := context.Background()
		summary, err := app.Stats.Summary(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		progress, err := app.Stats.UserProgress(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		return dashboardLoadedMsg{data: dashboardData{summary: summary, progress: progress}}
	}
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case dashboardLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.data = &msg.data
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, dashboardKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, dashboardKeys.Refresh):
			m.loading = true
			return m, m.load()
		}
	}
	return m, nil
}

func (m dashboardModel) View() string {
	var b strings.Builder

	b.WriteString(formatter.Header("Skill Tree"))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(formatter.Dim("Loading..."))
	case m.err != nil:
		b.WriteString(formatter.StyleRed.Render("Error: " + m.err.Error()))
	case m.data != nil:
		b.WriteString(m.renderBranches())
	}

	b.WriteString("\n\n")
	b.WriteString(formatter.Dim("r refresh · q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m dashboardModel) renderBranches() string {
	var b strings.Builder

	for _, branch := range m.app.Catalog.Branches() {
		bs, ok := m.data.summary.Branches[branch.ID]
		if !ok {
			continue
		}
		b.WriteString(fmt.Sprintf("%s  %s  %s\n",
			formatter.Bold(bs.Name),
			formatter.RenderBranchBar(bs.CompletedSkills, bs.TotalSkills, 16),
			formatter.Dim(fmt.Sprintf("%d XP", bs.TotalXP))))

		for _, skill := range branch.Skills {
			p, ok := m.data.progress.Skills[skill.ID]
			if !ok {
				p = domain.NewSkillProgress(skill.ID)
			}
			b.WriteString(fmt.Sprintf("  %-20s %s %s\n",
				skill.Name,
				formatter.RenderXPBar(p, skill.XPRequired, 12),
				formatter.LevelIndicator(p.Level)))
		}
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("%s %d XP · %d challenges completed",
		formatter.Bold("Total:"),
		m.data.summary.TotalXP, m.data.summary.ChallengesCompleted))
	return b.String()
}

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Interactive skill tree dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("dashboard requires an interactive terminal")
			}
			_, err := tea.NewProgram(newDashboardModel(app), tea.WithAltScreen()).Run()
			return err
		},
	}
}
