package system

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/imaan/internal/cli"
	"github.com/julianstephens/imaan/internal/logger"
	"github.com/julianstephens/imaan/internal/tui"
	"github.com/julianstephens/imaan/internal/watch"
)

type TuiCmd struct {
	NoWatch bool `help:"Do not reload when the data file changes on disk."`
}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	// Perform automatic backup on TUI startup (after successful load)
	ctx.PerformAutomaticBackup()

	model := tui.NewModel(ctx.Tracker, tui.WithLocation(ctx.Location()), tui.WithClock(ctx.Clock))
	defer model.Close()

	if ctx.Config.General.Watch && !c.NoWatch {
		w, err := watch.New(ctx.Store.GetConfigPath(), func() { ctx.Tracker.Reload() })
		if err != nil {
			logger.Warn("file watcher unavailable", "error", err)
		} else {
			watchCtx, cancel := context.WithCancel(context.Background())
			defer cancel()
			defer w.Stop()
			if err := w.Start(watchCtx); err != nil {
				logger.Warn("file watcher unavailable", "error", err)
			}
		}
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard exited: %w", err)
	}
	return nil
}
