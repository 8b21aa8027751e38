package system

import (
	"fmt"
	"os"

	"github.com/julianstephens/imaan/internal/cli"
	"github.com/julianstephens/imaan/internal/config"
)

type InitCmd struct {
	Force bool `help:"Force reset by deleting existing data before initialization."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	dataPath := ctx.Store.GetConfigPath()

	if _, err := os.Stat(dataPath); err == nil {
		if !c.Force {
			return fmt.Errorf("storage already initialized at %s (use --force to start over)", dataPath)
		}
		// keep a copy of what is about to be wiped
		ctx.PerformAutomaticBackup()
		if err := ctx.Store.Close(); err != nil {
			return fmt.Errorf("failed to close existing storage: %w", err)
		}
		for _, p := range []string{dataPath, dataPath + "-wal", dataPath + "-shm"} {
			if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to delete existing data: %w", err)
			}
		}
		ctx.Printf("Deleted existing data at: %s\n", dataPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to access existing data: %w", err)
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	if err := ctx.OpenTracker(); err != nil {
		return err
	}
	// write the default record so the file is complete from the start
	ctx.Tracker.Reset()
	if err := ctx.Tracker.Err(); err != nil {
		return fmt.Errorf("failed to write initial record: %w", err)
	}
	ctx.Printf("Initialized imaan storage at: %s\n", dataPath)

	if ctx.ConfigPath != "" {
		if _, err := os.Stat(ctx.ConfigPath); os.IsNotExist(err) {
			if err := config.Save(ctx.ConfigPath, ctx.Config); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			ctx.Printf("Wrote default config to: %s\n", ctx.ConfigPath)
		}
	}
	return nil
}
