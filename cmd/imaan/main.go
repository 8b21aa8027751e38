package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/imaan/internal/cli"
	"github.com/julianstephens/imaan/internal/cli/backups"
	"github.com/julianstephens/imaan/internal/cli/goals"
	"github.com/julianstephens/imaan/internal/cli/system"
	"github.com/julianstephens/imaan/internal/cli/tracking"
	"github.com/julianstephens/imaan/internal/config"
	"github.com/julianstephens/imaan/internal/constants"
	apperrors "github.com/julianstephens/imaan/internal/errors"
	"github.com/julianstephens/imaan/internal/logger"
	"github.com/julianstephens/imaan/internal/storage"
	"github.com/julianstephens/imaan/internal/validation"
)

// CLI is the command tree
type CLI struct {
	Version kong.VersionFlag
	Data    string `help:"Data file path. A .json path uses JSON storage, anything else SQLite." type:"path"`
	Config  string `help:"Config file path (defaults to $IMAAN_CONFIG or ~/.config/imaan/config.toml)." type:"path"`
	Verbose bool   `name:"debug" help:"Log debug output to stderr."`

	Init   system.InitCmd   `cmd:"" help:"Initialize imaan storage."`
	Tui    system.TuiCmd    `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Status system.StatusCmd `cmd:"" help:"Show today's record."`
	Stats  system.StatsCmd  `cmd:"" help:"Show statistics and 7-day activity."`
	Doctor system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Debug  system.DebugCmd  `cmd:"" help:"Debug commands for troubleshooting."`
	Export system.ExportCmd `cmd:"" help:"Export today's record as JSON or YAML."`
	Import system.ImportCmd `cmd:"" help:"Replace today's record with an exported one."`

	Imaan struct {
		Set tracking.ImaanSetCmd `cmd:"" help:"Set the imaan level (0-10)."`
	} `cmd:"" help:"Imaan level."`
	Note struct {
		Set tracking.NoteSetCmd `cmd:"" help:"Set the daily reflection note."`
	} `cmd:"" help:"Daily reflection note."`
	Prayer struct {
		List   tracking.PrayerListCmd   `cmd:"" help:"List today's prayers." default:"1"`
		Toggle tracking.PrayerToggleCmd `cmd:"" help:"Mark a prayer as prayed or not prayed."`
	} `cmd:"" help:"Daily prayers."`
	Dhikr struct {
		Count tracking.DhikrCountCmd `cmd:"" help:"Add to the dhikr counter." default:"1"`
		Reset tracking.DhikrResetCmd `cmd:"" help:"Reset the dhikr counter."`
	} `cmd:"" help:"Dhikr counter."`
	Quran struct {
		Set tracking.QuranSetCmd `cmd:"" help:"Set pages and minutes read today." default:"1"`
	} `cmd:"" help:"Quran reading progress."`
	Deed struct {
		Add  tracking.DeedAddCmd  `cmd:"" help:"Record a good deed."`
		Rm   tracking.DeedRmCmd   `cmd:"" help:"Remove a good deed."`
		List tracking.DeedListCmd `cmd:"" help:"List good deeds." default:"1"`
	} `cmd:"" help:"Good deeds."`
	Charity struct {
		Add  tracking.CharityAddCmd  `cmd:"" help:"Record a donation."`
		Rm   tracking.CharityRmCmd   `cmd:"" help:"Remove a donation."`
		List tracking.CharityListCmd `cmd:"" help:"List donations and their total." default:"1"`
	} `cmd:"" help:"Charity donations."`
	Notes struct {
		Add  tracking.NotesAddCmd  `cmd:"" help:"Write a spiritual note."`
		Rm   tracking.NotesRmCmd   `cmd:"" help:"Remove a note."`
		List tracking.NotesListCmd `cmd:"" help:"List notes." default:"1"`
	} `cmd:"" help:"Spiritual notes."`
	Goal struct {
		Add      goals.GoalAddCmd      `cmd:"" help:"Add a goal."`
		Progress goals.GoalProgressCmd `cmd:"" help:"Set a goal's progress."`
		Toggle   goals.GoalToggleCmd   `cmd:"" help:"Mark a goal complete or reopen it."`
		Rm       goals.GoalRmCmd       `cmd:"" help:"Remove a goal."`
		List     goals.GoalListCmd     `cmd:"" help:"List goals." default:"1"`
	} `cmd:"" help:"Goals."`
	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage data backups."`
}

func newParser(c *CLI, opts ...kong.Option) (*kong.Kong, error) {
	return kong.New(c, append([]kong.Option{
		kong.Name(constants.AppName),
		kong.Description("Daily spiritual tracker: prayers, dhikr, Quran, deeds, charity, notes and goals"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	}, opts...)...)
}

func main() {
	var c CLI
	parser, err := newParser(&c)
	if err != nil {
		panic(err)
	}
	kctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	if err := run(kctx, &c, os.Stdout, nil); err != nil {
		apperrors.Fatal(err)
	}
}

// run executes the parsed command. now overrides the wall clock when non-nil.
func run(kctx *kong.Context, c *CLI, out io.Writer, now func() time.Time) error {
	configPath := config.ResolvePath(c.Config)
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if c.Data != "" {
		cfg.General.DataPath = c.Data
	}

	if err := logger.Init(logger.Config{
		Debug:     c.Verbose || cfg.Log.Debug,
		Level:     cfg.Log.Level,
		ConfigDir: config.ConfigDir(),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}

	store := storage.New(cfg.DataPath())
	defer store.Close()

	appCtx := &cli.Context{
		Store:      store,
		Config:     cfg,
		ConfigPath: configPath,
		Validator:  validation.New(),
		Out:        out,
		Now:        now,
	}

	// init and doctor handle storage themselves; everything else needs a loaded store
	selected := ""
	if kctx.Selected() != nil {
		selected = kctx.Selected().Name
	}
	if selected != "init" && selected != "doctor" {
		if err := loadStore(store); err != nil {
			return err
		}
		if err := appCtx.OpenTracker(); err != nil {
			return err
		}
	}

	logger.Debug("running command", "command", kctx.Command(), "data", store.GetConfigPath())
	return kctx.Run(appCtx)
}

// loadStore loads storage, creating it on first use
func loadStore(store storage.Provider) error {
	err := store.Load()
	if !errors.Is(err, storage.ErrNotInitialized) {
		return err
	}
	logger.Info("initializing storage on first use", "path", store.GetConfigPath())
	if err := store.Init(); err != nil {
		return err
	}
	return store.Load()
}
