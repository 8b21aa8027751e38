package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/julianstephens/imaan/internal/backup"
	"github.com/julianstephens/imaan/internal/config"
	"github.com/julianstephens/imaan/internal/logger"
	"github.com/julianstephens/imaan/internal/storage"
	"github.com/julianstephens/imaan/internal/tracker"
	"github.com/julianstephens/imaan/internal/validation"
)

// Context is handed to every command's Run method.
// Tracker is nil for commands that run before storage is loaded (init, doctor).
type Context struct {
	Store      storage.Provider
	Tracker    *tracker.Store
	Config     config.Config
	ConfigPath string
	Validator  *validation.Validator

	// Out receives command output; nil means stdout
	Out io.Writer
	// Now overrides the wall clock in tests
	Now func() time.Time
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath(), c.Config.Backup.MaxBackups)
	if _, err := mgr.CreateBackup(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// OpenTracker loads the record from Store with the configured timezone and
// prayer times. The store must already be loaded.
func (c *Context) OpenTracker() error {
	loc, err := c.Config.Location()
	if err != nil {
		return err
	}
	opts := []tracker.Option{
		tracker.WithLocation(loc),
		tracker.WithPrayerTimes(c.Config.PrayerTimes()),
	}
	if c.Now != nil {
		opts = append(opts, tracker.WithClock(c.Now))
	}
	c.Tracker = tracker.Open(c.Store, opts...)
	return nil
}

// Validate runs the input checks, creating the validator on first use
func (c *Context) Validate(input any) error {
	if c.Validator == nil {
		c.Validator = validation.New()
	}
	return c.Validator.Struct(input)
}

// Persisted reports the outcome of the last write. Commands call it after a
// mutation so the user learns the change only lives in memory.
func (c *Context) Persisted() {
	if err := c.Tracker.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: change was not saved: %v\n", err)
	}
}

func (c *Context) Clock() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// Location returns the configured timezone, falling back to local time
func (c *Context) Location() *time.Location {
	loc, err := c.Config.Location()
	if err != nil {
		return time.Local
	}
	return loc
}

func (c *Context) Writer() io.Writer {
	if c.Out != nil {
		return c.Out
	}
	return os.Stdout
}

func (c *Context) Printf(format string, args ...any) {
	fmt.Fprintf(c.Writer(), format, args...)
}

func (c *Context) Println(args ...any) {
	fmt.Fprintln(c.Writer(), args...)
}
