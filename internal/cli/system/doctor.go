package system

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/julianstephens/imaan/internal/backup"
	"github.com/julianstephens/imaan/internal/cli"
	"github.com/julianstephens/imaan/internal/constants"
	"github.com/julianstephens/imaan/internal/models"
	"github.com/julianstephens/imaan/internal/storage"
	"github.com/julianstephens/imaan/internal/tracker"
)

type DoctorCmd struct{}

// warning marks a check result that should not fail the run
type warning struct{ msg string }

func (w warning) Error() string { return w.msg }

type check struct {
	name string
	run  func(ctx *cli.Context) error
	// needsStore checks are skipped when storage could not be loaded
	needsStore bool
}

var checks = []check{
	{name: "Schema version", run: checkSchemaVersion, needsStore: true},
	{name: "Stored record", run: checkRecordReadable, needsStore: true},
	{name: "Record integrity", run: checkRecordIntegrity, needsStore: true},
	{name: "Backups present", run: checkBackupsPresent},
	{name: "Configuration", run: checkConfig},
	{name: "Clock/timezone", run: checkClockTimezone},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	failures := 0
	report := func(name string, err error) {
		var w warning
		switch {
		case err == nil:
			ctx.Printf("✓ %s: OK\n", name)
		case errors.As(err, &w):
			ctx.Printf("⚠ %s: WARNING\n", name)
			ctx.Printf("   %v\n", err)
		default:
			ctx.Printf("❌ %s: FAIL\n", name)
			ctx.Printf("   Error: %v\n", err)
			failures++
		}
	}

	reachable := checkStorageReachable(ctx)
	report("Storage reachable", reachable)

	for _, c := range checks {
		if c.needsStore && reachable != nil {
			ctx.Printf("⊘ %s: SKIPPED (storage not reachable)\n", c.name)
			continue
		}
		report(c.name, c.run(ctx))
	}

	ctx.Println()
	if failures > 0 {
		ctx.Println("Diagnostics completed with errors.")
		return fmt.Errorf("%d health check(s) failed", failures)
	}
	ctx.Println("All diagnostics passed!")
	return nil
}

func checkStorageReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}
	if _, err := ctx.Store.Namespaces(); err != nil {
		return fmt.Errorf("failed to read storage: %w", err)
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	sqliteStore, ok := ctx.Store.(*storage.SQLiteStore)
	if !ok {
		// JSON storage has no schema
		return nil
	}

	current, latest, err := sqliteStore.SchemaVersion()
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}
	if current > latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", current, latest)
	}
	if current < latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d", current, latest)
	}
	return nil
}

func storedRecord(ctx *cli.Context) (models.DailyRecord, error) {
	data, err := ctx.Store.Get(constants.StorageNamespace)
	if errors.Is(err, storage.ErrRecordNotFound) {
		return models.DailyRecord{}, warning{"no record stored yet; defaults are used until the first change"}
	}
	if err != nil {
		return models.DailyRecord{}, err
	}
	r, err := tracker.Decode(data)
	if err != nil {
		return models.DailyRecord{}, fmt.Errorf("stored record is unreadable and will be replaced by defaults: %w", err)
	}
	return r, nil
}

func checkRecordReadable(ctx *cli.Context) error {
	_, err := storedRecord(ctx)
	return err
}

func checkRecordIntegrity(ctx *cli.Context) error {
	r, err := storedRecord(ctx)
	if err != nil {
		var w warning
		if errors.As(err, &w) {
			return nil
		}
		return fmt.Errorf("record not readable")
	}

	if problems := RecordProblems(r); len(problems) > 0 {
		return errors.New(strings.Join(problems, "\n   "))
	}
	return nil
}

// RecordProblems lists every invariant the record breaks
func RecordProblems(r models.DailyRecord) []string {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if _, err := time.Parse(constants.DateFormat, r.Date); err != nil {
		add("date %q is not YYYY-MM-DD", r.Date)
	}
	if r.ImaanLevel < constants.MinImaanLevel || r.ImaanLevel > constants.MaxImaanLevel {
		add("imaan level %d is outside %d-%d", r.ImaanLevel, constants.MinImaanLevel, constants.MaxImaanLevel)
	}

	names := make([]string, len(r.Prayers))
	for i, p := range r.Prayers {
		names[i] = p.Name
	}
	if !slices.Equal(names, constants.PrayerNames) {
		add("prayers are %v, want %v", names, constants.PrayerNames)
	}

	if r.DhikrCount < 0 {
		add("dhikr count %d is negative", r.DhikrCount)
	}
	if r.QuranPages < 0 || r.QuranMinutes < 0 {
		add("quran progress %d pages/%d minutes is negative", r.QuranPages, r.QuranMinutes)
	}

	entries := func(kind string, ids, timestamps []string) {
		seen := make(map[string]bool, len(ids))
		for i, id := range ids {
			if id == "" {
				add("%s #%d has no id", kind, i+1)
			} else if seen[id] {
				add("duplicate %s id %s", kind, id)
			}
			seen[id] = true
			if timestamps == nil {
				continue
			}
			if _, err := time.Parse(time.RFC3339, timestamps[i]); err != nil {
				add("%s %s has invalid timestamp %q", kind, id, timestamps[i])
			}
		}
	}
	entries("good deed", cli.IDs(r.GoodDeeds, func(d models.GoodDeed) string { return d.ID }), models.Timestamps(r.GoodDeeds))
	entries("donation", cli.IDs(r.CharityDonations, func(d models.CharityDonation) string { return d.ID }), models.Timestamps(r.CharityDonations))
	entries("note", cli.IDs(r.SpiritualNotes, func(n models.SpiritualNote) string { return n.ID }), models.Timestamps(r.SpiritualNotes))
	entries("goal", cli.IDs(r.Goals, func(g models.Goal) string { return g.ID }), nil)

	for _, d := range r.CharityDonations {
		if d.Amount <= 0 {
			add("donation %s has non-positive amount %v", d.ID, d.Amount)
		}
	}
	for _, g := range r.Goals {
		if !slices.Contains(constants.GoalCategories, g.Category) {
			add("goal %s has unknown category %q", g.ID, g.Category)
		}
		if g.Target <= 0 {
			add("goal %s has non-positive target %d", g.ID, g.Target)
		}
		if g.Current < 0 {
			add("goal %s has negative progress %d", g.ID, g.Current)
		}
		if _, err := time.Parse(constants.DateFormat, g.Deadline); err != nil {
			add("goal %s has invalid deadline %q", g.ID, g.Deadline)
		}
	}
	return problems
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath(), ctx.Config.Backup.MaxBackups)
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return warning{"no backups found - consider creating one with 'imaan backup create'"}
	}
	return nil
}

func checkConfig(ctx *cli.Context) error {
	if err := ctx.Config.Validate(); err != nil {
		return err
	}
	if _, err := ctx.Config.Location(); err != nil {
		return err
	}
	return nil
}

func checkClockTimezone(ctx *cli.Context) error {
	now := ctx.Clock()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
