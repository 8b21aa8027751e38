package tracking

import (
	"fmt"

	"github.com/julianstephens/imaan/internal/analytics"
	"github.com/julianstephens/imaan/internal/cli"
	"github.com/julianstephens/imaan/internal/validation"
)

type PrayerListCmd struct{}

func (c *PrayerListCmd) Run(ctx *cli.Context) error {
	r := ctx.Tracker.Record()

	rows := make([][]string, 0, len(r.Prayers))
	for _, p := range r.Prayers {
		rows = append(rows, []string{cli.Checkbox(p.Completed), p.Name, p.Time})
	}
	ctx.Printf("%s", cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Prayers for %s", r.Date),
		Headers: []string{"", "Prayer", "Time"},
		Rows:    rows,
	}))
	ctx.Printf("%d/%d completed (%s)\n", r.CompletedPrayers(), len(r.Prayers),
		cli.FormatPercent(analytics.PrayerCompletionRate(r)))
	return nil
}

type PrayerToggleCmd struct {
	Name string `arg:"" help:"Prayer name (Fajr, Dhuhr, Asr, Maghrib, Isha)."`
}

func (c *PrayerToggleCmd) Run(ctx *cli.Context) error {
	name := validation.NormalizePrayerName(c.Name)
	if err := ctx.Validate(validation.PrayerInput{Name: name}); err != nil {
		return err
	}

	ctx.Tracker.TogglePrayer(name)
	ctx.Persisted()

	for _, p := range ctx.Tracker.Record().Prayers {
		if p.Name != name {
			continue
		}
		if p.Completed {
			ctx.Printf("✓ %s marked as prayed\n", name)
		} else {
			ctx.Printf("✓ %s marked as not prayed\n", name)
		}
	}
	return nil
}
