package system

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/julianstephens/imaan/internal/analytics"
	"github.com/julianstephens/imaan/internal/cli"
)

// StatusCmd prints the whole record for today
type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *cli.Context) error {
	r := ctx.Tracker.Record()
	s := analytics.Summarize(r, ctx.Clock(), ctx.Location())

	ctx.Printf("%s %s\n\n", cli.Header("Daily record"), cli.Muted(r.Date))
	ctx.Printf("Imaan level   %s %d/10\n", cli.RenderProgressBar(float64(r.ImaanLevel)*10, 10), r.ImaanLevel)
	if r.Note != "" {
		ctx.Printf("Reflection    %s\n", cli.Truncate(r.Note, 60))
	}

	var prayers []string
	for _, p := range r.Prayers {
		prayers = append(prayers, cli.Checkbox(p.Completed)+" "+p.Name)
	}
	ctx.Printf("Prayers       %s  (%d/%d)\n", strings.Join(prayers, "  "), s.PrayersCompleted, s.PrayersTotal)
	ctx.Printf("Dhikr         %d\n", r.DhikrCount)
	ctx.Printf("Quran         %d pages, %d minutes\n", r.QuranPages, r.QuranMinutes)
	ctx.Printf("Good deeds    %d\n", len(r.GoodDeeds))
	ctx.Printf("Charity       %s across %d donation(s)\n", cli.FormatAmount(s.CharityTotal), s.CharityCount)
	ctx.Printf("Notes         %d\n", len(r.SpiritualNotes))

	overdue := 0
	for _, g := range s.Goals {
		if g.Overdue {
			overdue++
		}
	}
	goals := fmt.Sprintf("%d/%d completed", s.GoalsCompleted, s.GoalsTotal)
	if overdue > 0 {
		goals += ", " + cli.Warn(fmt.Sprintf("%d overdue", overdue))
	}
	ctx.Printf("Goals         %s\n", goals)
	return nil
}

// StatsCmd prints the analytics view
type StatsCmd struct {
	JSON bool `help:"Print the statistics as JSON."`
}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	s := analytics.Summarize(ctx.Tracker.Record(), ctx.Clock(), ctx.Location())

	if c.JSON {
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal statistics: %w", err)
		}
		ctx.Println(string(data))
		return nil
	}

	ctx.Printf("Prayer completion  %s %s\n", cli.RenderProgressBar(s.PrayerRate, 20), cli.FormatPercent(s.PrayerRate))
	ctx.Printf("Goals progress     %s %s\n", cli.RenderProgressBar(s.GoalsProgress, 20), cli.FormatPercent(s.GoalsProgress))
	ctx.Printf("Charity total      %s\n\n", cli.FormatAmount(s.CharityTotal))

	ctx.Printf("%s\n", cli.RenderDayBars("Good deeds, last 7 days", s.Deeds, 20))
	ctx.Printf("%s\n", cli.RenderDayBars("Spiritual notes, last 7 days", s.Notes, 20))
	ctx.Printf("%s", cli.RenderDayBars("Donations, last 7 days", s.Charity, 20))

	if len(s.Goals) > 0 {
		ctx.Println()
		ctx.Println(cli.Header("Goals"))
		for _, g := range s.Goals {
			line := fmt.Sprintf("  %s %-30s %s %s", cli.Checkbox(g.Goal.Completed), cli.Truncate(g.Goal.Title, 30),
				cli.RenderProgressBar(g.Percent, 10), cli.FormatPercent(g.Percent))
			if g.Overdue {
				line += " " + cli.Warn("overdue")
			}
			ctx.Println(line)
		}
	}
	return nil
}
