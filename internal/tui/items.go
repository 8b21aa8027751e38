package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/julianstephens/imaan/internal/analytics"
	"github.com/julianstephens/imaan/internal/cli"
	"github.com/julianstephens/imaan/internal/models"
	"github.com/julianstephens/imaan/internal/tui/components/entrylist"
)

func deedItems(deeds []models.GoodDeed, now time.Time, loc *time.Location) []entrylist.Item {
	items := make([]entrylist.Item, len(deeds))
	for i, d := range deeds {
		items[i] = entrylist.Item{
			ID:     d.ID,
			Name:   d.Description,
			Detail: cli.FormatTimestamp(d.Timestamp, now, loc),
		}
	}
	return items
}

func charityItems(donations []models.CharityDonation, now time.Time, loc *time.Location) []entrylist.Item {
	items := make([]entrylist.Item, len(donations))
	for i, d := range donations {
		items[i] = entrylist.Item{
			ID:     d.ID,
			Name:   fmt.Sprintf("%s  %s", cli.FormatAmount(decimal.NewFromFloat(d.Amount)), d.Description),
			Detail: cli.FormatTimestamp(d.Timestamp, now, loc),
		}
	}
	return items
}

func noteItems(notes []models.SpiritualNote, now time.Time, loc *time.Location) []entrylist.Item {
	items := make([]entrylist.Item, len(notes))
	for i, n := range notes {
		parts := []string{cli.FormatTimestamp(n.Timestamp, now, loc)}
		if len(n.Tags) > 0 {
			parts = append(parts, "#"+strings.Join(n.Tags, " #"))
		}
		parts = append(parts, cli.Truncate(n.Content, 60))
		items[i] = entrylist.Item{
			ID:     n.ID,
			Name:   n.Title,
			Detail: strings.Join(parts, " · "),
		}
	}
	return items
}

func goalItems(goals []models.Goal, now time.Time, loc *time.Location) []entrylist.Item {
	items := make([]entrylist.Item, len(goals))
	for i, g := range goals {
		detail := fmt.Sprintf("%s · %d/%d (%s) · due %s",
			g.Category, g.Current, g.Target, cli.FormatPercent(analytics.GoalPercent(g)), g.Deadline)
		if analytics.GoalOverdue(g, now, loc) {
			detail += " · overdue"
		}
		items[i] = entrylist.Item{
			ID:     g.ID,
			Name:   cli.Checkbox(g.Completed) + " " + g.Title,
			Detail: detail,
		}
	}
	return items
}
