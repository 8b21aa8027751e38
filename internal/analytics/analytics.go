// Package analytics derives read-only statistics from a DailyRecord.
// Nothing here is cached; every call works from the live collections.
package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/julianstephens/imaan/internal/constants"
	"github.com/julianstephens/imaan/internal/models"
)

// DayBucket counts entries captured on one calendar day
type DayBucket struct {
	Date  time.Time `json:"date"` // midnight of the day in the bucketing location
	Count int       `json:"count"`
}

// Label returns the short weekday name used on chart axes
func (b DayBucket) Label() string {
	return b.Date.Format("Mon")
}

// GoalStatus pairs a goal with its derived progress
type GoalStatus struct {
	Goal    models.Goal `json:"goal"`
	Percent float64     `json:"percent"`
	Overdue bool        `json:"overdue"`
}

// Summary bundles every derived value for renderers
type Summary struct {
	Date       string `json:"date"`
	ImaanLevel int    `json:"imaanLevel"`

	PrayersCompleted int     `json:"prayersCompleted"`
	PrayersTotal     int     `json:"prayersTotal"`
	PrayerRate       float64 `json:"prayerRate"`

	GoalsCompleted int          `json:"goalsCompleted"`
	GoalsTotal     int          `json:"goalsTotal"`
	GoalsProgress  float64      `json:"goalsProgress"`
	Goals          []GoalStatus `json:"goals"`

	DhikrCount   int `json:"dhikrCount"`
	QuranPages   int `json:"quranPages"`
	QuranMinutes int `json:"quranMinutes"`

	CharityTotal decimal.Decimal `json:"charityTotal"`
	CharityCount int             `json:"charityCount"`

	Deeds   []DayBucket `json:"deeds"`
	Notes   []DayBucket `json:"notes"`
	Charity []DayBucket `json:"charity"`
}

// PrayerCompletionRate is completed/total×100, 0 when there are no prayers
func PrayerCompletionRate(r models.DailyRecord) float64 {
	return percent(r.CompletedPrayers(), len(r.Prayers))
}

// GoalsProgress is completed goals/total×100, 0 when there are no goals
func GoalsProgress(r models.DailyRecord) float64 {
	return percent(r.CompletedGoals(), len(r.Goals))
}

// CharityTotal sums donation amounts exactly
func CharityTotal(donations []models.CharityDonation) decimal.Decimal {
	total := decimal.Zero
	for _, d := range donations {
		total = total.Add(decimal.NewFromFloat(d.Amount))
	}
	return total
}

// GoalPercent is current/target×100. It is not capped at 100.
func GoalPercent(g models.Goal) float64 {
	return percent(g.Current, g.Target)
}

// GoalOverdue reports whether an incomplete goal's deadline day has fully passed in loc.
// Goals without a parseable deadline are never overdue.
func GoalOverdue(g models.Goal, now time.Time, loc *time.Location) bool {
	if g.Completed {
		return false
	}
	deadline, err := time.ParseInLocation(constants.DateFormat, g.Deadline, loc)
	if err != nil {
		return false
	}
	return !now.In(loc).Before(deadline.AddDate(0, 0, 1))
}

// Last7Days buckets timestamps into the ActivityWindowDays calendar days
// ending today (inclusive), oldest first. Timestamps outside the window or
// that fail to parse are ignored.
func Last7Days(timestamps []string, now time.Time, loc *time.Location) []DayBucket {
	if loc == nil {
		loc = time.Local
	}
	local := now.In(loc)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	buckets := make([]DayBucket, constants.ActivityWindowDays)
	index := make(map[string]int, len(buckets))
	for i := range buckets {
		day := today.AddDate(0, 0, i-(len(buckets)-1))
		buckets[i] = DayBucket{Date: day}
		index[day.Format(constants.DateFormat)] = i
	}

	for _, ts := range timestamps {
		t, err := time.Parse(time.RFC3339, ts)
		if err != nil {
			continue
		}
		if i, ok := index[t.In(loc).Format(constants.DateFormat)]; ok {
			buckets[i].Count++
		}
	}
	return buckets
}

// Summarize computes the full analytics view of r at now
func Summarize(r models.DailyRecord, now time.Time, loc *time.Location) Summary {
	if loc == nil {
		loc = time.Local
	}

	goals := make([]GoalStatus, len(r.Goals))
	for i, g := range r.Goals {
		goals[i] = GoalStatus{
			Goal:    g,
			Percent: GoalPercent(g),
			Overdue: GoalOverdue(g, now, loc),
		}
	}

	return Summary{
		Date:             r.Date,
		ImaanLevel:       r.ImaanLevel,
		PrayersCompleted: r.CompletedPrayers(),
		PrayersTotal:     len(r.Prayers),
		PrayerRate:       PrayerCompletionRate(r),
		GoalsCompleted:   r.CompletedGoals(),
		GoalsTotal:       len(r.Goals),
		GoalsProgress:    GoalsProgress(r),
		Goals:            goals,
		DhikrCount:       r.DhikrCount,
		QuranPages:       r.QuranPages,
		QuranMinutes:     r.QuranMinutes,
		CharityTotal:     CharityTotal(r.CharityDonations),
		CharityCount:     len(r.CharityDonations),
		Deeds:            Last7Days(models.Timestamps(r.GoodDeeds), now, loc),
		Notes:            Last7Days(models.Timestamps(r.SpiritualNotes), now, loc),
		Charity:          Last7Days(models.Timestamps(r.CharityDonations), now, loc),
	}
}

func percent(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
