package analytics

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/julianstephens/imaan/internal/constants"
	"github.com/julianstephens/imaan/internal/models"
)

var now = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

func ts(t time.Time) string {
	return t.UTC().Format(constants.TimestampFormat)
}

func TestPrayerCompletionRate(t *testing.T) {
	r := models.NewDailyRecord("2026-03-10", nil).
		WithPrayerToggled("Fajr").
		WithPrayerToggled("Asr")

	if got := PrayerCompletionRate(r); got != 40 {
		t.Errorf("PrayerCompletionRate() = %v, want 40", got)
	}
	if got := PrayerCompletionRate(models.DailyRecord{}); got != 0 {
		t.Errorf("PrayerCompletionRate(empty) = %v, want 0", got)
	}
}

func TestGoalsProgress(t *testing.T) {
	r := models.NewDailyRecord("2026-03-10", nil)
	if got := GoalsProgress(r); got != 0 {
		t.Errorf("GoalsProgress(no goals) = %v, want 0", got)
	}

	r = r.WithGoal("a", "one", constants.GoalCategoryOther, 1, "2026-03-11").
		WithGoal("b", "two", constants.GoalCategoryOther, 1, "2026-03-11").
		WithGoalCompletionToggled("a")
	if got := GoalsProgress(r); got != 50 {
		t.Errorf("GoalsProgress() = %v, want 50", got)
	}
}

func TestLast7Days(t *testing.T) {
	timestamps := []string{
		ts(now),                             // today
		ts(now.Add(-2 * time.Hour)),         // today
		ts(now.AddDate(0, 0, -1)),           // yesterday
		ts(now.AddDate(0, 0, -6)),           // oldest bucket
		ts(now.AddDate(0, 0, -8)),           // outside the window
		ts(now.AddDate(0, 0, 1)),            // future
		"not a timestamp",
	}

	buckets := Last7Days(timestamps, now, time.UTC)
	if len(buckets) != 7 {
		t.Fatalf("len(buckets) = %d, want 7", len(buckets))
	}

	var counts []int
	for _, b := range buckets {
		counts = append(counts, b.Count)
	}
	if diff := cmp.Diff([]int{1, 0, 0, 0, 0, 1, 2}, counts); diff != "" {
		t.Errorf("counts mismatch (-want +got):\n%s", diff)
	}

	if got := buckets[0].Date.Format(constants.DateFormat); got != "2026-03-04" {
		t.Errorf("oldest bucket = %s, want 2026-03-04", got)
	}
	if got := buckets[6].Date.Format(constants.DateFormat); got != "2026-03-10" {
		t.Errorf("newest bucket = %s, want 2026-03-10", got)
	}
	if got := buckets[6].Label(); got != "Tue" {
		t.Errorf("Label() = %s, want Tue", got)
	}
}

func TestLast7Days_TodayOnly(t *testing.T) {
	r := models.NewDailyRecord("2026-03-10", nil).
		WithGoodDeed(models.GoodDeed{ID: "new", Timestamp: ts(now)}).
		WithGoodDeed(models.GoodDeed{ID: "old", Timestamp: ts(now.AddDate(0, 0, -8))})

	buckets := Last7Days(models.Timestamps(r.GoodDeeds), now, time.UTC)
	total := 0
	for i, b := range buckets {
		total += b.Count
		if i < 6 && b.Count != 0 {
			t.Errorf("bucket %d count = %d, want 0", i, b.Count)
		}
	}
	if buckets[6].Count != 1 || total != 1 {
		t.Errorf("today = %d, total = %d, want 1 and 1", buckets[6].Count, total)
	}
}

func TestLast7Days_Location(t *testing.T) {
	// 23:30 UTC on the 9th is already the 10th in UTC+2
	loc := time.FixedZone("UTC+2", 2*3600)
	late := time.Date(2026, 3, 9, 23, 30, 0, 0, time.UTC)

	buckets := Last7Days([]string{ts(late)}, now, loc)
	if buckets[6].Count != 1 {
		t.Errorf("expected entry in today's bucket for UTC+2, got %+v", buckets)
	}

	buckets = Last7Days([]string{ts(late)}, now, time.UTC)
	if buckets[5].Count != 1 {
		t.Errorf("expected entry in yesterday's bucket for UTC, got %+v", buckets)
	}
}

func TestCharityTotal(t *testing.T) {
	donations := []models.CharityDonation{
		{ID: "a", Amount: 0.1},
		{ID: "b", Amount: 0.2},
		{ID: "c", Amount: 10},
	}
	if got := CharityTotal(donations); !got.Equal(decimal.RequireFromString("10.3")) {
		t.Errorf("CharityTotal() = %s, want 10.3", got)
	}
	if got := CharityTotal(nil); !got.IsZero() {
		t.Errorf("CharityTotal(nil) = %s, want 0", got)
	}
}

func TestCharityTotal_UnknownRemoval(t *testing.T) {
	r := models.NewDailyRecord("2026-03-10", nil).
		WithCharityDonation(models.CharityDonation{ID: "a", Amount: 5}).
		WithCharityDonation(models.CharityDonation{ID: "b", Amount: 7.5})
	before := CharityTotal(r.CharityDonations)

	after := CharityTotal(r.WithoutCharityDonation("zzz").CharityDonations)
	if !before.Equal(after) {
		t.Errorf("total changed from %s to %s", before, after)
	}
}

func TestGoalPercent(t *testing.T) {
	tests := []struct {
		name string
		goal models.Goal
		want float64
	}{
		{"half", models.Goal{Current: 5, Target: 10}, 50},
		{"over target", models.Goal{Current: 15, Target: 10}, 150},
		{"zero target", models.Goal{Current: 3, Target: 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GoalPercent(tt.goal); got != tt.want {
				t.Errorf("GoalPercent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGoalOverdue(t *testing.T) {
	tests := []struct {
		name string
		goal models.Goal
		want bool
	}{
		{"deadline passed", models.Goal{Deadline: "2026-03-09"}, true},
		{"deadline today", models.Goal{Deadline: "2026-03-10"}, false},
		{"deadline ahead", models.Goal{Deadline: "2026-04-01"}, false},
		{"completed", models.Goal{Deadline: "2026-03-01", Completed: true}, false},
		{"bad deadline", models.Goal{Deadline: "soon"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GoalOverdue(tt.goal, now, time.UTC); got != tt.want {
				t.Errorf("GoalOverdue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	r := models.NewDailyRecord("2026-03-10", nil).
		WithImaanLevel(7).
		WithPrayerToggled("Fajr").
		WithDhikrIncremented().
		WithQuranPages(2).
		WithQuranMinutes(10).
		WithGoodDeed(models.GoodDeed{ID: "d", Timestamp: ts(now)}).
		WithSpiritualNote(models.SpiritualNote{ID: "n", Timestamp: ts(now.AddDate(0, 0, -3))}).
		WithCharityDonation(models.CharityDonation{ID: "c", Amount: 25, Timestamp: ts(now)}).
		WithGoal("g", "Read", constants.GoalCategoryQuran, 4, "2026-03-01").
		WithGoalProgress("g", 1)

	s := Summarize(r, now, time.UTC)

	if s.PrayerRate != 20 || s.PrayersCompleted != 1 || s.PrayersTotal != 5 {
		t.Errorf("prayer stats = %v %d/%d", s.PrayerRate, s.PrayersCompleted, s.PrayersTotal)
	}
	if s.GoalsTotal != 1 || s.GoalsProgress != 0 {
		t.Errorf("goal stats = %d %v", s.GoalsTotal, s.GoalsProgress)
	}
	if len(s.Goals) != 1 || s.Goals[0].Percent != 25 || !s.Goals[0].Overdue {
		t.Errorf("goal status = %+v", s.Goals)
	}
	if !s.CharityTotal.Equal(decimal.NewFromInt(25)) || s.CharityCount != 1 {
		t.Errorf("charity = %s (%d)", s.CharityTotal, s.CharityCount)
	}
	if s.Deeds[6].Count != 1 || s.Notes[3].Count != 1 || s.Charity[6].Count != 1 {
		t.Errorf("unexpected buckets: deeds=%v notes=%v charity=%v", s.Deeds, s.Notes, s.Charity)
	}
	if s.ImaanLevel != 7 || s.DhikrCount != 1 || s.QuranPages != 2 || s.QuranMinutes != 10 {
		t.Errorf("scalar fields = %+v", s)
	}
}
