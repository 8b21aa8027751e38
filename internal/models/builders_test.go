package models

import (
	"fmt"
	"testing"

	"github.com/julianstephens/imaan/internal/constants"
)

func TestWithPrayerToggled(t *testing.T) {
	base := NewDailyRecord("2026-03-01", nil)

	t.Run("toggle twice restores flag", func(t *testing.T) {
		once := base.WithPrayerToggled("Maghrib")
		if !once.Prayers[3].Completed {
			t.Fatal("expected Maghrib to be completed after one toggle")
		}
		twice := once.WithPrayerToggled("Maghrib")
		if twice.Prayers[3].Completed {
			t.Error("expected Maghrib to be incomplete after two toggles")
		}
	})

	t.Run("unknown name is a no-op", func(t *testing.T) {
		got := base.WithPrayerToggled("Tahajjud")
		for i, p := range got.Prayers {
			if p != base.Prayers[i] {
				t.Errorf("prayer %d changed: %+v", i, p)
			}
		}
	})

	t.Run("receiver is not modified", func(t *testing.T) {
		_ = base.WithPrayerToggled("Fajr")
		if base.Prayers[0].Completed {
			t.Error("WithPrayerToggled mutated the receiver")
		}
	})
}

func TestDhikrBuilders(t *testing.T) {
	r := NewDailyRecord("2026-03-01", nil)
	for i := 0; i < 33; i++ {
		r = r.WithDhikrIncremented()
	}
	if r.DhikrCount != 33 {
		t.Errorf("DhikrCount = %d, want 33", r.DhikrCount)
	}
	if got := r.WithDhikrReset().DhikrCount; got != 0 {
		t.Errorf("DhikrCount after reset = %d, want 0", got)
	}
	if got := NewDailyRecord("2026-03-01", nil).WithDhikrReset().DhikrCount; got != 0 {
		t.Errorf("DhikrCount after reset from zero = %d, want 0", got)
	}
}

func TestGoodDeedAddRemove(t *testing.T) {
	ops := []struct {
		add    bool
		id     string
		remove string
	}{
		{add: true, id: "a"},
		{add: true, id: "b"},
		{add: true, id: "c"},
		{remove: "b"},
		{add: true, id: "d"},
		{remove: "zzz"},
		{remove: "a"},
		{add: true, id: "e"},
	}

	r := NewDailyRecord("2026-03-01", nil)
	for i, op := range ops {
		if op.add {
			r = r.WithGoodDeed(GoodDeed{ID: op.id, Description: op.id, Timestamp: fmt.Sprintf("t%d", i)})
		} else {
			r = r.WithoutGoodDeed(op.remove)
		}
	}

	want := []string{"e", "d", "c"}
	if len(r.GoodDeeds) != len(want) {
		t.Fatalf("len(GoodDeeds) = %d, want %d", len(r.GoodDeeds), len(want))
	}
	for i, id := range want {
		if r.GoodDeeds[i].ID != id {
			t.Errorf("GoodDeeds[%d].ID = %q, want %q", i, r.GoodDeeds[i].ID, id)
		}
	}
}

func TestWithoutCharityDonation_UnknownID(t *testing.T) {
	r := NewDailyRecord("2026-03-01", nil).
		WithCharityDonation(CharityDonation{ID: "c1", Amount: 10}).
		WithCharityDonation(CharityDonation{ID: "c2", Amount: 5})

	got := r.WithoutCharityDonation("missing")
	if len(got.CharityDonations) != 2 {
		t.Fatalf("len(CharityDonations) = %d, want 2", len(got.CharityDonations))
	}
	if got.CharityDonations[0].ID != "c2" || got.CharityDonations[1].ID != "c1" {
		t.Errorf("unexpected order: %+v", got.CharityDonations)
	}
}

func TestWithSpiritualNote(t *testing.T) {
	tags := []string{"tafsir"}
	r := NewDailyRecord("2026-03-01", nil).
		WithSpiritualNote(SpiritualNote{ID: "n1", Title: "a", Content: "b"}).
		WithSpiritualNote(SpiritualNote{ID: "n2", Title: "c", Content: "d", Tags: tags})

	if r.SpiritualNotes[1].Tags == nil || len(r.SpiritualNotes[1].Tags) != 0 {
		t.Errorf("nil tags should become empty list, got %v", r.SpiritualNotes[1].Tags)
	}

	tags[0] = "changed"
	if r.SpiritualNotes[0].Tags[0] != "tafsir" {
		t.Error("note tags share storage with the caller's slice")
	}

	r = r.WithoutSpiritualNote("n1")
	if len(r.SpiritualNotes) != 1 || r.SpiritualNotes[0].ID != "n2" {
		t.Errorf("unexpected notes after removal: %+v", r.SpiritualNotes)
	}
}

func TestGoalBuilders(t *testing.T) {
	r := NewDailyRecord("2026-03-01", nil).
		WithGoal("g1", "Pray on time", constants.GoalCategoryPrayer, 5, "2026-03-07")

	g := r.Goals[0]
	if g.Current != 0 || g.Completed {
		t.Fatalf("new goal = %+v, want current 0 and not completed", g)
	}

	t.Run("progress does not complete", func(t *testing.T) {
		got := r.WithGoalProgress("g1", 9)
		if got.Goals[0].Current != 9 {
			t.Errorf("Current = %d, want 9", got.Goals[0].Current)
		}
		if got.Goals[0].Completed {
			t.Error("progress past target must not complete the goal")
		}
		if r.Goals[0].Current != 0 {
			t.Error("WithGoalProgress mutated the receiver")
		}
	})

	t.Run("toggle completion", func(t *testing.T) {
		got := r.WithGoalCompletionToggled("g1")
		if !got.Goals[0].Completed {
			t.Error("expected goal to be completed")
		}
		if got.WithGoalCompletionToggled("g1").Goals[0].Completed {
			t.Error("expected second toggle to clear completion")
		}
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		got := r.WithGoalProgress("nope", 3).WithGoalCompletionToggled("nope").WithoutGoal("nope")
		if len(got.Goals) != 1 || got.Goals[0] != g {
			t.Errorf("goals changed: %+v", got.Goals)
		}
	})

	t.Run("remove", func(t *testing.T) {
		if got := r.WithoutGoal("g1"); len(got.Goals) != 0 {
			t.Errorf("len(Goals) = %d, want 0", len(got.Goals))
		}
	})
}

func TestBuilders_ScalarFields(t *testing.T) {
	base := NewDailyRecord("2026-03-01", nil)
	r := base.WithImaanLevel(9).WithNote("shukr").WithQuranPages(12).WithQuranMinutes(45)

	if r.ImaanLevel != 9 || r.Note != "shukr" || r.QuranPages != 12 || r.QuranMinutes != 45 {
		t.Errorf("unexpected record: %+v", r)
	}
	if r.Date != base.Date {
		t.Errorf("Date changed to %q", r.Date)
	}
	if base.ImaanLevel != constants.DefaultImaanLevel || base.Note != "" {
		t.Error("scalar builders mutated the receiver")
	}
}
