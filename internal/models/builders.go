package models

import "github.com/julianstephens/imaan/internal/constants"

// The With*/Without* builders are value-receiver methods: each returns a new
// DailyRecord and copies any collection it changes. Unchanged collections are
// shared with the receiver, which is safe because nothing writes through them.

func (r DailyRecord) WithImaanLevel(level int) DailyRecord {
	r.ImaanLevel = level
	return r
}

func (r DailyRecord) WithNote(note string) DailyRecord {
	r.Note = note
	return r
}

// WithPrayerToggled flips the completed flag of the named prayer.
// An unknown name returns the record unchanged.
func (r DailyRecord) WithPrayerToggled(name string) DailyRecord {
	idx := -1
	for i, p := range r.Prayers {
		if p.Name == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return r
	}

	prayers := make([]Prayer, len(r.Prayers))
	copy(prayers, r.Prayers)
	prayers[idx].Completed = !prayers[idx].Completed
	r.Prayers = prayers
	return r
}

func (r DailyRecord) WithDhikrIncremented() DailyRecord {
	r.DhikrCount++
	return r
}

func (r DailyRecord) WithDhikrReset() DailyRecord {
	r.DhikrCount = 0
	return r
}

func (r DailyRecord) WithQuranPages(pages int) DailyRecord {
	r.QuranPages = pages
	return r
}

func (r DailyRecord) WithQuranMinutes(minutes int) DailyRecord {
	r.QuranMinutes = minutes
	return r
}

// WithGoodDeed prepends a deed so the collection stays newest-first
func (r DailyRecord) WithGoodDeed(d GoodDeed) DailyRecord {
	r.GoodDeeds = prepend(r.GoodDeeds, d)
	return r
}

func (r DailyRecord) WithoutGoodDeed(id string) DailyRecord {
	r.GoodDeeds = removeByID(r.GoodDeeds, id, func(d GoodDeed) string { return d.ID })
	return r
}

// WithCharityDonation prepends a donation so the collection stays newest-first
func (r DailyRecord) WithCharityDonation(d CharityDonation) DailyRecord {
	r.CharityDonations = prepend(r.CharityDonations, d)
	return r
}

func (r DailyRecord) WithoutCharityDonation(id string) DailyRecord {
	r.CharityDonations = removeByID(r.CharityDonations, id, func(d CharityDonation) string { return d.ID })
	return r
}

// WithSpiritualNote prepends a note. Nil tags are stored as an empty list.
func (r DailyRecord) WithSpiritualNote(n SpiritualNote) DailyRecord {
	if n.Tags == nil {
		n.Tags = []string{}
	} else {
		n.Tags = append([]string(nil), n.Tags...)
	}
	r.SpiritualNotes = prepend(r.SpiritualNotes, n)
	return r
}

func (r DailyRecord) WithoutSpiritualNote(id string) DailyRecord {
	r.SpiritualNotes = removeByID(r.SpiritualNotes, id, func(n SpiritualNote) string { return n.ID })
	return r
}

// WithGoal prepends a goal with no progress and not completed
func (r DailyRecord) WithGoal(id, title string, category constants.GoalCategory, target int, deadline string) DailyRecord {
	r.Goals = prepend(r.Goals, Goal{
		ID:       id,
		Title:    title,
		Category: category,
		Target:   target,
		Deadline: deadline,
	})
	return r
}

func (r DailyRecord) WithoutGoal(id string) DailyRecord {
	r.Goals = removeByID(r.Goals, id, func(g Goal) string { return g.ID })
	return r
}

// WithGoalProgress sets Current on the matching goal. Completed is left alone.
func (r DailyRecord) WithGoalProgress(id string, current int) DailyRecord {
	r.Goals = updateGoal(r.Goals, id, func(g *Goal) { g.Current = current })
	return r
}

func (r DailyRecord) WithGoalCompletionToggled(id string) DailyRecord {
	r.Goals = updateGoal(r.Goals, id, func(g *Goal) { g.Completed = !g.Completed })
	return r
}

func prepend[T any](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, item)
	return append(out, items...)
}

// removeByID returns items unchanged when no entry matches
func removeByID[T any](items []T, id string, idOf func(T) string) []T {
	found := false
	for _, it := range items {
		if idOf(it) == id {
			found = true
			break
		}
	}
	if !found {
		return items
	}

	out := make([]T, 0, len(items)-1)
	for _, it := range items {
		if idOf(it) != id {
			out = append(out, it)
		}
	}
	return out
}

func updateGoal(goals []Goal, id string, fn func(*Goal)) []Goal {
	for i := range goals {
		if goals[i].ID != id {
			continue
		}
		out := make([]Goal, len(goals))
		copy(out, goals)
		fn(&out[i])
		return out
	}
	return goals
}
