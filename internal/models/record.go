package models

import "github.com/julianstephens/imaan/internal/constants"

// Prayer is one of the five fixed daily prayers
type Prayer struct {
	Name      string `json:"name" yaml:"name"`
	Time      string `json:"time" yaml:"time"` // HH:MM format
	Completed bool   `json:"completed" yaml:"completed"`
}

// DailyRecord is the single persisted aggregate holding every tracked metric.
//
// A DailyRecord value is treated as immutable once published: the With* builders
// never modify the receiver's slices, they return a record with fresh ones.
type DailyRecord struct {
	Date             string            `json:"date" yaml:"date"` // YYYY-MM-DD format
	ImaanLevel       int               `json:"imaanLevel" yaml:"imaanLevel"`
	Note             string            `json:"note" yaml:"note"`
	Prayers          []Prayer          `json:"prayers" yaml:"prayers"`
	DhikrCount       int               `json:"dhikrCount" yaml:"dhikrCount"`
	QuranPages       int               `json:"quranPages" yaml:"quranPages"`
	QuranMinutes     int               `json:"quranMinutes" yaml:"quranMinutes"`
	GoodDeeds        []GoodDeed        `json:"goodDeeds" yaml:"goodDeeds"`
	CharityDonations []CharityDonation `json:"charityDonations" yaml:"charityDonations"`
	SpiritualNotes   []SpiritualNote   `json:"spiritualNotes" yaml:"spiritualNotes"`
	Goals            []Goal            `json:"goals" yaml:"goals"`
}

// NewDailyRecord returns the default record for the given date.
// prayerTimes overrides the default time of any prayer it names; nil uses the defaults.
func NewDailyRecord(date string, prayerTimes map[string]string) DailyRecord {
	times := constants.DefaultPrayerTimes()
	for name, t := range prayerTimes {
		if _, ok := times[name]; ok && t != "" {
			times[name] = t
		}
	}

	prayers := make([]Prayer, len(constants.PrayerNames))
	for i, name := range constants.PrayerNames {
		prayers[i] = Prayer{Name: name, Time: times[name]}
	}

	return DailyRecord{
		Date:             date,
		ImaanLevel:       constants.DefaultImaanLevel,
		Prayers:          prayers,
		GoodDeeds:        []GoodDeed{},
		CharityDonations: []CharityDonation{},
		SpiritualNotes:   []SpiritualNote{},
		Goals:            []Goal{},
	}
}

// Normalize fills collections a decoded record left nil so that the record
// always serializes with empty lists rather than null. The prayers are
// rebuilt as the five daily prayers in order: stored entries keep their time
// and completed flag, missing ones get the defaults and unknown names are
// dropped.
func (r DailyRecord) Normalize() DailyRecord {
	r.Prayers = canonicalPrayers(r.Prayers)
	if r.GoodDeeds == nil {
		r.GoodDeeds = []GoodDeed{}
	}
	if r.CharityDonations == nil {
		r.CharityDonations = []CharityDonation{}
	}
	if r.SpiritualNotes == nil {
		r.SpiritualNotes = []SpiritualNote{}
	}
	if r.Goals == nil {
		r.Goals = []Goal{}
	}
	for i := range r.SpiritualNotes {
		if r.SpiritualNotes[i].Tags == nil {
			notes := make([]SpiritualNote, len(r.SpiritualNotes))
			copy(notes, r.SpiritualNotes)
			for j := range notes {
				if notes[j].Tags == nil {
					notes[j].Tags = []string{}
				}
			}
			r.SpiritualNotes = notes
			break
		}
	}
	return r
}

func canonicalPrayers(stored []Prayer) []Prayer {
	if len(stored) == len(constants.PrayerNames) {
		ok := true
		for i, p := range stored {
			if p.Name != constants.PrayerNames[i] || p.Time == "" {
				ok = false
				break
			}
		}
		if ok {
			return stored
		}
	}

	byName := make(map[string]Prayer, len(stored))
	for _, p := range stored {
		if _, seen := byName[p.Name]; !seen {
			byName[p.Name] = p
		}
	}
	times := constants.DefaultPrayerTimes()
	out := make([]Prayer, len(constants.PrayerNames))
	for i, name := range constants.PrayerNames {
		p, ok := byName[name]
		if !ok {
			p = Prayer{Name: name}
		}
		if p.Time == "" {
			p.Time = times[name]
		}
		out[i] = p
	}
	return out
}

// CompletedPrayers returns the number of prayers marked completed
func (r DailyRecord) CompletedPrayers() int {
	n := 0
	for _, p := range r.Prayers {
		if p.Completed {
			n++
		}
	}
	return n
}

// CompletedGoals returns the number of goals marked completed
func (r DailyRecord) CompletedGoals() int {
	n := 0
	for _, g := range r.Goals {
		if g.Completed {
			n++
		}
	}
	return n
}
