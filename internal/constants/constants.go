package constants

import "time"

// SessionState represents the current state of the TUI application
type SessionState int

// GoalCategory represents the area of practice a goal belongs to
type GoalCategory string

const (
	AppName           = "imaan"
	Version           = "v0.1.0"
	DefaultDataFile   = "imaan.json"
	DefaultConfigFile = "config.toml"

	// StorageNamespace is the fixed key the DailyRecord is persisted under
	StorageNamespace = "divine-dashboard"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// TimestampFormat is the sortable UTC instant format used for entry timestamps
	TimestampFormat = "2006-01-02T15:04:05.000Z07:00"

	// Record defaults
	DefaultImaanLevel = 5
	MinImaanLevel     = 0
	MaxImaanLevel     = 10

	// Analytics
	ActivityWindowDays = 7

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "imaan-"

	// Watcher
	WatchDebounce = 150 * time.Millisecond

	// Prayer names
	PrayerFajr    = "Fajr"
	PrayerDhuhr   = "Dhuhr"
	PrayerAsr     = "Asr"
	PrayerMaghrib = "Maghrib"
	PrayerIsha    = "Isha"

	// Default prayer times
	DefaultFajrTime    = "05:30"
	DefaultDhuhrTime   = "13:00"
	DefaultAsrTime     = "16:30"
	DefaultMaghribTime = "19:30"
	DefaultIshaTime    = "21:00"

	// Goal categories
	GoalCategoryPrayer  GoalCategory = "prayer"
	GoalCategoryQuran   GoalCategory = "quran"
	GoalCategoryDhikr   GoalCategory = "dhikr"
	GoalCategoryCharity GoalCategory = "charity"
	GoalCategoryOther   GoalCategory = "other"
)

// Session States. The first six are the top-level tabs, in display order.
const (
	StateOverview SessionState = iota
	StateToday
	StateDeeds
	StateCharity
	StateNotes
	StateGoals
	StateForm
	StateConfirmDelete
)

// TabCount is the number of top-level tabs
const TabCount = int(StateGoals) + 1

// PrayerNames lists the five daily prayers in order
var PrayerNames = []string{PrayerFajr, PrayerDhuhr, PrayerAsr, PrayerMaghrib, PrayerIsha}

// GoalCategories lists the valid goal categories in display order
var GoalCategories = []GoalCategory{
	GoalCategoryPrayer,
	GoalCategoryQuran,
	GoalCategoryDhikr,
	GoalCategoryCharity,
	GoalCategoryOther,
}

// DefaultPrayerTimes maps each prayer to its default time of day
func DefaultPrayerTimes() map[string]string {
	return map[string]string{
		PrayerFajr:    DefaultFajrTime,
		PrayerDhuhr:   DefaultDhuhrTime,
		PrayerAsr:     DefaultAsrTime,
		PrayerMaghrib: DefaultMaghribTime,
		PrayerIsha:    DefaultIshaTime,
	}
}
