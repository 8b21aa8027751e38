package tracker

import (
	"time"

	"github.com/google/uuid"
)

// Option configures a Store
type Option func(*Store)

// WithClock sets the source of the current time
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator sets the generator for new entry ids
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// WithLocation sets the timezone used to derive the record's date
func WithLocation(loc *time.Location) Option {
	return func(s *Store) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithPrayerTimes overrides the default prayer times of a freshly created record
func WithPrayerTimes(times map[string]string) Option {
	return func(s *Store) {
		s.prayerTimes = times
	}
}

func defaultID() string {
	return uuid.New().String()
}

func defaultClock() time.Time {
	return time.Now()
}
