// Package tracker holds the single DailyRecord, applies every change to it
// and persists the result.
package tracker

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/julianstephens/imaan/internal/constants"
	"github.com/julianstephens/imaan/internal/logger"
	"github.com/julianstephens/imaan/internal/models"
	"github.com/julianstephens/imaan/internal/storage"
)

// Listener is called with the new record after every change
type Listener func(models.DailyRecord)

// Store owns the current DailyRecord. Changes go through the command
// methods only; each one builds a new record, swaps it in, writes it to the
// provider and notifies listeners.
type Store struct {
	// notifyMu is held from a change until its listeners return, so
	// listeners see records in the order they were installed. It is taken
	// before mu.
	notifyMu sync.Mutex
	mu       sync.Mutex
	provider storage.Provider
	record   models.DailyRecord
	lastErr  error

	now         func() time.Time
	newID       func() string
	loc         *time.Location
	prayerTimes map[string]string

	listeners map[int]Listener
	nextID    int
}

// Open reads the persisted record from provider, falling back to a default
// record when nothing usable is stored.
func Open(provider storage.Provider, opts ...Option) *Store {
	s := &Store{
		provider:  provider,
		now:       defaultClock,
		newID:     defaultID,
		loc:       time.Local,
		listeners: make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(s)
	}

	record, err := s.read()
	if err != nil {
		logger.Debug("using default record", "reason", err)
		record = s.defaultRecord()
	}
	s.record = record
	return s
}

// Record returns the current record. The returned value must be treated as read-only.
func (s *Store) Record() models.DailyRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record
}

// Err returns the error from the most recent write, nil if it succeeded
func (s *Store) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Subscribe registers fn to be called after every change, in the order the
// changes were made. fn may read the store but must not run commands. The
// returned function removes the registration.
func (s *Store) Subscribe(fn Listener) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

func (s *Store) SetImaanLevel(level int) {
	s.apply(func(r models.DailyRecord) models.DailyRecord { return r.WithImaanLevel(level) })
}

func (s *Store) SetNote(text string) {
	s.apply(func(r models.DailyRecord) models.DailyRecord { return r.WithNote(text) })
}

// TogglePrayer flips the named prayer; unknown names change nothing
func (s *Store) TogglePrayer(name string) {
	s.apply(func(r models.DailyRecord) models.DailyRecord { return r.WithPrayerToggled(name) })
}

func (s *Store) IncrementDhikr() {
	s.apply(models.DailyRecord.WithDhikrIncremented)
}

func (s *Store) ResetDhikr() {
	s.apply(models.DailyRecord.WithDhikrReset)
}

func (s *Store) SetQuranPages(n int) {
	s.apply(func(r models.DailyRecord) models.DailyRecord { return r.WithQuranPages(n) })
}

func (s *Store) SetQuranMinutes(n int) {
	s.apply(func(r models.DailyRecord) models.DailyRecord { return r.WithQuranMinutes(n) })
}

func (s *Store) AddGoodDeed(description string) {
	s.apply(func(r models.DailyRecord) models.DailyRecord {
		return r.WithGoodDeed(models.GoodDeed{
			ID:          s.newID(),
			Description: description,
			Timestamp:   s.timestamp(),
		})
	})
}

func (s *Store) RemoveGoodDeed(id string) {
	s.apply(func(r models.DailyRecord) models.DailyRecord { return r.WithoutGoodDeed(id) })
}

// AddCharityDonation records a donation. The amount is not checked here.
func (s *Store) AddCharityDonation(amount float64, description string) {
	s.apply(func(r models.DailyRecord) models.DailyRecord {
		return r.WithCharityDonation(models.CharityDonation{
			ID:          s.newID(),
			Amount:      amount,
			Description: description,
			Timestamp:   s.timestamp(),
		})
	})
}

func (s *Store) RemoveCharityDonation(id string) {
	s.apply(func(r models.DailyRecord) models.DailyRecord { return r.WithoutCharityDonation(id) })
}

func (s *Store) AddSpiritualNote(title, content string, tags []string) {
	s.apply(func(r models.DailyRecord) models.DailyRecord {
		return r.WithSpiritualNote(models.SpiritualNote{
			ID:        s.newID(),
			Title:     title,
			Content:   content,
			Tags:      tags,
			Timestamp: s.timestamp(),
		})
	})
}

func (s *Store) RemoveSpiritualNote(id string) {
	s.apply(func(r models.DailyRecord) models.DailyRecord { return r.WithoutSpiritualNote(id) })
}

func (s *Store) AddGoal(title string, category constants.GoalCategory, target int, deadline string) {
	s.apply(func(r models.DailyRecord) models.DailyRecord {
		return r.WithGoal(s.newID(), title, category, target, deadline)
	})
}

// UpdateGoalProgress sets a goal's current value without touching its completion flag
func (s *Store) UpdateGoalProgress(id string, current int) {
	s.apply(func(r models.DailyRecord) models.DailyRecord { return r.WithGoalProgress(id, current) })
}

func (s *Store) RemoveGoal(id string) {
	s.apply(func(r models.DailyRecord) models.DailyRecord { return r.WithoutGoal(id) })
}

func (s *Store) ToggleGoalCompletion(id string) {
	s.apply(func(r models.DailyRecord) models.DailyRecord { return r.WithGoalCompletionToggled(id) })
}

// Replace installs a whole record, e.g. one read from an export file
func (s *Store) Replace(record models.DailyRecord) {
	record = record.Normalize()
	s.apply(func(models.DailyRecord) models.DailyRecord { return record })
}

// Reset replaces the current record with a fresh default one dated today
func (s *Store) Reset() {
	s.apply(func(models.DailyRecord) models.DailyRecord { return s.defaultRecord() })
}

// Reload re-reads the persisted record and reports whether it differed from
// the one in memory. Listeners are only notified when it did. A missing or
// unreadable record leaves the current one in place.
func (s *Store) Reload() bool {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	record, err := s.read()
	if err != nil {
		s.mu.Unlock()
		logger.Debug("reload skipped", "reason", err)
		return false
	}
	if reflect.DeepEqual(record, s.record) {
		s.mu.Unlock()
		return false
	}
	s.record = record
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	logger.Debug("record reloaded from storage")
	notify(listeners, record)
	return true
}

func (s *Store) apply(fn func(models.DailyRecord) models.DailyRecord) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	record := fn(s.record)
	s.record = record
	s.lastErr = s.persist(record)
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	notify(listeners, record)
}

// persist writes the record; failures are logged and otherwise ignored
func (s *Store) persist(record models.DailyRecord) error {
	data, err := json.Marshal(record)
	if err == nil {
		err = s.provider.Put(constants.StorageNamespace, data)
	}
	if err != nil {
		logger.Warn("failed to persist record", "error", err)
	}
	return err
}

func (s *Store) read() (models.DailyRecord, error) {
	data, err := s.provider.Get(constants.StorageNamespace)
	if err != nil {
		return models.DailyRecord{}, err
	}
	return Decode(data)
}

func (s *Store) defaultRecord() models.DailyRecord {
	return models.NewDailyRecord(s.now().In(s.loc).Format(constants.DateFormat), s.prayerTimes)
}

func (s *Store) timestamp() string {
	return s.now().UTC().Format(constants.TimestampFormat)
}

// snapshotListeners must be called with mu held
func (s *Store) snapshotListeners() []Listener {
	out := make([]Listener, 0, len(s.listeners))
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.listeners[id]; ok {
			out = append(out, fn)
		}
	}
	return out
}

func notify(listeners []Listener, record models.DailyRecord) {
	for _, fn := range listeners {
		fn(record)
	}
}

// Decode parses a serialized DailyRecord. Documents that are not a JSON
// object or lack a date are rejected.
func Decode(data []byte) (models.DailyRecord, error) {
	var record models.DailyRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return models.DailyRecord{}, fmt.Errorf("failed to parse record: %w", err)
	}
	if record.Date == "" {
		return models.DailyRecord{}, fmt.Errorf("failed to parse record: missing date")
	}
	return record.Normalize(), nil
}
