package tui

import (
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/imaan/internal/constants"
	"github.com/julianstephens/imaan/internal/models"
	"github.com/julianstephens/imaan/internal/tracker"
	"github.com/julianstephens/imaan/internal/tui/components/entrylist"
	"github.com/julianstephens/imaan/internal/tui/components/today"
	"github.com/julianstephens/imaan/internal/validation"
)

var tabTitles = []string{"Overview", "Today", "Deeds", "Charity", "Notes", "Goals"}

// recordMsg carries a record published by the tracker, e.g. after the data
// file was reloaded by the watcher
type recordMsg struct {
	record models.DailyRecord
}

// subscription forwards tracker changes into the program. Listeners run on
// whichever goroutine made the change, so they must never block: the
// channel holds only the newest record.
type subscription struct {
	updates chan models.DailyRecord
	done    chan struct{}
	cancel  func()
	once    sync.Once
}

func subscribe(t *tracker.Store) *subscription {
	sub := &subscription{
		updates: make(chan models.DailyRecord, 1),
		done:    make(chan struct{}),
	}
	sub.cancel = t.Subscribe(func(r models.DailyRecord) {
		for {
			select {
			case sub.updates <- r:
				return
			default:
			}
			select {
			case <-sub.updates:
			default:
			}
		}
	})
	return sub
}

func (s *subscription) close() {
	s.once.Do(func() {
		s.cancel()
		close(s.done)
	})
}

func waitForRecord(sub *subscription) tea.Cmd {
	return func() tea.Msg {
		select {
		case r := <-sub.updates:
			return recordMsg{record: r}
		case <-sub.done:
			return nil
		}
	}
}

type formKind int

const (
	formDeed formKind = iota
	formCharity
	formNote
	formGoal
	formProgress
	formQuran
	formDailyNote
)

type Model struct {
	tracker   *tracker.Store
	validator *validation.Validator
	sub       *subscription
	record    models.DailyRecord

	state         constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model

	today   today.Model
	deeds   entrylist.Model
	charity entrylist.Model
	notes   entrylist.Model
	goals   entrylist.Model

	form       *huh.Form
	formKind   formKind
	formTarget string // goal being updated by the progress form
	forms      formModels
	formError  string

	pendingDelete entrylist.DeleteMsg
	status        string
	statusIsError bool

	now      func() time.Time
	loc      *time.Location
	quitting bool
	width    int
	height   int
}

// Option configures a Model
type Option func(*Model)

// WithLocation sets the timezone used for dates and the 7-day charts
func WithLocation(loc *time.Location) Option {
	return func(m *Model) {
		if loc != nil {
			m.loc = loc
		}
	}
}

// WithClock overrides the wall clock
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

// NewModel builds the dashboard over t and subscribes to its changes.
// Call Close when the program exits.
func NewModel(t *tracker.Store, opts ...Option) Model {
	m := Model{
		tracker:   t,
		validator: validation.New(),
		state:     constants.StateOverview,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		deeds:     entrylist.New(entrylist.Deeds, "No good deeds yet.", 0, 0),
		charity:   entrylist.New(entrylist.Charity, "No donations yet.", 0, 0),
		notes:     entrylist.New(entrylist.Notes, "No notes yet.", 0, 0),
		goals:     entrylist.New(entrylist.Goals, "No goals yet.", 0, 0),
		now:       time.Now,
		loc:       time.Local,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.today = today.New(t.Record())
	m.setRecord(t.Record())
	m.sub = subscribe(t)
	return m
}

// Close stops listening to the tracker
func (m Model) Close() {
	if m.sub != nil {
		m.sub.close()
	}
}

// State returns the active tab or dialog
func (m Model) State() constants.SessionState {
	return m.state
}

func (m Model) Init() tea.Cmd {
	return waitForRecord(m.sub)
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case constants.StateToday:
		keys = append(keys, m.keys.Enter, m.keys.Inc, m.keys.Dec, m.keys.Reset)
	case constants.StateDeeds, constants.StateCharity, constants.StateNotes:
		keys = append(keys, m.keys.Add, m.keys.Delete)
	case constants.StateGoals:
		keys = append(keys, m.keys.Add, m.keys.Delete, m.keys.Toggle, m.keys.Progress)
	case constants.StateConfirmDelete:
		return []key.Binding{m.keys.Confirm, m.keys.Cancel}
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Left, m.keys.Right, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}

	var actions []key.Binding
	switch m.state {
	case constants.StateToday:
		actions = []key.Binding{m.keys.Inc, m.keys.Dec, m.keys.Reset}
	case constants.StateDeeds, constants.StateCharity, constants.StateNotes:
		actions = []key.Binding{m.keys.Add, m.keys.Delete}
	case constants.StateGoals:
		actions = []key.Binding{m.keys.Add, m.keys.Delete, m.keys.Toggle, m.keys.Progress}
	}

	return [][]key.Binding{global, navigation, actions}
}

// setRecord refreshes every view from r
func (m *Model) setRecord(r models.DailyRecord) {
	m.record = r
	m.today.SetRecord(r)
	m.deeds.SetItems(deedItems(r.GoodDeeds, m.clock(), m.loc))
	m.charity.SetItems(charityItems(r.CharityDonations, m.clock(), m.loc))
	m.notes.SetItems(noteItems(r.SpiritualNotes, m.clock(), m.loc))
	m.goals.SetItems(goalItems(r.Goals, m.clock(), m.loc))
}

func (m Model) clock() time.Time {
	return m.now()
}

// activeList returns the list shown on the current tab, nil for other tabs
func (m *Model) activeList() *entrylist.Model {
	switch m.state {
	case constants.StateDeeds:
		return &m.deeds
	case constants.StateCharity:
		return &m.charity
	case constants.StateNotes:
		return &m.notes
	case constants.StateGoals:
		return &m.goals
	}
	return nil
}
