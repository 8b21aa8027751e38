// Package today renders the daily counters and lets the user adjust them
// in place.
package today

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/imaan/internal/constants"
	"github.com/julianstephens/imaan/internal/models"
)

var (
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(14)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#50FA7B"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

// SetImaanMsg asks the parent to store a new imaan level
type SetImaanMsg struct {
	Level int
}

type TogglePrayerMsg struct {
	Name string
}

type IncrementDhikrMsg struct{}

type ResetDhikrMsg struct{}

type EditQuranMsg struct{}

type EditNoteMsg struct{}

type rowKind int

const (
	rowImaan rowKind = iota
	rowPrayer
	rowDhikr
	rowQuran
	rowNote
)

type row struct {
	kind   rowKind
	prayer string
}

type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Inc    key.Binding
	Dec    key.Binding
	Reset  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " ", "x"),
			key.WithHelp("enter", "toggle/edit"),
		),
		Inc: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "increase"),
		),
		Dec: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "decrease"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset dhikr"),
		),
	}
}

type Model struct {
	record models.DailyRecord
	rows   []row
	cursor int
	keys   KeyMap
}

func New(record models.DailyRecord) Model {
	m := Model{keys: DefaultKeyMap()}
	m.SetRecord(record)
	return m
}

// SetRecord swaps in a new record, keeping the cursor on the same row where possible
func (m *Model) SetRecord(record models.DailyRecord) {
	m.record = record
	rows := []row{{kind: rowImaan}}
	for _, p := range record.Prayers {
		rows = append(rows, row{kind: rowPrayer, prayer: p.Name})
	}
	rows = append(rows, row{kind: rowDhikr}, row{kind: rowQuran}, row{kind: rowNote})
	m.rows = rows
	m.cursor = min(m.cursor, len(rows)-1)
}

func (m Model) Keys() KeyMap { return m.keys }

// Cursor returns the index of the highlighted row
func (m Model) Cursor() int { return m.cursor }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	cur := m.rows[m.cursor]
	switch {
	case key.Matches(kmsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(kmsg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case key.Matches(kmsg, m.keys.Inc):
		switch cur.kind {
		case rowImaan:
			if m.record.ImaanLevel < constants.MaxImaanLevel {
				return m, emit(SetImaanMsg{Level: m.record.ImaanLevel + 1})
			}
		case rowDhikr:
			return m, emit(IncrementDhikrMsg{})
		}
	case key.Matches(kmsg, m.keys.Dec):
		if cur.kind == rowImaan && m.record.ImaanLevel > constants.MinImaanLevel {
			return m, emit(SetImaanMsg{Level: m.record.ImaanLevel - 1})
		}
	case key.Matches(kmsg, m.keys.Reset):
		if cur.kind == rowDhikr {
			return m, emit(ResetDhikrMsg{})
		}
	case key.Matches(kmsg, m.keys.Select):
		switch cur.kind {
		case rowPrayer:
			return m, emit(TogglePrayerMsg{Name: cur.prayer})
		case rowDhikr:
			return m, emit(IncrementDhikrMsg{})
		case rowQuran:
			return m, emit(EditQuranMsg{})
		case rowNote:
			return m, emit(EditNoteMsg{})
		}
	}
	return m, nil
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func (m Model) View() string {
	var b strings.Builder
	for i, r := range m.rows {
		pointer := "  "
		if i == m.cursor {
			pointer = cursorStyle.Render("> ")
		}
		b.WriteString(pointer)
		b.WriteString(m.renderRow(r))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(hintStyle.Render(m.hint()))
	return b.String()
}

func (m Model) renderRow(r row) string {
	switch r.kind {
	case rowImaan:
		bar := strings.Repeat("●", m.record.ImaanLevel) + strings.Repeat("○", constants.MaxImaanLevel-m.record.ImaanLevel)
		return labelStyle.Render("Imaan") + valueStyle.Render(fmt.Sprintf("%s %d/%d", bar, m.record.ImaanLevel, constants.MaxImaanLevel))
	case rowPrayer:
		for _, p := range m.record.Prayers {
			if p.Name != r.prayer {
				continue
			}
			mark := "[ ]"
			if p.Completed {
				mark = doneStyle.Render("[x]")
			}
			return labelStyle.Render(p.Name) + mark + " " + hintStyle.Render(p.Time)
		}
	case rowDhikr:
		return labelStyle.Render("Dhikr") + valueStyle.Render(fmt.Sprintf("%d", m.record.DhikrCount))
	case rowQuran:
		return labelStyle.Render("Quran") + valueStyle.Render(fmt.Sprintf("%d pages, %d min", m.record.QuranPages, m.record.QuranMinutes))
	case rowNote:
		note := m.record.Note
		if note == "" {
			return labelStyle.Render("Note") + hintStyle.Render("(empty)")
		}
		return labelStyle.Render("Note") + valueStyle.Render(strings.ReplaceAll(note, "\n", " "))
	}
	return ""
}

func (m Model) hint() string {
	switch m.rows[m.cursor].kind {
	case rowImaan:
		return "+/- to adjust"
	case rowPrayer:
		return "enter to mark as prayed"
	case rowDhikr:
		return "+ to count, r to reset"
	case rowQuran, rowNote:
		return "enter to edit"
	}
	return ""
}
