// Package entrylist shows one of the record's collections (deeds, donations,
// notes, goals) as a selectable list.
package entrylist

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// Kind names the collection a list shows; it is carried on every message so
// the parent knows which store command to run.
type Kind string

const (
	Deeds   Kind = "deeds"
	Charity Kind = "charity"
	Notes   Kind = "notes"
	Goals   Kind = "goals"
)

type AddMsg struct {
	Kind Kind
}

type DeleteMsg struct {
	Kind Kind
	ID   string
}

type ToggleMsg struct {
	Kind Kind
	ID   string
}

type ProgressMsg struct {
	Kind Kind
	ID   string
}

type Item struct {
	ID     string
	Name   string
	Detail string
}

func (i Item) Title() string       { return i.Name }
func (i Item) Description() string { return i.Detail }
func (i Item) FilterValue() string { return i.Name }

type KeyMap struct {
	Add      key.Binding
	Delete   key.Binding
	Toggle   key.Binding
	Progress key.Binding
}

// DefaultKeyMap returns the bindings for kind. Only goals can be toggled
// or have their progress set.
func DefaultKeyMap(kind Kind) KeyMap {
	keys := KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space/x", "toggle done"),
		),
		Progress: key.NewBinding(
			key.WithKeys("p", "enter"),
			key.WithHelp("p", "set progress"),
		),
	}
	if kind != Goals {
		keys.Toggle.SetEnabled(false)
		keys.Progress.SetEnabled(false)
	}
	return keys
}

type Model struct {
	kind  Kind
	empty string
	list  list.Model
	keys  KeyMap
}

// New creates an empty list; empty is shown when there are no items.
func New(kind Kind, empty string, width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = string(kind)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)

	keys := DefaultKeyMap(kind)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Delete, keys.Toggle, keys.Progress}
	}
	l.AdditionalFullHelpKeys = l.AdditionalShortHelpKeys

	return Model{kind: kind, empty: empty, list: l, keys: keys}
}

func (m *Model) SetItems(items []Item) {
	li := make([]list.Item, len(items))
	for i, it := range items {
		li[i] = it
	}
	m.list.SetItems(li)
}

func (m Model) Items() []Item {
	items := m.list.Items()
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if i, ok := it.(Item); ok {
			out = append(out, i)
		}
	}
	return out
}

// Selected returns the highlighted item, false when the list is empty
func (m Model) Selected() (Item, bool) {
	i, ok := m.list.SelectedItem().(Item)
	return i, ok
}

func (m Model) Kind() Kind { return m.kind }

func (m Model) Keys() KeyMap { return m.keys }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		kind := m.kind
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddMsg{Kind: kind} }
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.Selected(); ok {
				return m, func() tea.Msg { return DeleteMsg{Kind: kind, ID: i.ID} }
			}
			return m, nil
		case key.Matches(msg, m.keys.Toggle):
			if i, ok := m.Selected(); ok {
				return m, func() tea.Msg { return ToggleMsg{Kind: kind, ID: i.ID} }
			}
			return m, nil
		case key.Matches(msg, m.keys.Progress):
			if i, ok := m.Selected(); ok {
				return m, func() tea.Msg { return ProgressMsg{Kind: kind, ID: i.ID} }
			}
			return m, nil
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return "\n  " + m.empty + "\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
