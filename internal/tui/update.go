package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/imaan/internal/constants"
	"github.com/julianstephens/imaan/internal/logger"
	"github.com/julianstephens/imaan/internal/tui/components/entrylist"
	"github.com/julianstephens/imaan/internal/tui/components/today"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(recordMsg); ok {
		m.setRecord(msg.record)
		return m, waitForRecord(m.sub)
	}

	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		w, h := msg.Width-4, max(msg.Height-8, 1)
		m.deeds.SetSize(w, h)
		m.charity.SetSize(w, h-1)
		m.notes.SetSize(w, h)
		m.goals.SetSize(w, h)
	}

	switch m.state {
	case constants.StateForm:
		return m.updateForm(msg)
	case constants.StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.Right):
			m.state = constants.SessionState((int(m.state) + 1) % constants.TabCount)
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab), key.Matches(msg, m.keys.Left):
			m.state = constants.SessionState((int(m.state) - 1 + constants.TabCount) % constants.TabCount)
			return m, nil
		}

	case today.SetImaanMsg:
		m.tracker.SetImaanLevel(msg.Level)
		return m.changed(fmt.Sprintf("Imaan level set to %d", msg.Level)), nil
	case today.TogglePrayerMsg:
		m.tracker.TogglePrayer(msg.Name)
		return m.changed(msg.Name + " updated"), nil
	case today.IncrementDhikrMsg:
		m.tracker.IncrementDhikr()
		return m.changed(""), nil
	case today.ResetDhikrMsg:
		m.tracker.ResetDhikr()
		return m.changed("Dhikr counter reset"), nil
	case today.EditQuranMsg:
		m.forms.quran = &QuranFormModel{
			Pages:   strconv.Itoa(m.record.QuranPages),
			Minutes: strconv.Itoa(m.record.QuranMinutes),
		}
		return m.openForm(formQuran, NewQuranForm(m.forms.quran))
	case today.EditNoteMsg:
		m.forms.dailyNote = &DailyNoteFormModel{Text: m.record.Note}
		return m.openForm(formDailyNote, NewDailyNoteForm(m.forms.dailyNote))

	case entrylist.AddMsg:
		return m.openAddForm(msg.Kind)
	case entrylist.DeleteMsg:
		m.pendingDelete = msg
		m.previousState = m.state
		m.state = constants.StateConfirmDelete
		return m, nil
	case entrylist.ToggleMsg:
		m.tracker.ToggleGoalCompletion(msg.ID)
		return m.changed("Goal updated"), nil
	case entrylist.ProgressMsg:
		for _, g := range m.record.Goals {
			if g.ID == msg.ID {
				m.formTarget = g.ID
				m.forms.progress = &ProgressFormModel{Current: strconv.Itoa(g.Current)}
				return m.openForm(formProgress, NewProgressForm(g.Title, m.forms.progress))
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.state == constants.StateToday {
		m.today, cmd = m.today.Update(msg)
	} else if l := m.activeList(); l != nil {
		*l, cmd = l.Update(msg)
	}
	return m, cmd
}

func (m Model) openAddForm(kind entrylist.Kind) (tea.Model, tea.Cmd) {
	switch kind {
	case entrylist.Deeds:
		m.forms.deed = &DeedFormModel{}
		return m.openForm(formDeed, NewDeedForm(m.forms.deed))
	case entrylist.Charity:
		m.forms.charity = &CharityFormModel{}
		return m.openForm(formCharity, NewCharityForm(m.forms.charity))
	case entrylist.Notes:
		m.forms.note = &NoteFormModel{}
		return m.openForm(formNote, NewNoteForm(m.forms.note))
	case entrylist.Goals:
		m.forms.goal = &GoalFormModel{
			Category: constants.GoalCategoryOther,
			Deadline: m.clock().In(m.loc).AddDate(0, 0, 7).Format(constants.DateFormat),
		}
		return m.openForm(formGoal, NewGoalForm(m.forms.goal))
	}
	return m, nil
}

func (m Model) openForm(kind formKind, form *huh.Form) (tea.Model, tea.Cmd) {
	m.formKind = kind
	m.form = form
	m.formError = ""
	m.previousState = m.state
	m.state = constants.StateForm
	return m, m.form.Init()
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		return m.closeForm(), nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m.completeForm(), cmd
	case huh.StateAborted:
		return m.closeForm(), nil
	}
	return m, cmd
}

// completeForm runs the form's command. On a validation error the form
// stays open so the user can correct it.
func (m Model) completeForm() Model {
	status, err := m.submitForm()
	if err != nil {
		m.formError = err.Error()
		m.form.State = huh.StateNormal
		return m
	}
	m = m.closeForm()
	return m.changed(status)
}

func (m Model) closeForm() Model {
	m.form = nil
	m.formError = ""
	m.formTarget = ""
	m.state = m.previousState
	return m
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(kmsg, m.keys.Confirm):
		m.state = m.previousState
		return m.removeEntry(m.pendingDelete), nil
	case key.Matches(kmsg, m.keys.Cancel), key.Matches(kmsg, m.keys.Quit):
		m.state = m.previousState
		m.pendingDelete = entrylist.DeleteMsg{}
	}
	return m, nil
}

func (m Model) removeEntry(d entrylist.DeleteMsg) Model {
	m.pendingDelete = entrylist.DeleteMsg{}
	switch d.Kind {
	case entrylist.Deeds:
		m.tracker.RemoveGoodDeed(d.ID)
		return m.changed("Good deed removed")
	case entrylist.Charity:
		m.tracker.RemoveCharityDonation(d.ID)
		return m.changed("Donation removed")
	case entrylist.Notes:
		m.tracker.RemoveSpiritualNote(d.ID)
		return m.changed("Note removed")
	case entrylist.Goals:
		m.tracker.RemoveGoal(d.ID)
		return m.changed("Goal removed")
	}
	return m
}

// changed pulls the new record from the tracker and reports whether it was
// written. An empty status keeps the current message.
func (m Model) changed(status string) Model {
	m.setRecord(m.tracker.Record())
	if err := m.tracker.Err(); err != nil {
		logger.Warn("tui change not persisted", "error", err)
		m.status = "Change not saved: " + err.Error()
		m.statusIsError = true
		return m
	}
	if status != "" {
		m.status = "✓ " + status
		m.statusIsError = false
	}
	return m
}
