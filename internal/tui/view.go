package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/imaan/internal/analytics"
	"github.com/julianstephens/imaan/internal/cli"
	"github.com/julianstephens/imaan/internal/constants"
	"github.com/julianstephens/imaan/internal/tui/components/entrylist"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case constants.StateOverview:
		content = m.viewOverview()
	case constants.StateToday:
		content = docStyle.Render(m.today.View())
	case constants.StateDeeds:
		content = docStyle.Render(m.deeds.View())
	case constants.StateCharity:
		content = m.viewCharity()
	case constants.StateNotes:
		content = docStyle.Render(m.notes.View())
	case constants.StateGoals:
		content = docStyle.Render(m.goals.View())
	case constants.StateForm:
		content = m.viewForm()
	case constants.StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	parts := []string{m.viewTabs(), content}
	if m.status != "" {
		if m.statusIsError {
			parts = append(parts, warningStyle.Render(m.status))
		} else {
			parts = append(parts, mutedStyle.Render(m.status))
		}
	}
	parts = append(parts, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewTabs() string {
	active := m.state
	if active == constants.StateForm || active == constants.StateConfirmDelete {
		active = m.previousState
	}

	var tabs []string
	for i, title := range tabTitles {
		if active == constants.SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	tabs = append(tabs, mutedStyle.Render("  "+m.record.Date))
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func card(title, value string) string {
	return cardStyle.Render(cardTitleStyle.Render(title) + "\n" + cardValueStyle.Render(value))
}

func (m Model) viewOverview() string {
	s := analytics.Summarize(m.record, m.clock(), m.loc)

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Imaan", fmt.Sprintf("%d/%d", s.ImaanLevel, constants.MaxImaanLevel)),
		card("Prayers", fmt.Sprintf("%d/%d (%s)", s.PrayersCompleted, s.PrayersTotal, cli.FormatPercent(s.PrayerRate))),
		card("Dhikr", fmt.Sprintf("%d", s.DhikrCount)),
	)
	bottom := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Quran", fmt.Sprintf("%d pages, %d min", s.QuranPages, s.QuranMinutes)),
		card("Charity", fmt.Sprintf("%s (%d)", cli.FormatAmount(s.CharityTotal), s.CharityCount)),
		card("Goals", fmt.Sprintf("%d/%d (%s)", s.GoalsCompleted, s.GoalsTotal, cli.FormatPercent(s.GoalsProgress))),
	)

	charts := lipgloss.JoinHorizontal(lipgloss.Top,
		cli.RenderDayBars("Deeds, last 7 days", s.Deeds, 10),
		"  ",
		cli.RenderDayBars("Notes, last 7 days", s.Notes, 10),
		"  ",
		cli.RenderDayBars("Donations, last 7 days", s.Charity, 10),
	)

	var goals strings.Builder
	goals.WriteString(sectionStyle.Render("Goals"))
	goals.WriteString("\n")
	if len(s.Goals) == 0 {
		goals.WriteString(mutedStyle.Render("  No goals yet"))
	}
	for _, gs := range s.Goals {
		line := fmt.Sprintf("  %s %s %s %s",
			cli.Checkbox(gs.Goal.Completed),
			cli.RenderProgressBar(gs.Percent, 20),
			cli.FormatPercent(gs.Percent),
			gs.Goal.Title,
		)
		if gs.Overdue {
			line += " " + dangerStyle.Render("overdue")
		}
		goals.WriteString(line + "\n")
	}

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, top, bottom, "", charts, goals.String()))
}

func (m Model) viewCharity() string {
	total := analytics.CharityTotal(m.record.CharityDonations)
	header := sectionStyle.Render(fmt.Sprintf("Total: %s across %d donation(s)",
		cli.FormatAmount(total), len(m.record.CharityDonations)))
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, m.charity.View()))
}

func (m Model) viewForm() string {
	if m.form == nil {
		return ""
	}
	view := m.form.View()
	if m.formError != "" {
		view = lipgloss.JoinVertical(lipgloss.Left, view, errorStyle.Render(m.formError))
	}
	return docStyle.Render(view)
}

var deleteNouns = map[entrylist.Kind]string{
	entrylist.Deeds:   "good deed",
	entrylist.Charity: "donation",
	entrylist.Notes:   "note",
	entrylist.Goals:   "goal",
}

func (m Model) viewConfirmDelete() string {
	name := ""
	if l := m.listFor(m.pendingDelete.Kind); l != nil {
		for _, it := range l.Items() {
			if it.ID == m.pendingDelete.ID {
				name = it.Name
			}
		}
	}
	return lipgloss.Place(m.width, max(m.height-4, 0),
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Delete this %s?", deleteNouns[m.pendingDelete.Kind])),
			selectedStyle.Render(name),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

func (m Model) listFor(kind entrylist.Kind) *entrylist.Model {
	switch kind {
	case entrylist.Deeds:
		return &m.deeds
	case entrylist.Charity:
		return &m.charity
	case entrylist.Notes:
		return &m.notes
	case entrylist.Goals:
		return &m.goals
	}
	return nil
}
