package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/imaan/internal/constants"
	"github.com/julianstephens/imaan/internal/validation"
)

type DeedFormModel struct {
	Description string
}

type CharityFormModel struct {
	Amount      string
	Description string
}

type NoteFormModel struct {
	Title   string
	Content string
	Tags    string
}

type GoalFormModel struct {
	Title    string
	Category constants.GoalCategory
	Target   string
	Deadline string
}

type ProgressFormModel struct {
	Current string
}

type QuranFormModel struct {
	Pages   string
	Minutes string
}

type DailyNoteFormModel struct {
	Text string
}

// formModels holds the values bound to the open form
type formModels struct {
	deed      *DeedFormModel
	charity   *CharityFormModel
	note      *NoteFormModel
	goal      *GoalFormModel
	progress  *ProgressFormModel
	quran     *QuranFormModel
	dailyNote *DailyNoteFormModel
}

func notEmpty(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", field)
		}
		return nil
	}
}

func wholeNumber(field string, minimum int) func(string) error {
	return func(s string) error {
		i, err := validation.ParseInt(s)
		if err != nil {
			return err
		}
		if i < minimum {
			return fmt.Errorf("%s must be at least %d", field, minimum)
		}
		return nil
	}
}

// NewDeedForm creates a form for logging a good deed
func NewDeedForm(fm *DeedFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Good deed").
				Value(&fm.Description).
				Validate(notEmpty("description")),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewCharityForm creates a form for recording a donation
func NewCharityForm(fm *CharityFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Amount").
				Value(&fm.Amount).
				Validate(func(s string) error {
					f, err := validation.ParseAmount(s)
					if err != nil {
						return err
					}
					if f <= 0 {
						return fmt.Errorf("amount must be greater than 0")
					}
					return nil
				}),
			huh.NewInput().
				Title("Description").
				Value(&fm.Description).
				Validate(notEmpty("description")),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewNoteForm creates a form for writing a spiritual note
func NewNoteForm(fm *NoteFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&fm.Title).
				Validate(notEmpty("title")),
			huh.NewText().
				Title("Reflection").
				Value(&fm.Content).
				Validate(notEmpty("content")),
			huh.NewInput().
				Title("Tags").
				Description("Comma separated, optional").
				Value(&fm.Tags),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewGoalForm creates a form for adding a goal
func NewGoalForm(fm *GoalFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Goal").
				Value(&fm.Title).
				Validate(notEmpty("title")),
			huh.NewSelect[constants.GoalCategory]().
				Title("Category").
				Options(huh.NewOptions(constants.GoalCategories...)...).
				Value(&fm.Category),
			huh.NewInput().
				Title("Target").
				Value(&fm.Target).
				Validate(wholeNumber("target", 1)),
			huh.NewInput().
				Title("Deadline (YYYY-MM-DD)").
				Value(&fm.Deadline).
				Validate(func(s string) error {
					if _, err := time.Parse(constants.DateFormat, strings.TrimSpace(s)); err != nil {
						return fmt.Errorf("deadline must be a date in YYYY-MM-DD format")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewProgressForm creates a form for updating a goal's current progress
func NewProgressForm(title string, fm *ProgressFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Progress for " + title).
				Value(&fm.Current).
				Validate(wholeNumber("progress", 0)),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewQuranForm creates a form for today's Quran reading
func NewQuranForm(fm *QuranFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Pages read").
				Value(&fm.Pages).
				Validate(wholeNumber("pages", 0)),
			huh.NewInput().
				Title("Minutes spent").
				Value(&fm.Minutes).
				Validate(wholeNumber("minutes", 0)),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewDailyNoteForm edits the free-text note for the day; empty clears it
func NewDailyNoteForm(fm *DailyNoteFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Today's note").
				Value(&fm.Text),
		),
	).WithTheme(huh.ThemeDracula())
}

// submitForm validates the bound values and runs the matching store command
func (m *Model) submitForm() (string, error) {
	switch m.formKind {
	case formDeed:
		fm := m.forms.deed
		in := validation.DeedInput{Description: strings.TrimSpace(fm.Description)}
		if err := m.validator.Struct(in); err != nil {
			return "", err
		}
		m.tracker.AddGoodDeed(in.Description)
		return "Good deed added", nil

	case formCharity:
		fm := m.forms.charity
		amount, err := validation.ParseAmount(fm.Amount)
		if err != nil {
			return "", err
		}
		in := validation.DonationInput{Amount: amount, Description: strings.TrimSpace(fm.Description)}
		if err := m.validator.Struct(in); err != nil {
			return "", err
		}
		m.tracker.AddCharityDonation(in.Amount, in.Description)
		return "Donation recorded", nil

	case formNote:
		fm := m.forms.note
		in := validation.NoteInput{
			Title:   strings.TrimSpace(fm.Title),
			Content: strings.TrimSpace(fm.Content),
			Tags:    validation.ParseTags(fm.Tags),
		}
		if err := m.validator.Struct(in); err != nil {
			return "", err
		}
		m.tracker.AddSpiritualNote(in.Title, in.Content, in.Tags)
		return "Note saved", nil

	case formGoal:
		fm := m.forms.goal
		target, err := validation.ParseInt(fm.Target)
		if err != nil {
			return "", err
		}
		in := validation.GoalInput{
			Title:    strings.TrimSpace(fm.Title),
			Category: string(fm.Category),
			Target:   target,
			Deadline: strings.TrimSpace(fm.Deadline),
		}
		if err := m.validator.Struct(in); err != nil {
			return "", err
		}
		m.tracker.AddGoal(in.Title, constants.GoalCategory(in.Category), in.Target, in.Deadline)
		return "Goal added", nil

	case formProgress:
		current, err := validation.ParseInt(m.forms.progress.Current)
		if err != nil {
			return "", err
		}
		if err := m.validator.Struct(validation.ProgressInput{Current: current}); err != nil {
			return "", err
		}
		m.tracker.UpdateGoalProgress(m.formTarget, current)
		return "Goal progress updated", nil

	case formQuran:
		pages, err := validation.ParseInt(m.forms.quran.Pages)
		if err != nil {
			return "", err
		}
		minutes, err := validation.ParseInt(m.forms.quran.Minutes)
		if err != nil {
			return "", err
		}
		if err := m.validator.Struct(validation.QuranInput{Pages: pages, Minutes: minutes}); err != nil {
			return "", err
		}
		if pages != m.record.QuranPages {
			m.tracker.SetQuranPages(pages)
		}
		if minutes != m.record.QuranMinutes {
			m.tracker.SetQuranMinutes(minutes)
		}
		return "Quran reading updated", nil

	case formDailyNote:
		m.tracker.SetNote(strings.TrimSpace(m.forms.dailyNote.Text))
		return "Note updated", nil
	}
	return "", fmt.Errorf("unknown form")
}
