package tracking

import (
	"strings"

	"github.com/julianstephens/imaan/internal/cli"
	"github.com/julianstephens/imaan/internal/validation"
)

type ImaanSetCmd struct {
	Level int `arg:"" help:"Imaan level from 0 to 10."`
}

func (c *ImaanSetCmd) Run(ctx *cli.Context) error {
	if err := ctx.Validate(validation.ImaanInput{Level: c.Level}); err != nil {
		return err
	}

	ctx.Tracker.SetImaanLevel(c.Level)
	ctx.Persisted()
	ctx.Printf("✓ Imaan level set to %d/10\n", c.Level)
	return nil
}

type NoteSetCmd struct {
	Text []string `arg:"" optional:"" help:"Reflection text. Omit to clear the note."`
}

func (c *NoteSetCmd) Run(ctx *cli.Context) error {
	text := strings.Join(c.Text, " ")
	ctx.Tracker.SetNote(text)
	ctx.Persisted()

	if text == "" {
		ctx.Println("✓ Reflection note cleared")
	} else {
		ctx.Println("✓ Reflection note saved")
	}
	return nil
}

type QuranSetCmd struct {
	Pages   *int `help:"Pages read today."`
	Minutes *int `help:"Minutes spent reading today."`
}

func (c *QuranSetCmd) Run(ctx *cli.Context) error {
	if c.Pages == nil && c.Minutes == nil {
		r := ctx.Tracker.Record()
		ctx.Printf("Quran: %d pages, %d minutes\n", r.QuranPages, r.QuranMinutes)
		return nil
	}

	r := ctx.Tracker.Record()
	in := validation.QuranInput{Pages: r.QuranPages, Minutes: r.QuranMinutes}
	if c.Pages != nil {
		in.Pages = *c.Pages
	}
	if c.Minutes != nil {
		in.Minutes = *c.Minutes
	}
	if err := ctx.Validate(in); err != nil {
		return err
	}

	if c.Pages != nil {
		ctx.Tracker.SetQuranPages(in.Pages)
	}
	if c.Minutes != nil {
		ctx.Tracker.SetQuranMinutes(in.Minutes)
	}
	ctx.Persisted()
	ctx.Printf("✓ Quran: %d pages, %d minutes\n", in.Pages, in.Minutes)
	return nil
}
