package tracking

import (
	"strings"

	"github.com/julianstephens/imaan/internal/cli"
	"github.com/julianstephens/imaan/internal/models"
	"github.com/julianstephens/imaan/internal/validation"
)

func noteID(n models.SpiritualNote) string { return n.ID }

type NotesAddCmd struct {
	Title   string   `arg:"" help:"Note title."`
	Content string   `arg:"" help:"Note body."`
	Tags    []string `name:"tag" short:"t" help:"Tag to attach; repeat or separate with commas."`
}

func (c *NotesAddCmd) Run(ctx *cli.Context) error {
	in := validation.NoteInput{
		Title:   strings.TrimSpace(c.Title),
		Content: strings.TrimSpace(c.Content),
		Tags:    validation.ParseTags(strings.Join(c.Tags, ",")),
	}
	if err := ctx.Validate(in); err != nil {
		return err
	}

	ctx.Tracker.AddSpiritualNote(in.Title, in.Content, in.Tags)
	ctx.Persisted()
	added := ctx.Tracker.Record().SpiritualNotes[0]
	ctx.Printf("✓ Note added: %s (%s)\n", added.Title, cli.ShortID(added.ID))
	return nil
}

type NotesRmCmd struct {
	ID string `arg:"" help:"Note ID or unique prefix."`
}

func (c *NotesRmCmd) Run(ctx *cli.Context) error {
	notes := ctx.Tracker.Record().SpiritualNotes
	id, err := cli.ResolveID(cli.IDs(notes, noteID), c.ID)
	if err != nil {
		return err
	}

	ctx.Tracker.RemoveSpiritualNote(id)
	ctx.Persisted()
	if len(ctx.Tracker.Record().SpiritualNotes) == len(notes) {
		ctx.Printf("No note with id %q, nothing removed\n", id)
		return nil
	}
	ctx.Printf("✓ Note removed (%s)\n", cli.ShortID(id))
	return nil
}

type NotesListCmd struct {
	Tag  string `help:"Only show notes carrying this tag."`
	Full bool   `help:"Print full note content instead of a table."`
}

func (c *NotesListCmd) Run(ctx *cli.Context) error {
	var notes []models.SpiritualNote
	for _, n := range ctx.Tracker.Record().SpiritualNotes {
		if c.Tag == "" || hasTag(n, c.Tag) {
			notes = append(notes, n)
		}
	}
	if len(notes) == 0 {
		ctx.Println("No notes found.")
		return nil
	}

	now, loc := ctx.Clock(), ctx.Location()
	if c.Full {
		for _, n := range notes {
			ctx.Printf("%s  %s\n", cli.Header(n.Title), cli.Muted(cli.ShortID(n.ID)+" · "+cli.FormatTimestamp(n.Timestamp, now, loc)))
			if len(n.Tags) > 0 {
				ctx.Printf("%s\n", cli.Muted("#"+strings.Join(n.Tags, " #")))
			}
			ctx.Printf("%s\n\n", n.Content)
		}
		return nil
	}

	rows := make([][]string, 0, len(notes))
	for _, n := range notes {
		rows = append(rows, []string{
			cli.ShortID(n.ID),
			cli.FormatTimestamp(n.Timestamp, now, loc),
			cli.Truncate(n.Title, 30),
			strings.Join(n.Tags, ", "),
		})
	}
	ctx.Printf("%s", cli.RenderTable(cli.Table{
		Title:   "Spiritual notes",
		Headers: []string{"ID", "When", "Title", "Tags"},
		Rows:    rows,
	}))
	return nil
}

func hasTag(n models.SpiritualNote, tag string) bool {
	for _, t := range n.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
