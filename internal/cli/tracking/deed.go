package tracking

import (
	"strings"

	"github.com/julianstephens/imaan/internal/cli"
	"github.com/julianstephens/imaan/internal/models"
	"github.com/julianstephens/imaan/internal/validation"
)

func deedID(d models.GoodDeed) string { return d.ID }

type DeedAddCmd struct {
	Description []string `arg:"" help:"What you did."`
}

func (c *DeedAddCmd) Run(ctx *cli.Context) error {
	desc := strings.TrimSpace(strings.Join(c.Description, " "))
	if err := ctx.Validate(validation.DeedInput{Description: desc}); err != nil {
		return err
	}

	ctx.Tracker.AddGoodDeed(desc)
	ctx.Persisted()
	added := ctx.Tracker.Record().GoodDeeds[0]
	ctx.Printf("✓ Good deed added: %s (%s)\n", added.Description, cli.ShortID(added.ID))
	return nil
}

type DeedRmCmd struct {
	ID string `arg:"" help:"Deed ID or unique prefix."`
}

func (c *DeedRmCmd) Run(ctx *cli.Context) error {
	deeds := ctx.Tracker.Record().GoodDeeds
	id, err := cli.ResolveID(cli.IDs(deeds, deedID), c.ID)
	if err != nil {
		return err
	}

	ctx.Tracker.RemoveGoodDeed(id)
	ctx.Persisted()
	if len(ctx.Tracker.Record().GoodDeeds) == len(deeds) {
		ctx.Printf("No good deed with id %q, nothing removed\n", id)
		return nil
	}
	ctx.Printf("✓ Good deed removed (%s)\n", cli.ShortID(id))
	return nil
}

type DeedListCmd struct{}

func (c *DeedListCmd) Run(ctx *cli.Context) error {
	deeds := ctx.Tracker.Record().GoodDeeds
	if len(deeds) == 0 {
		ctx.Println("No good deeds recorded.")
		return nil
	}

	now, loc := ctx.Clock(), ctx.Location()
	rows := make([][]string, 0, len(deeds))
	for _, d := range deeds {
		rows = append(rows, []string{
			cli.ShortID(d.ID),
			cli.FormatTimestamp(d.Timestamp, now, loc),
			cli.Truncate(d.Description, 60),
		})
	}
	ctx.Printf("%s", cli.RenderTable(cli.Table{
		Title:   "Good deeds",
		Headers: []string{"ID", "When", "Description"},
		Rows:    rows,
	}))
	return nil
}
