package tracking

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/julianstephens/imaan/internal/analytics"
	"github.com/julianstephens/imaan/internal/cli"
	"github.com/julianstephens/imaan/internal/models"
	"github.com/julianstephens/imaan/internal/validation"
)

func donationID(d models.CharityDonation) string { return d.ID }

type CharityAddCmd struct {
	Amount      float64  `arg:"" help:"Amount given."`
	Description []string `arg:"" help:"Where or to whom it went."`
}

func (c *CharityAddCmd) Run(ctx *cli.Context) error {
	desc := strings.TrimSpace(strings.Join(c.Description, " "))
	if err := ctx.Validate(validation.DonationInput{Amount: c.Amount, Description: desc}); err != nil {
		return err
	}

	ctx.Tracker.AddCharityDonation(c.Amount, desc)
	ctx.Persisted()
	added := ctx.Tracker.Record().CharityDonations[0]
	ctx.Printf("✓ Donation added: %s for %s (%s)\n",
		cli.FormatAmount(decimal.NewFromFloat(added.Amount)), added.Description, cli.ShortID(added.ID))
	return nil
}

type CharityRmCmd struct {
	ID string `arg:"" help:"Donation ID or unique prefix."`
}

func (c *CharityRmCmd) Run(ctx *cli.Context) error {
	donations := ctx.Tracker.Record().CharityDonations
	id, err := cli.ResolveID(cli.IDs(donations, donationID), c.ID)
	if err != nil {
		return err
	}

	ctx.Tracker.RemoveCharityDonation(id)
	ctx.Persisted()
	if len(ctx.Tracker.Record().CharityDonations) == len(donations) {
		ctx.Printf("No donation with id %q, nothing removed\n", id)
		return nil
	}
	ctx.Printf("✓ Donation removed (%s)\n", cli.ShortID(id))
	return nil
}

type CharityListCmd struct{}

func (c *CharityListCmd) Run(ctx *cli.Context) error {
	donations := ctx.Tracker.Record().CharityDonations
	if len(donations) == 0 {
		ctx.Println("No donations recorded.")
		return nil
	}

	now, loc := ctx.Clock(), ctx.Location()
	rows := make([][]string, 0, len(donations))
	for _, d := range donations {
		rows = append(rows, []string{
			cli.ShortID(d.ID),
			cli.FormatTimestamp(d.Timestamp, now, loc),
			cli.FormatAmount(decimal.NewFromFloat(d.Amount)),
			cli.Truncate(d.Description, 50),
		})
	}
	ctx.Printf("%s", cli.RenderTable(cli.Table{
		Title:   "Charity",
		Headers: []string{"ID", "When", "Amount", "Description"},
		Rows:    rows,
	}))
	ctx.Printf("Total: %s across %d donation(s)\n",
		cli.FormatAmount(analytics.CharityTotal(donations)), len(donations))
	return nil
}
