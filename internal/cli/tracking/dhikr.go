package tracking

import (
	"github.com/julianstephens/imaan/internal/cli"
	"github.com/julianstephens/imaan/internal/validation"
)

type DhikrCountCmd struct {
	Times int `help:"Number of counts to add." default:"1" short:"n"`
}

func (c *DhikrCountCmd) Run(ctx *cli.Context) error {
	if err := ctx.Validate(validation.DhikrInput{Times: c.Times}); err != nil {
		return err
	}

	for i := 0; i < c.Times; i++ {
		ctx.Tracker.IncrementDhikr()
	}
	ctx.Persisted()
	ctx.Printf("✓ Dhikr count: %d\n", ctx.Tracker.Record().DhikrCount)
	return nil
}

type DhikrResetCmd struct{}

func (c *DhikrResetCmd) Run(ctx *cli.Context) error {
	ctx.Tracker.ResetDhikr()
	ctx.Persisted()
	ctx.Println("✓ Dhikr count reset")
	return nil
}
