package goals

import (
	"fmt"
	"strings"

	"github.com/julianstephens/imaan/internal/analytics"
	"github.com/julianstephens/imaan/internal/cli"
	"github.com/julianstephens/imaan/internal/constants"
	"github.com/julianstephens/imaan/internal/models"
	"github.com/julianstephens/imaan/internal/validation"
)

func goalID(g models.Goal) string { return g.ID }

// resolveGoal expands id against the current goals. The goal is nil when
// nothing matched.
func resolveGoal(ctx *cli.Context, input string) (string, *models.Goal, error) {
	goals := ctx.Tracker.Record().Goals
	id, err := cli.ResolveID(cli.IDs(goals, goalID), input)
	if err != nil {
		return "", nil, err
	}
	for i := range goals {
		if goals[i].ID == id {
			return id, &goals[i], nil
		}
	}
	return id, nil, nil
}

type GoalAddCmd struct {
	Title    []string `arg:"" help:"Goal title."`
	Category string   `help:"Goal category (prayer, quran, dhikr, charity, other)." default:"other" short:"c"`
	Target   int      `help:"Target value." required:""`
	Deadline string   `help:"Deadline (YYYY-MM-DD)." required:""`
}

func (c *GoalAddCmd) Run(ctx *cli.Context) error {
	in := validation.GoalInput{
		Title:    strings.TrimSpace(strings.Join(c.Title, " ")),
		Category: strings.ToLower(strings.TrimSpace(c.Category)),
		Target:   c.Target,
		Deadline: strings.TrimSpace(c.Deadline),
	}
	if err := ctx.Validate(in); err != nil {
		return err
	}

	ctx.Tracker.AddGoal(in.Title, constants.GoalCategory(in.Category), in.Target, in.Deadline)
	ctx.Persisted()
	added := ctx.Tracker.Record().Goals[0]
	ctx.Printf("✓ Goal added: %s (target %d by %s, %s)\n", added.Title, added.Target, added.Deadline, cli.ShortID(added.ID))
	return nil
}

type GoalProgressCmd struct {
	ID      string `arg:"" help:"Goal ID or unique prefix."`
	Current int    `arg:"" help:"Progress so far."`
}

func (c *GoalProgressCmd) Run(ctx *cli.Context) error {
	if err := ctx.Validate(validation.ProgressInput{Current: c.Current}); err != nil {
		return err
	}
	id, goal, err := resolveGoal(ctx, c.ID)
	if err != nil {
		return err
	}

	ctx.Tracker.UpdateGoalProgress(id, c.Current)
	ctx.Persisted()
	if goal == nil {
		ctx.Printf("No goal with id %q, nothing updated\n", id)
		return nil
	}

	updated := *goal
	updated.Current = c.Current
	ctx.Printf("✓ %s: %d/%d (%s)\n", updated.Title, updated.Current, updated.Target,
		cli.FormatPercent(analytics.GoalPercent(updated)))
	return nil
}

type GoalToggleCmd struct {
	ID string `arg:"" help:"Goal ID or unique prefix."`
}

func (c *GoalToggleCmd) Run(ctx *cli.Context) error {
	id, goal, err := resolveGoal(ctx, c.ID)
	if err != nil {
		return err
	}

	ctx.Tracker.ToggleGoalCompletion(id)
	ctx.Persisted()
	switch {
	case goal == nil:
		ctx.Printf("No goal with id %q, nothing updated\n", id)
	case goal.Completed:
		ctx.Printf("✓ Goal reopened: %s\n", goal.Title)
	default:
		ctx.Printf("✓ Goal completed: %s\n", goal.Title)
	}
	return nil
}

type GoalRmCmd struct {
	ID string `arg:"" help:"Goal ID or unique prefix."`
}

func (c *GoalRmCmd) Run(ctx *cli.Context) error {
	id, goal, err := resolveGoal(ctx, c.ID)
	if err != nil {
		return err
	}

	ctx.Tracker.RemoveGoal(id)
	ctx.Persisted()
	if goal == nil {
		ctx.Printf("No goal with id %q, nothing removed\n", id)
		return nil
	}
	ctx.Printf("✓ Goal removed: %s\n", goal.Title)
	return nil
}

type GoalListCmd struct {
	Open bool `help:"Hide completed goals."`
}

func (c *GoalListCmd) Run(ctx *cli.Context) error {
	r := ctx.Tracker.Record()
	if len(r.Goals) == 0 {
		ctx.Println("No goals yet.")
		return nil
	}

	now, loc := ctx.Clock(), ctx.Location()
	rows := make([][]string, 0, len(r.Goals))
	for _, g := range r.Goals {
		if c.Open && g.Completed {
			continue
		}
		deadline := g.Deadline
		if analytics.GoalOverdue(g, now, loc) {
			deadline = cli.Warn(deadline + " overdue")
		}
		rows = append(rows, []string{
			cli.ShortID(g.ID),
			cli.Checkbox(g.Completed),
			cli.Truncate(g.Title, 30),
			string(g.Category),
			fmt.Sprintf("%d/%d", g.Current, g.Target),
			cli.RenderProgressBar(analytics.GoalPercent(g), 10) + " " + cli.FormatPercent(analytics.GoalPercent(g)),
			deadline,
		})
	}
	if len(rows) == 0 {
		ctx.Println("No open goals.")
		return nil
	}

	ctx.Printf("%s", cli.RenderTable(cli.Table{
		Title:   "Goals",
		Headers: []string{"ID", "", "Title", "Category", "Progress", "", "Deadline"},
		Rows:    rows,
	}))
	ctx.Printf("%d/%d completed (%s)\n", r.CompletedGoals(), len(r.Goals),
		cli.FormatPercent(analytics.GoalsProgress(r)))
	return nil
}
