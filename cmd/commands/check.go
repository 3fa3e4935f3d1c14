package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/reugn/go-cronmatch/matcher"
)

// NewCheckCommand returns the check subcommand.
func NewCheckCommand() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Evaluate the configured schedules at a point in time",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "at",
				Usage: "Time to evaluate the schedules at",
				Value: "now",
			},
			&cli.StringFlag{
				Name:  "name",
				Usage: "Only evaluate schedules whose name starts with this prefix",
			},
			&cli.BoolFlag{
				Name:  "active",
				Usage: "Only list the schedules matching the time",
			},
		},
		Action: runCheck,
	}
}

func runCheck(_ context.Context, cmd *cli.Command) error {
	env, err := newEnvironment(cmd)
	if err != nil {
		return err
	}

	at, err := env.resolver.ResolveTime(cmd.String("at"))
	if err != nil {
		return err
	}
	active := matcher.ActiveAtWith(env.matcher, at.In(env.matcher.Location()))

	var matchers []matcher.Matcher[matcher.Schedule]
	if prefix := cmd.String("name"); prefix != "" {
		matchers = append(matchers, matcher.ScheduleNameStartsWith(prefix))
	}
	if cmd.Bool("active") {
		matchers = append(matchers, active)
	}
	schedules := matcher.Select(env.config.Schedules, matchers...)
	if len(schedules) == 0 {
		_, err := fmt.Fprintln(env.out, "No schedules found.")
		return err
	}

	w := tabwriter.NewWriter(env.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tEXPRESSION\tMATCH")
	for _, schedule := range schedules {
		fmt.Fprintf(w, "%s\t%s\t%t\n", schedule.Name, schedule.Expression, active.IsMatch(schedule))
	}
	env.logger.Info("Checked schedules", "at", at.String(), "count", len(schedules))

	return w.Flush()
}
