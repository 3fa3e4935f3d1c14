package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/reugn/go-cronmatch/cronmatch"
)

var errUsage = errors.New("invalid arguments")

// NewMatchCommand returns the match subcommand.
func NewMatchCommand() *cli.Command {
	return &cli.Command{
		Name:      "match",
		Usage:     "Check whether a time satisfies a cron expression",
		ArgsUsage: "<time> <expression>",
		Description: "The time is \"now\", \"today\", \"tomorrow\", \"yesterday\", a signed\n" +
			"duration relative to now (+90m), a Unix timestamp (@1712286900) or a\n" +
			"date such as \"2024-04-05 03:15\". The expression may be passed as a\n" +
			"single argument or as five separate ones.",
		Action: runMatch,
	}
}

func runMatch(_ context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 2 {
		return fmt.Errorf("%w: expecting <time> <expression>", errUsage)
	}
	env, err := newEnvironment(cmd)
	if err != nil {
		return err
	}

	args := cmd.Args().Slice()
	expr := strings.Join(args[1:], " ")
	ok, err := env.matcher.MatchString(args[0], expr)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(env.out, ok)
	return err
}

// NewComponentCommand returns the component subcommand.
func NewComponentCommand() *cli.Command {
	return &cli.Command{
		Name:      "component",
		Usage:     "Check whether a number satisfies a single cron field",
		ArgsUsage: "<field> <number>",
		Action:    runComponent,
	}
}

func runComponent(_ context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 2 {
		return fmt.Errorf("%w: expecting <field> <number>", errUsage)
	}
	env, err := newEnvironment(cmd)
	if err != nil {
		return err
	}

	num, err := strconv.Atoi(cmd.Args().Get(1))
	if err != nil {
		return fmt.Errorf("%w: number: %w", errUsage, err)
	}
	ok, err := cronmatch.MatchTimeComponent(cmd.Args().Get(0), num)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(env.out, ok)
	return err
}

// NewResolveCommand returns the resolve subcommand.
func NewResolveCommand() *cli.Command {
	return &cli.Command{
		Name:      "resolve",
		Usage:     "Print the numeric value of a field token, e.g. jan or Friday",
		ArgsUsage: "<token>",
		Action:    runResolve,
	}
}

func runResolve(_ context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 1 {
		return fmt.Errorf("%w: expecting <token>", errUsage)
	}
	env, err := newEnvironment(cmd)
	if err != nil {
		return err
	}

	result := "unresolved"
	if value, ok := cronmatch.ExprToNumeric(cmd.Args().First()); ok {
		result = strconv.FormatFloat(value, 'f', -1, 64)
	}
	_, err = fmt.Fprintln(env.out, result)
	return err
}

// NewValidateCommand returns the validate subcommand.
func NewValidateCommand() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "Check the syntax of every field of a cron expression",
		ArgsUsage: "<expression>",
		Action:    runValidate,
	}
}

func runValidate(_ context.Context, cmd *cli.Command) error {
	if cmd.NArg() == 0 {
		return fmt.Errorf("%w: expecting <expression>", errUsage)
	}
	env, err := newEnvironment(cmd)
	if err != nil {
		return err
	}

	if err := cronmatch.Validate(strings.Join(cmd.Args().Slice(), " ")); err != nil {
		return err
	}
	_, err = fmt.Fprintln(env.out, "ok")
	return err
}
