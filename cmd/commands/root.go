// Package commands implements the cronmatch command line tool.
package commands

import (
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/reugn/go-cronmatch/cronmatch"
	"github.com/reugn/go-cronmatch/internal/config"
	"github.com/reugn/go-cronmatch/logger"
	"github.com/reugn/go-cronmatch/timeparse"
)

// NewRootCommand returns the top-level CLI command.
func NewRootCommand() *cli.Command {
	return &cli.Command{
		Name:  "cronmatch",
		Usage: "Check points in time against cron expressions",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML config file",
				Sources: cli.EnvVars(config.EnvConfigPath),
			},
			&cli.StringFlag{
				Name:  "location",
				Usage: "IANA location used to break down times, e.g. Europe/Berlin",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: trace, debug, info, warn, error or off",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		},
		Commands: []*cli.Command{
			NewMatchCommand(),
			NewComponentCommand(),
			NewResolveCommand(),
			NewValidateCommand(),
			NewCheckCommand(),
		},
	}
}

// environment holds what the commands share, built from the flags and the
// optional config file.
type environment struct {
	config   *config.Config
	logger   logger.Logger
	resolver *timeparse.Resolver
	matcher  *cronmatch.Matcher
	out      io.Writer
}

func newEnvironment(cmd *cli.Command) (*environment, error) {
	cfg := config.Default()
	if path := cmd.String("config"); path != "" {
		loaded, err := config.LoadFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if location := cmd.String("location"); location != "" {
		cfg.Location = location
	}
	if level := cmd.String("log-level"); level != "" {
		cfg.LogLevel = level
	}
	if cmd.Bool("debug") {
		cfg.LogLevel = logger.LevelDebug.String()
	}

	location, err := cfg.TimeLocation()
	if err != nil {
		return nil, err
	}
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	log := logger.NewTextSlogLogger(errWriter(cmd), level)
	resolver := timeparse.NewResolverWithOptions(timeparse.ResolverOptions{
		Location:    location,
		TimeFormats: cfg.TimeFormats,
	})
	log.Debug("Loaded configuration", "location", location.String(),
		"level", level.String(), "schedules", len(cfg.Schedules))

	return &environment{
		config:   cfg,
		logger:   log,
		resolver: resolver,
		matcher: cronmatch.NewMatcherWithOptions(cronmatch.MatcherOptions{
			Location:     location,
			TimeResolver: resolver,
			Logger:       log,
		}),
		out: writer(cmd),
	}, nil
}

func writer(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func errWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}
