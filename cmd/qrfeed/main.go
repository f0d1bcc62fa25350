package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/baptistax/qrfeed/internal/app"
	"github.com/baptistax/qrfeed/internal/config"
	"github.com/baptistax/qrfeed/internal/logging"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cmd := &cli.App{
		Name:      "qrfeed",
		Usage:     "scan the top image posts of a subreddit for QR codes",
		UsageText: "qrfeed [--config PATH] [--feed NAME] [--window day] [--limit N]\nqrfeed watch [--schedule CRON]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Value: config.DefaultPath, Usage: "YAML config file"},
			&cli.StringFlag{Name: "feed", Usage: "subreddit to scan"},
			&cli.StringFlag{Name: "window", Usage: "top listing window: hour, day, week, month, year or all"},
			&cli.IntFlag{Name: "limit", Usage: "stop after this many posts, 0 for no limit"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
		},
		Action: func(c *cli.Context) error {
			a, _, logger, err := build(c)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			return a.Run(c.Context)
		},
		Commands: []*cli.Command{
			{
				Name:  "watch",
				Usage: "repeat the scan on a cron schedule until interrupted",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "schedule", Usage: "five-field cron expression"},
				},
				Action: func(c *cli.Context) error {
					a, cfg, logger, err := build(c)
					if err != nil {
						return err
					}
					defer func() { _ = logger.Sync() }()

					schedule := cfg.Watch.Schedule
					if c.IsSet("schedule") {
						schedule = c.String("schedule")
					}
					return a.Watch(c.Context, schedule)
				},
			},
		},
	}
	cli.AppHelpTemplate += "\nENVIRONMENT:\n" + config.Usage()

	if err := cmd.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func loadConfig(c *cli.Context) (config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return config.Config{}, err
	}
	if c.IsSet("feed") {
		cfg.Feed.Name = c.String("feed")
	}
	if c.IsSet("window") {
		cfg.Feed.Window = c.String("window")
	}
	if c.IsSet("limit") {
		cfg.Feed.Limit = c.Int("limit")
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	return cfg, nil
}

// build turns flags and config into a ready App. Its errors exit with
// status 2.
func build(c *cli.Context) (*app.App, config.Config, *zap.Logger, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, cfg, nil, cli.Exit(err.Error(), 2)
	}
	logger, err := logging.New(cfg.Log.Level)
	if err != nil {
		return nil, cfg, nil, cli.Exit(err.Error(), 2)
	}
	a, err := app.New(cfg, os.Stdout, logger)
	if err != nil {
		return nil, cfg, nil, cli.Exit(err.Error(), 2)
	}
	return a, cfg, logger, nil
}
