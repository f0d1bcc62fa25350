package app

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/baptistax/qrfeed/internal/config"
	"github.com/baptistax/qrfeed/internal/downloader"
	"github.com/baptistax/qrfeed/internal/qr"
	"github.com/baptistax/qrfeed/internal/reddit"
	"github.com/baptistax/qrfeed/internal/report"
)

type App struct {
	feed    string
	client  *reddit.Client
	walker  *Walker
	console *report.Console
	logger  *zap.Logger
}

// New wires the Reddit client, downloader, decoder and console from cfg.
// Scan results are written to out.
func New(cfg config.Config, out io.Writer, logger *zap.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	client, err := reddit.NewClient(reddit.Options{
		ClientID:     cfg.Reddit.ClientID,
		ClientSecret: cfg.Reddit.ClientSecret,
		UserAgent:    cfg.Reddit.UserAgent,
		Timeout:      cfg.HTTP.Timeout,
		TokenURL:     cfg.Reddit.TokenURL,
		BaseURL:      cfg.Reddit.BaseURL,
	})
	if err != nil {
		return nil, err
	}

	dl := downloader.New(downloader.Options{
		Timeout:   cfg.HTTP.Timeout,
		UserAgent: cfg.Reddit.UserAgent,
		MaxBytes:  cfg.HTTP.MaxBytes,
	})

	dec := qr.New(qr.Options{
		MaxPixels:       cfg.Decoder.MaxPixels,
		WarnLargeImages: cfg.Decoder.WarnLargeImages,
		Logger:          logger,
	})

	console := report.NewConsole(out)

	return &App{
		feed:   cfg.Feed.Name,
		client: client,
		walker: &Walker{
			Provider: client,
			Fetcher:  dl,
			Scanner:  dec,
			Reporter: console,
			Window:   cfg.Window(),
			Limit:    cfg.Feed.Limit,
		},
		console: console,
		logger:  logger,
	}, nil
}

// Run authenticates, walks the feed once and prints "Done." when the walk
// completes.
func (a *App) Run(ctx context.Context) error {
	log := a.logger.With(zap.String("run_id", uuid.NewString()), zap.String("feed", a.feed))

	if err := a.client.Login(ctx); err != nil {
		return err
	}

	log.Info("Scanning feed", zap.String("window", string(a.walker.Window)), zap.Int("limit", a.walker.Limit))

	w := *a.walker
	w.Logger = log
	st, err := w.Walk(ctx, a.feed)
	log.Info("Scan finished", st.Fields()...)
	if err != nil {
		return fmt.Errorf("scan of %s stopped: %w", a.feed, err)
	}

	a.console.Done()
	return nil
}
