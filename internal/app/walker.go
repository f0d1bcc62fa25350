package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/baptistax/qrfeed/internal/feed"
	"github.com/baptistax/qrfeed/internal/qr"
	"github.com/baptistax/qrfeed/internal/utils"
)

// ErrNoGallery is returned for a gallery URL that carries no post id.
var ErrNoGallery = errors.New("gallery url has no post id")

type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

type Scanner interface {
	Scan(data []byte, r qr.Reporter)
}

// Walker visits the top posts of a feed one at a time and scans every image
// it can reach for QR codes.
type Walker struct {
	Provider feed.Provider
	Fetcher  Fetcher
	Scanner  Scanner
	Reporter qr.Reporter
	Logger   *zap.Logger

	Window feed.TimeWindow
	// Limit caps the number of posts visited; 0 means every page.
	Limit int
}

// Walk pages through the feed until the listing is exhausted, Limit posts
// were seen or ctx is done. Only listing errors and cancellation end a walk
// early; anything that goes wrong with a single image is logged and skipped.
func (w *Walker) Walk(ctx context.Context, name string) (Stats, error) {
	log := w.Logger
	if log == nil {
		log = zap.NewNop()
	}
	started := time.Now()
	t := newTally(w.Reporter)

	var st Stats
	finish := func(err error) (Stats, error) {
		st.Payloads, st.DecodeFailures = t.counts()
		st.Elapsed = time.Since(started)
		return st, err
	}

	after := ""
	for {
		if err := ctx.Err(); err != nil {
			return finish(err)
		}

		posts, page, err := w.Provider.TopPosts(ctx, name, w.Window, after)
		if err != nil {
			return finish(fmt.Errorf("cannot list %s: %w", name, err))
		}
		log.Debug("Fetched listing page", zap.String("feed", name), zap.String("after", after), zap.Int("posts", len(posts)))

		for _, p := range posts {
			if w.Limit > 0 && st.Posts >= w.Limit {
				return finish(nil)
			}
			st.Posts++
			if err := w.visit(ctx, log, p, t, &st); err != nil {
				return finish(err)
			}
		}

		if w.Limit > 0 && st.Posts >= w.Limit {
			return finish(nil)
		}
		if !page.HasNextPage || page.After == "" || len(posts) == 0 {
			return finish(nil)
		}
		after = page.After
	}
}

func (w *Walker) visit(ctx context.Context, log *zap.Logger, p feed.Post, r qr.Reporter, st *Stats) error {
	route := feed.Classify(p)
	log = log.With(zap.String("post_id", p.ID), zap.Stringer("route", route))

	switch {
	case route.Has(feed.RouteSkip):
		st.Skipped++
		return nil
	case route.Has(feed.RouteUnsupported):
		st.Unsupported++
		log.Debug("Unsupported post url", zap.String("url", p.URL), zap.String("ext", utils.ExtFromURL(p.URL)))
		return nil
	}

	if route.Has(feed.RouteImage) {
		if err := w.scanURL(ctx, log, p.URL, r, st); err != nil {
			return err
		}
	}
	if route.Has(feed.RouteGallery) {
		if err := w.scanGallery(ctx, log, p, r, st); err != nil {
			return err
		}
	}
	return nil
}

// scanURL only returns an error when ctx is done.
func (w *Walker) scanURL(ctx context.Context, log *zap.Logger, url string, r qr.Reporter, st *Stats) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := w.Fetcher.Fetch(ctx, url)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		st.FetchFailures++
		log.Debug("Skipping image", zap.String("url", url), zap.Error(err))
		return nil
	}

	st.Images++
	w.Scanner.Scan(data, r)
	return nil
}

func (w *Walker) scanGallery(ctx context.Context, log *zap.Logger, p feed.Post, r qr.Reporter, st *Stats) error {
	id := utils.LastPathSegment(p.URL)
	if id == "" {
		st.GalleryFailures++
		log.Warn("Skipping gallery", zap.String("url", p.URL), zap.Error(ErrNoGallery))
		return nil
	}

	full, err := w.Provider.Submission(ctx, id)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		st.GalleryFailures++
		log.Warn("Skipping gallery", zap.String("gallery_id", id), zap.Error(err))
		return nil
	}

	res := full.GalleryImages()
	for _, s := range res.Skipped {
		log.Warn("Skipping gallery item", zap.String("gallery_id", id), zap.String("media_id", s.MediaID), zap.String("reason", s.Reason))
	}
	log.Debug("Resolved gallery", zap.String("gallery_id", id), zap.Int("images", len(res.URLs)))

	for _, u := range res.URLs {
		if err := w.scanURL(ctx, log, u, r, st); err != nil {
			return err
		}
	}
	return nil
}
