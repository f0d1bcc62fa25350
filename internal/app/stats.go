package app

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/baptistax/qrfeed/internal/qr"
)

// Stats counts what a single walk did.
type Stats struct {
	Posts           int
	Skipped         int
	Unsupported     int
	Images          int
	FetchFailures   int
	GalleryFailures int
	Payloads        int
	DecodeFailures  int
	Elapsed         time.Duration
}

func (s Stats) Fields() []zap.Field {
	return []zap.Field{
		zap.Int("posts", s.Posts),
		zap.Int("skipped", s.Skipped),
		zap.Int("unsupported", s.Unsupported),
		zap.Int("images", s.Images),
		zap.Int("fetch_failures", s.FetchFailures),
		zap.Int("gallery_failures", s.GalleryFailures),
		zap.Int("payloads", s.Payloads),
		zap.Int("decode_failures", s.DecodeFailures),
		zap.Duration("elapsed", s.Elapsed),
	}
}

// tally sits between the decoder and the console and counts what passes.
type tally struct {
	next qr.Reporter

	mu       sync.Mutex
	payloads int
	failures int
}

func newTally(next qr.Reporter) *tally {
	return &tally{next: next}
}

func (t *tally) Payload(text string) {
	t.mu.Lock()
	t.payloads++
	t.mu.Unlock()
	t.next.Payload(text)
}

func (t *tally) Failure(err error) {
	t.mu.Lock()
	t.failures++
	t.mu.Unlock()
	t.next.Failure(err)
}

func (t *tally) counts() (payloads, failures int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.payloads, t.failures
}
