package feed

import (
	"errors"
	"fmt"
	"strings"
)

var ErrPostNotFound = errors.New("post not found")

// TimeWindow selects the ranking period of a top listing.
type TimeWindow string

const (
	WindowHour  TimeWindow = "hour"
	WindowDay   TimeWindow = "day"
	WindowWeek  TimeWindow = "week"
	WindowMonth TimeWindow = "month"
	WindowYear  TimeWindow = "year"
	WindowAll   TimeWindow = "all"
)

func ParseTimeWindow(s string) (TimeWindow, error) {
	w := TimeWindow(strings.ToLower(strings.TrimSpace(s)))
	switch w {
	case WindowHour, WindowDay, WindowWeek, WindowMonth, WindowYear, WindowAll:
		return w, nil
	case "":
		return WindowDay, nil
	}
	return "", fmt.Errorf("unknown time window %q", s)
}

// Post is a forum submission as seen by the walker. Gallery and
// MediaMetadata are only populated on gallery posts, and usually only when
// the post was fetched individually.
type Post struct {
	ID        string
	Title     string
	URL       string
	Permalink string
	IsVideo   bool
	IsSelf    bool
	IsGallery bool

	Gallery       []GalleryItem
	MediaMetadata map[string]MediaDescriptor
}

type GalleryItem struct {
	ID      int64  `json:"id"`
	MediaID string `json:"media_id"`
	Caption string `json:"caption"`
}

// MediaDescriptor mirrors one media_metadata entry. Kind is the "e" tag
// ("Image", "AnimatedImage", "RedditVideo", ...).
type MediaDescriptor struct {
	Status string       `json:"status"`
	Kind   string       `json:"e"`
	MIME   string       `json:"m"`
	Source *MediaSource `json:"s"`
}

// MediaSource is the full-resolution rendition of a media item.
type MediaSource struct {
	URL    string `json:"u"`
	GIF    string `json:"gif"`
	Width  int    `json:"x"`
	Height int    `json:"y"`
}

type PageInfo struct {
	After       string
	HasNextPage bool
}
