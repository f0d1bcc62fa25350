package feed

import (
	"strings"

	"github.com/baptistax/qrfeed/internal/utils"
)

// Route is a set of processing branches for a post. RouteImage and
// RouteGallery may both be set; they are handled independently.
type Route uint8

const (
	RouteSkip Route = 1 << iota
	RouteImage
	RouteGallery
	RouteUnsupported
)

func (r Route) Has(f Route) bool {
	return r&f != 0
}

func (r Route) String() string {
	var parts []string
	if r.Has(RouteSkip) {
		parts = append(parts, "skip")
	}
	if r.Has(RouteImage) {
		parts = append(parts, "image")
	}
	if r.Has(RouteGallery) {
		parts = append(parts, "gallery")
	}
	if r.Has(RouteUnsupported) {
		parts = append(parts, "unsupported")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}

func Classify(p Post) Route {
	if p.IsVideo || p.IsSelf {
		return RouteSkip
	}

	var r Route
	if utils.HasImageSuffix(p.URL) {
		r |= RouteImage
	}
	if strings.Contains(p.URL, "gallery") {
		r |= RouteGallery
	}
	if r == 0 {
		return RouteUnsupported
	}
	return r
}
