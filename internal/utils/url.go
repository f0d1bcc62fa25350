package utils

import (
	"net/url"
	"path"
	"strings"
)

var imageSuffixes = []string{".jpg", ".jpeg", ".png"}

// HasImageSuffix reports whether raw ends with a directly fetchable image
// extension. The check is on the raw string, so a query string defeats it.
func HasImageSuffix(raw string) bool {
	for _, s := range imageSuffixes {
		if strings.HasSuffix(raw, s) {
			return true
		}
	}
	return false
}

// LastPathSegment returns everything after the final '/' of raw.
func LastPathSegment(raw string) string {
	raw = strings.TrimSpace(raw)
	if i := strings.LastIndex(raw, "/"); i >= 0 {
		return raw[i+1:]
	}
	return raw
}

func ExtFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	ext := path.Ext(u.Path)
	if ext == "" {
		return ""
	}
	if len(ext) > 10 {
		return ""
	}
	return strings.ToLower(ext)
}
