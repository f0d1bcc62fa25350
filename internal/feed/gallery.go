package feed

import "strings"

const KindImage = "Image"

type SkippedItem struct {
	MediaID string
	Reason  string
}

type Resolution struct {
	URLs    []string
	Skipped []SkippedItem
}

// ResolveGallery returns the source URLs of the image items of a gallery, in
// item order. Non-image kinds are dropped silently; items that cannot be
// resolved are listed in Skipped.
func ResolveGallery(items []GalleryItem, meta map[string]MediaDescriptor) Resolution {
	res := Resolution{URLs: make([]string, 0, len(items))}

	for _, it := range items {
		id := strings.TrimSpace(it.MediaID)
		if id == "" {
			res.Skipped = append(res.Skipped, SkippedItem{Reason: "item has no media id"})
			continue
		}

		d, ok := meta[id]
		if !ok {
			res.Skipped = append(res.Skipped, SkippedItem{MediaID: id, Reason: "no media metadata"})
			continue
		}
		if d.Kind != KindImage {
			continue
		}

		u := ""
		if d.Source != nil {
			u = strings.TrimSpace(d.Source.URL)
		}
		if u == "" {
			res.Skipped = append(res.Skipped, SkippedItem{MediaID: id, Reason: "image has no source url"})
			continue
		}
		res.URLs = append(res.URLs, u)
	}

	return res
}

func (p Post) GalleryImages() Resolution {
	return ResolveGallery(p.Gallery, p.MediaMetadata)
}
