package reddit

import "github.com/baptistax/qrfeed/internal/feed"

const kindLink = "t3"

type listing struct {
	Kind string `json:"kind"`
	Data struct {
		After    string  `json:"after"`
		Children []thing `json:"children"`
	} `json:"data"`
}

type thing struct {
	Kind string `json:"kind"`
	Data link   `json:"data"`
}

type galleryData struct {
	Items []feed.GalleryItem `json:"items"`
}

type link struct {
	ID            string                          `json:"id"`
	Name          string                          `json:"name"`
	Title         string                          `json:"title"`
	URL           string                          `json:"url"`
	Permalink     string                          `json:"permalink"`
	IsVideo       bool                            `json:"is_video"`
	IsSelf        bool                            `json:"is_self"`
	IsGallery     bool                            `json:"is_gallery"`
	GalleryData   *galleryData                    `json:"gallery_data"`
	MediaMetadata map[string]feed.MediaDescriptor `json:"media_metadata"`
}

func (l link) post() feed.Post {
	p := feed.Post{
		ID:            l.ID,
		Title:         l.Title,
		URL:           l.URL,
		Permalink:     l.Permalink,
		IsVideo:       l.IsVideo,
		IsSelf:        l.IsSelf,
		IsGallery:     l.IsGallery,
		MediaMetadata: l.MediaMetadata,
	}
	if l.GalleryData != nil {
		p.Gallery = l.GalleryData.Items
	}
	return p
}

func (l listing) posts() []feed.Post {
	out := make([]feed.Post, 0, len(l.Data.Children))
	for _, c := range l.Data.Children {
		if c.Kind != kindLink {
			continue
		}
		out = append(out, c.Data.post())
	}
	return out
}
