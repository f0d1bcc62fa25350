package feed

import (
	"reflect"
	"testing"
)

func imageMedia(u string) MediaDescriptor {
	return MediaDescriptor{Status: "valid", Kind: KindImage, Source: &MediaSource{URL: u}}
}

func TestResolveGallery_KeepsImagesInItemOrder(t *testing.T) {
	items := []GalleryItem{{MediaID: "A"}, {MediaID: "B"}, {MediaID: "C"}}
	meta := map[string]MediaDescriptor{
		"A": imageMedia("https://i.redd.it/a.jpg"),
		"B": {Status: "valid", Kind: "RedditVideo"},
		"C": imageMedia("https://i.redd.it/c.png"),
	}

	res := ResolveGallery(items, meta)

	want := []string{"https://i.redd.it/a.jpg", "https://i.redd.it/c.png"}
	if !reflect.DeepEqual(res.URLs, want) {
		t.Fatalf("unexpected urls: got %v want %v", res.URLs, want)
	}
	if len(res.Skipped) != 0 {
		t.Fatalf("non-image kinds must not be reported as skipped: %+v", res.Skipped)
	}
}

func TestResolveGallery_EmptyItems(t *testing.T) {
	res := ResolveGallery(nil, nil)
	if len(res.URLs) != 0 || len(res.Skipped) != 0 {
		t.Fatalf("expected empty resolution, got %+v", res)
	}
}

func TestResolveGallery_SkipsUnresolvableItems(t *testing.T) {
	items := []GalleryItem{{MediaID: "missing"}, {MediaID: "nosrc"}, {MediaID: ""}, {MediaID: "ok"}}
	meta := map[string]MediaDescriptor{
		"nosrc": {Status: "valid", Kind: KindImage},
		"ok":    imageMedia("https://i.redd.it/ok.jpg"),
	}

	res := ResolveGallery(items, meta)

	if !reflect.DeepEqual(res.URLs, []string{"https://i.redd.it/ok.jpg"}) {
		t.Fatalf("unexpected urls: %v", res.URLs)
	}
	if len(res.Skipped) != 3 {
		t.Fatalf("expected 3 skipped items, got %+v", res.Skipped)
	}
	if res.Skipped[0].MediaID != "missing" || res.Skipped[1].MediaID != "nosrc" {
		t.Fatalf("unexpected skipped order: %+v", res.Skipped)
	}
}

func TestPostGalleryImages(t *testing.T) {
	p := Post{
		Gallery:       []GalleryItem{{MediaID: "x"}},
		MediaMetadata: map[string]MediaDescriptor{"x": imageMedia("https://i.redd.it/x.jpg")},
	}
	if got := p.GalleryImages().URLs; len(got) != 1 || got[0] != "https://i.redd.it/x.jpg" {
		t.Fatalf("unexpected urls: %v", got)
	}
}
