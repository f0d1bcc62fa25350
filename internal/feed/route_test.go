package feed

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		post Post
		want Route
	}{
		{"self post", Post{IsSelf: true, URL: "https://www.reddit.com/r/lego/comments/a/x/"}, RouteSkip},
		{"video with image url", Post{IsVideo: true, URL: "https://v.redd.it/a.png"}, RouteSkip},
		{"jpg", Post{URL: "https://i.redd.it/a.jpg"}, RouteImage},
		{"jpeg", Post{URL: "https://i.redd.it/a.jpeg"}, RouteImage},
		{"png", Post{URL: "https://i.redd.it/a.png"}, RouteImage},
		{"gallery", Post{URL: "https://www.reddit.com/gallery/1abc"}, RouteGallery},
		{"both", Post{URL: "https://example.com/gallery/shot.png"}, RouteImage | RouteGallery},
		{"link", Post{URL: "https://example.com/article"}, RouteUnsupported},
		{"gif", Post{URL: "https://i.redd.it/a.gif"}, RouteUnsupported},
	}

	for _, c := range cases {
		if got := Classify(c.post); got != c.want {
			t.Fatalf("%s: got %v want %v", c.name, got, c.want)
		}
	}
}

func TestRouteString(t *testing.T) {
	if s := (RouteImage | RouteGallery).String(); s != "image+gallery" {
		t.Fatalf("unexpected string: %q", s)
	}
	if s := Route(0).String(); s != "none" {
		t.Fatalf("unexpected string: %q", s)
	}
}

func TestParseTimeWindow(t *testing.T) {
	if w, err := ParseTimeWindow(" Week "); err != nil || w != WindowWeek {
		t.Fatalf("unexpected (%q, %v)", w, err)
	}
	if w, err := ParseTimeWindow(""); err != nil || w != WindowDay {
		t.Fatalf("empty window should default to day, got (%q, %v)", w, err)
	}
	if _, err := ParseTimeWindow("fortnight"); err == nil {
		t.Fatalf("expected error for unknown window")
	}
}
