package qr

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"sort"
	"testing"

	"github.com/baptistax/qrfeed/internal/qr/qrtest"
	"github.com/makiuchi-d/gozxing"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type recorder struct {
	payloads []string
	failures []error
}

func (r *recorder) Payload(text string) { r.payloads = append(r.payloads, text) }
func (r *recorder) Failure(err error)   { r.failures = append(r.failures, err) }

func blankPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png encode: %v", err)
	}
	return buf.Bytes()
}

func TestScan_SingleCode(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{"png", qrtest.PNG(t, "https://example.com/lego?set=42")},
		{"jpeg", qrtest.JPEG(t, "https://example.com/lego?set=42")},
	}

	for _, c := range cases {
		var r recorder
		New(Options{}).Scan(c.data, &r)

		if len(r.failures) != 0 {
			t.Fatalf("%s: unexpected failures: %v", c.name, r.failures)
		}
		if len(r.payloads) != 1 || r.payloads[0] != "https://example.com/lego?set=42" {
			t.Fatalf("%s: unexpected payloads: %q", c.name, r.payloads)
		}
	}
}

func TestScan_UnicodePayload(t *testing.T) {
	var r recorder
	New(Options{}).Scan(qrtest.PNG(t, "héllo wörld ✓"), &r)

	if len(r.failures) != 0 || len(r.payloads) != 1 || r.payloads[0] != "héllo wörld ✓" {
		t.Fatalf("unexpected result: payloads=%q failures=%v", r.payloads, r.failures)
	}
}

func TestScan_NoCode(t *testing.T) {
	var r recorder
	New(Options{}).Scan(blankPNG(t, 320, 240), &r)

	if len(r.payloads) != 0 || len(r.failures) != 0 {
		t.Fatalf("expected nothing reported, got payloads=%q failures=%v", r.payloads, r.failures)
	}
}

func TestScan_TwoCodes(t *testing.T) {
	var r recorder
	New(Options{}).Scan(qrtest.PNG(t, "first", "second"), &r)

	if len(r.failures) != 0 {
		t.Fatalf("unexpected failures: %v", r.failures)
	}
	got := append([]string(nil), r.payloads...)
	sort.Strings(got)
	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Fatalf("unexpected payloads: %q", r.payloads)
	}
}

func TestScan_MalformedInput(t *testing.T) {
	inputs := map[string][]byte{
		"empty":     nil,
		"text":      []byte("definitely not an image"),
		"truncated": qrtest.PNG(t, "cut")[:64],
	}

	for name, data := range inputs {
		var r recorder
		New(Options{}).Scan(data, &r)

		if len(r.payloads) != 0 {
			t.Fatalf("%s: unexpected payloads: %q", name, r.payloads)
		}
		if len(r.failures) != 1 {
			t.Fatalf("%s: expected exactly one failure, got %v", name, r.failures)
		}
	}
}

func TestScan_RejectsImagesFarAboveLimit(t *testing.T) {
	var r recorder
	New(Options{MaxPixels: 100}).Scan(blankPNG(t, 30, 30), &r)

	if len(r.failures) != 1 || !errors.Is(r.failures[0], ErrImageTooLarge) {
		t.Fatalf("expected ErrImageTooLarge, got %v", r.failures)
	}
}

func TestScan_LargeImageWarningToggle(t *testing.T) {
	data := blankPNG(t, 15, 10)

	for _, warn := range []bool{false, true} {
		core, logs := observer.New(zap.WarnLevel)
		var r recorder
		New(Options{MaxPixels: 100, WarnLargeImages: warn, Logger: zap.New(core)}).Scan(data, &r)

		if len(r.failures) != 0 {
			t.Fatalf("warn=%v: image under twice the limit must be decoded, got %v", warn, r.failures)
		}
		want := 0
		if warn {
			want = 1
		}
		if logs.Len() != want {
			t.Fatalf("warn=%v: expected %d warnings, got %d", warn, want, logs.Len())
		}
	}
}

func TestDecode_CollectsPayloadsAndErrors(t *testing.T) {
	d := New(Options{})

	payloads, err := d.Decode(qrtest.PNG(t, "collected"))
	if err != nil || len(payloads) != 1 || payloads[0] != "collected" {
		t.Fatalf("unexpected (%q, %v)", payloads, err)
	}

	payloads, err = d.Decode([]byte{0x00, 0x01})
	if err == nil || len(payloads) != 0 {
		t.Fatalf("expected error for garbage input, got (%q, %v)", payloads, err)
	}
}

func TestPayloadText(t *testing.T) {
	ok := gozxing.NewResult("plain", nil, nil, gozxing.BarcodeFormat_QR_CODE)
	ok.PutMetadata(gozxing.ResultMetadataType_BYTE_SEGMENTS, [][]byte{[]byte("plain")})
	if got, err := payloadText(ok); err != nil || got != "plain" {
		t.Fatalf("unexpected (%q, %v)", got, err)
	}

	badSegment := gozxing.NewResult("??", nil, nil, gozxing.BarcodeFormat_QR_CODE)
	badSegment.PutMetadata(gozxing.ResultMetadataType_BYTE_SEGMENTS, [][]byte{{0xff, 0xfe}})
	if _, err := payloadText(badSegment); !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8 for invalid segment, got %v", err)
	}

	replaced := gozxing.NewResult("a\uFFFDb", nil, nil, gozxing.BarcodeFormat_QR_CODE)
	if _, err := payloadText(replaced); !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8 for replacement char, got %v", err)
	}
}

func TestToGray(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	src.Set(1, 0, color.RGBA{A: 255})

	g := toGray(src)
	if g.GrayAt(0, 0).Y != 255 || g.GrayAt(1, 0).Y != 0 {
		t.Fatalf("unexpected gray pixels: %v", g.Pix)
	}

	if toGray(g) != g {
		t.Fatalf("gray input should be returned as is")
	}
}
