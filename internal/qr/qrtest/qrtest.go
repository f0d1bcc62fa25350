// Package qrtest renders QR fixtures for tests.
package qrtest

import (
	"bytes"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
)

const (
	moduleSize = 8
	quietZone  = 8 * moduleSize
)

// Image renders one QR code per text, left to right on a white canvas.
// Each code gets a quiet zone and codes are spaced well apart so a multi
// detector cannot pair finder patterns across codes.
func Image(tb testing.TB, texts ...string) image.Image {
	tb.Helper()

	codes := make([]barcode.Barcode, 0, len(texts))
	width, height := quietZone, 2*quietZone
	for _, text := range texts {
		code, err := qr.Encode(text, qr.M, qr.Auto)
		if err != nil {
			tb.Fatalf("encode %q: %v", text, err)
		}
		side := code.Bounds().Dx() * moduleSize
		scaled, err := barcode.Scale(code, side, side)
		if err != nil {
			tb.Fatalf("scale %q: %v", text, err)
		}
		codes = append(codes, scaled)
		width += side + 2*quietZone
		if h := side + 2*quietZone; h > height {
			height = h
		}
	}

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)

	x := quietZone
	for _, c := range codes {
		b := c.Bounds()
		draw.Draw(canvas, image.Rect(x, quietZone, x+b.Dx(), quietZone+b.Dy()), c, b.Min, draw.Src)
		x += b.Dx() + 2*quietZone
	}
	return canvas
}

func PNG(tb testing.TB, texts ...string) []byte {
	tb.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, Image(tb, texts...)); err != nil {
		tb.Fatalf("png encode: %v", err)
	}
	return buf.Bytes()
}

func JPEG(tb testing.TB, texts ...string) []byte {
	tb.Helper()
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, Image(tb, texts...), &jpeg.Options{Quality: 95}); err != nil {
		tb.Fatalf("jpeg encode: %v", err)
	}
	return buf.Bytes()
}
