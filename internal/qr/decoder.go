package qr

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"
	"unicode/utf8"

	"github.com/makiuchi-d/gozxing"
	multiqr "github.com/makiuchi-d/gozxing/multi/qrcode"
	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DefaultMaxPixels is the usual decompression-bomb threshold. Images above
// it are decoded (optionally with a warning); images above twice it are
// rejected.
const DefaultMaxPixels = 89478485

var (
	ErrImageTooLarge = errors.New("image exceeds pixel limit")
	ErrInvalidUTF8   = errors.New("qr payload is not valid UTF-8")
)

// Reporter receives the outcome of a scan as it happens.
type Reporter interface {
	Payload(text string)
	Failure(err error)
}

type Options struct {
	MaxPixels       int
	WarnLargeImages bool
	Logger          *zap.Logger
}

type Decoder struct {
	maxPixels int
	warnLarge bool
	logger    *zap.Logger
	hints     map[gozxing.DecodeHintType]interface{}
}

func New(opts Options) *Decoder {
	if opts.MaxPixels == 0 {
		opts.MaxPixels = DefaultMaxPixels
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Decoder{
		maxPixels: opts.MaxPixels,
		warnLarge: opts.WarnLargeImages,
		logger:    opts.Logger,
		hints: map[gozxing.DecodeHintType]interface{}{
			gozxing.DecodeHintType_POSSIBLE_FORMATS: []gozxing.BarcodeFormat{gozxing.BarcodeFormat_QR_CODE},
			gozxing.DecodeHintType_CHARACTER_SET:    "UTF-8",
		},
	}
}

// Scan decodes every QR code in data and reports each payload in detection
// order. Failures go to r.Failure; Scan itself never fails.
func (d *Decoder) Scan(data []byte, r Reporter) {
	defer func() {
		if v := recover(); v != nil {
			r.Failure(fmt.Errorf("qr detector panicked: %v", v))
		}
	}()

	gray, err := d.load(data)
	if err != nil {
		r.Failure(err)
		return
	}

	results, err := d.detect(gray)
	if err != nil {
		r.Failure(err)
		return
	}

	for _, res := range results {
		text, err := payloadText(res)
		if err != nil {
			r.Failure(err)
			continue
		}
		r.Payload(text)
	}
}

// Decode is Scan with the results collected.
func (d *Decoder) Decode(data []byte) ([]string, error) {
	var c collector
	d.Scan(data, &c)
	return c.payloads, errors.Join(c.errs...)
}

func (d *Decoder) load(data []byte) (*image.Gray, error) {
	if len(data) == 0 {
		return nil, errors.New("cannot identify image: empty input")
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot identify image: %w", err)
	}

	pixels := cfg.Width * cfg.Height
	if d.maxPixels > 0 && pixels > d.maxPixels {
		if pixels > 2*d.maxPixels {
			return nil, fmt.Errorf("%w: %dx%d is more than twice the limit of %d pixels", ErrImageTooLarge, cfg.Width, cfg.Height, d.maxPixels)
		}
		if d.warnLarge {
			d.logger.Warn("image exceeds pixel limit, could be a decompression bomb",
				zap.Int("width", cfg.Width),
				zap.Int("height", cfg.Height),
				zap.Int("limit", d.maxPixels))
		}
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s image: %w", format, err)
	}
	return toGray(img), nil
}

func toGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	b := img.Bounds()
	g := image.NewGray(b)
	draw.Draw(g, b, img, b.Min, draw.Src)
	return g
}

func (d *Decoder) detect(img image.Image) ([]*gozxing.Result, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return nil, fmt.Errorf("prepare bitmap: %w", err)
	}

	results, err := multiqr.NewQRCodeMultiReader().DecodeMultiple(bmp, d.hints)
	if err != nil {
		var nf gozxing.NotFoundException
		if errors.As(err, &nf) {
			return nil, nil
		}
		return nil, fmt.Errorf("detect qr codes: %w", err)
	}
	return results, nil
}

// payloadText rejects payloads whose byte segments are not UTF-8. A
// replacement character in the text is taken as a sign the reader had to
// patch invalid bytes.
func payloadText(res *gozxing.Result) (string, error) {
	if segs, ok := res.GetResultMetadata()[gozxing.ResultMetadataType_BYTE_SEGMENTS].([][]byte); ok {
		for _, s := range segs {
			if !utf8.Valid(s) {
				return "", ErrInvalidUTF8
			}
		}
	}

	text := res.GetText()
	if !utf8.ValidString(text) || strings.ContainsRune(text, utf8.RuneError) {
		return "", ErrInvalidUTF8
	}
	return text, nil
}

type collector struct {
	payloads []string
	errs     []error
}

func (c *collector) Payload(text string) { c.payloads = append(c.payloads, text) }
func (c *collector) Failure(err error)   { c.errs = append(c.errs, err) }
