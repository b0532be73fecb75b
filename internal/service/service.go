// Package service implements the per-request OCR pipeline: resolve the target
// model against the catalog, validate and decode the upload, and drive the
// recognition engine. All failures leave as one of the taxonomy kinds in
// errors.go.
package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"io"
	"math"
	"mime/multipart"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/rs/zerolog"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/semaphore"

	"ocrd/internal/catalog"
	"ocrd/internal/ocr"
	"ocrd/pkg/types"
)

// bytesPerPixel is the packed RGB representation handed to the engine.
const bytesPerPixel = 3

// Config carries the service dependencies.
type Config struct {
	// DataPath is the tessdata root passed to engine Init.
	DataPath string
	// DefaultLanguage is used when a request omits the language parameter.
	DefaultLanguage string
	// Engine constructs one recognition handle per request.
	Engine ocr.Factory
	// MaxConcurrentOCR bounds simultaneous recognitions (0 = unlimited).
	MaxConcurrentOCR int64
	Logger           zerolog.Logger
}

// Service owns the read-only catalog and the per-request pipeline. Safe for
// concurrent use; the only shared state is the immutable catalog.
type Service struct {
	catalog         *catalog.Catalog
	dataPath        string
	defaultLanguage string
	newEngine       ocr.Factory
	ocrSem          *semaphore.Weighted
	log             zerolog.Logger
}

// New constructs a Service over an already built catalog.
func New(cat *catalog.Catalog, cfg Config) *Service {
	s := &Service{
		catalog:         cat,
		dataPath:        cfg.DataPath,
		defaultLanguage: cfg.DefaultLanguage,
		newEngine:       cfg.Engine,
		log:             cfg.Logger,
	}
	if s.newEngine == nil {
		s.newEngine = ocr.New
	}
	if cfg.MaxConcurrentOCR > 0 {
		s.ocrSem = semaphore.NewWeighted(cfg.MaxConcurrentOCR)
	}
	return s
}

// Languages returns all installed records sorted by (language, model), the
// unqualified variant first within a language.
func (s *Service) Languages() []types.ModelRecord {
	return s.catalog.Records()
}

// ExtractText runs the OCR pipeline for one uploaded image. mr is the
// request's multipart reader; exactly one file part is consumed. Failures
// short-circuit: nothing past the first failing step runs.
func (s *Service) ExtractText(ctx context.Context, q catalog.Query, mr *multipart.Reader) (string, error) {
	rec, err := catalog.Resolve(q, s.catalog, s.defaultLanguage)
	if err != nil {
		return "", ErrInvalidRequest(err.Error())
	}
	s.log.Debug().Str("language", rec.Language).Str("model", rec.RelativePath).Msg("resolved model")

	part, err := mr.NextPart()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", ErrInvalidRequest("No image file provided")
		}
		return "", ErrInvalidRequest(err.Error())
	}
	defer part.Close()

	contentType := part.Header.Get("Content-Type")
	if contentType == "" {
		return "", ErrInvalidRequest("No content type provided for given file")
	}
	if err := ValidateFileType(contentType); err != nil {
		return "", err
	}

	payload, err := io.ReadAll(part)
	if err != nil {
		return "", ErrInvalidRequest(err.Error())
	}

	// Format is detected from content, not from the declared type.
	img, _, err := image.Decode(bytes.NewReader(payload))
	if err != nil {
		return "", ErrInvalidRequest(err.Error())
	}

	pix, width, height, err := toRGB(img)
	if err != nil {
		return "", err
	}

	if s.ocrSem != nil {
		if err := s.ocrSem.Acquire(ctx, 1); err != nil {
			return "", ErrInternal(err.Error())
		}
		defer s.ocrSem.Release(1)
	}

	engine := s.newEngine()
	defer engine.Close()

	if err := engine.Init(s.dataPath, rec.RelativePath); err != nil {
		return "", ErrInternal("Something went wrong while performing OCR: " + err.Error())
	}
	if err := engine.SetImage(pix, width, height, bytesPerPixel, width*bytesPerPixel); err != nil {
		return "", ErrInternal("Something went wrong while processing the image: " + err.Error())
	}
	// A text-stage failure means the engine could not make sense of this
	// particular image, so it is the caller's fault, not the server's.
	text, err := engine.Text()
	if err != nil {
		return "", ErrInvalidRequest("Something went wrong while extracting the text: " + err.Error())
	}
	return text, nil
}

// toRGB converts a decoded image to a packed 3-bytes-per-pixel buffer and
// validates that the dimensions fit the engine's 32-bit interface.
func toRGB(img image.Image) ([]byte, int, int, error) {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if int64(width)*bytesPerPixel > math.MaxInt32 {
		return nil, 0, 0, ErrInvalidRequest("Image dimensions are too large")
	}
	if int64(width) > math.MaxInt32 {
		return nil, 0, 0, ErrInvalidRequest("Image width is too large")
	}
	if int64(height) > math.MaxInt32 {
		return nil, 0, 0, ErrInvalidRequest("Image height is too large")
	}
	pix := make([]byte, width*height*bytesPerPixel)
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			pix[i+0] = byte(r >> 8)
			pix[i+1] = byte(g >> 8)
			pix[i+2] = byte(bl >> 8)
			i += bytesPerPixel
		}
	}
	return pix, width, height, nil
}
