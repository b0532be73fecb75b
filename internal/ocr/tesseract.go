//go:build tesseract

package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/otiai10/gosseract/v2"
)

// tesseractEngine is the Tesseract-backed engine built on gosseract. It needs
// libtesseract and libleptonica installed on the host.
type tesseractEngine struct {
	client *gosseract.Client
}

// New constructs a Tesseract engine handle.
func New() Engine { return &tesseractEngine{} }

func (e *tesseractEngine) Init(dataPath, model string) error {
	c := gosseract.NewClient()
	if err := c.SetTessdataPrefix(dataPath); err != nil {
		c.Close()
		return fmt.Errorf("set tessdata prefix: %w", err)
	}
	if err := c.SetLanguage(model); err != nil {
		c.Close()
		return fmt.Errorf("set language %s: %w", model, err)
	}
	e.client = c
	return nil
}

func (e *tesseractEngine) SetImage(pix []byte, width, height, bytesPerPixel, bytesPerLine int) error {
	if e.client == nil {
		return fmt.Errorf("engine not initialized")
	}
	if bytesPerPixel != 3 {
		return fmt.Errorf("unsupported bytes per pixel: %d", bytesPerPixel)
	}
	if len(pix) < height*bytesPerLine {
		return fmt.Errorf("pixel buffer too short: %d < %d", len(pix), height*bytesPerLine)
	}
	// gosseract only accepts encoded images, so wrap the raw RGB buffer into
	// a lossless PNG before handing it over.
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		src := y * bytesPerLine
		dst := y * img.Stride
		for x := 0; x < width; x++ {
			img.Pix[dst+x*4+0] = pix[src+x*3+0]
			img.Pix[dst+x*4+1] = pix[src+x*3+1]
			img.Pix[dst+x*4+2] = pix[src+x*3+2]
			img.Pix[dst+x*4+3] = 0xff
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode image: %w", err)
	}
	if err := e.client.SetImageFromBytes(buf.Bytes()); err != nil {
		return fmt.Errorf("set image: %w", err)
	}
	return nil
}

func (e *tesseractEngine) Text() (string, error) {
	if e.client == nil {
		return "", fmt.Errorf("engine not initialized")
	}
	return e.client.Text()
}

func (e *tesseractEngine) Close() error {
	if e.client == nil {
		return nil
	}
	return e.client.Close()
}
