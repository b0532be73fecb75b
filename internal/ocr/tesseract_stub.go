//go:build !tesseract

package ocr

// This file provides a no-CGO stub for the Tesseract engine. It is compiled
// when the 'tesseract' build tag is NOT set, keeping default builds and CI
// CGO-free. The real engine lives in tesseract.go (tagged 'tesseract').

import "errors"

var errNotBuilt = errors.New("tesseract support not built (missing 'tesseract' build tag)")

type stubEngine struct{}

// New constructs a stub engine that refuses to initialize.
func New() Engine { return stubEngine{} }

func (stubEngine) Init(dataPath, model string) error { return errNotBuilt }

func (stubEngine) SetImage(pix []byte, width, height, bytesPerPixel, bytesPerLine int) error {
	return errNotBuilt
}

func (stubEngine) Text() (string, error) { return "", errNotBuilt }

func (stubEngine) Close() error { return nil }
