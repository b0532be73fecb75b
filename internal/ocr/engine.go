// Package ocr wraps the external text-recognition capability behind a small
// engine interface. Each request constructs its own engine handle via New;
// handles are never shared or pooled across requests.
//
// The real Tesseract-backed engine requires CGO and the 'tesseract' build tag.
// Default builds get a stub that fails fast on Init, keeping CI CGO-free.
package ocr

// Engine is one recognition handle. Usage is Init, SetImage, Text, Close,
// strictly in that order, from a single goroutine.
type Engine interface {
	// Init points the engine at the resource root and the model handle
	// (path relative to the root, extension stripped).
	Init(dataPath, model string) error
	// SetImage hands the engine a packed pixel buffer.
	SetImage(pix []byte, width, height, bytesPerPixel, bytesPerLine int) error
	// Text runs recognition and returns the extracted text.
	Text() (string, error)
	Close() error
}

// Factory constructs a fresh engine handle for one request.
type Factory func() Engine
