//go:build !tesseract

package ocr

import "testing"

func TestStubFailsFastOnInit(t *testing.T) {
	e := New()
	defer e.Close()
	if err := e.Init("/tessdata", "eng"); err == nil {
		t.Fatal("expected stub Init to fail")
	}
	if err := e.SetImage(nil, 0, 0, 3, 0); err == nil {
		t.Fatal("expected stub SetImage to fail")
	}
	if _, err := e.Text(); err == nil {
		t.Fatal("expected stub Text to fail")
	}
	if err := e.Close(); err != nil {
		t.Fatalf("stub Close: %v", err)
	}
}
