package service

import (
	"errors"
	"testing"
)

func TestTaxonomyPredicatesAreDisjoint(t *testing.T) {
	inv := ErrInvalidRequest("bad input")
	internal := ErrInternal("engine exploded")
	body := ErrInvalidBody(BodyBadSyntax)

	if !IsInvalidRequest(inv) || IsInternal(inv) || IsInvalidBody(inv) {
		t.Fatalf("invalid request misclassified")
	}
	if !IsInternal(internal) || IsInvalidRequest(internal) || IsInvalidBody(internal) {
		t.Fatalf("internal error misclassified")
	}
	if !IsInvalidBody(body) || IsInvalidRequest(body) || IsInternal(body) {
		t.Fatalf("body error misclassified")
	}
	if IsInvalidRequest(errors.New("plain")) || IsInternal(errors.New("plain")) {
		t.Fatalf("plain errors must not match the taxonomy")
	}
}

func TestBodyErrorMessages(t *testing.T) {
	cases := map[BodyErrorKind]string{
		BodyBadData:            "Invalid JSON data",
		BodyBadSyntax:          "Invalid JSON syntax",
		BodyMissingContentType: "Missing 'Content-Type: application/json' header",
		BodyBuffering:          "Failed to buffer request body",
	}
	for kind, want := range cases {
		if got := ErrInvalidBody(kind).Error(); got != want {
			t.Fatalf("kind %d: expected %q, got %q", kind, want, got)
		}
	}
}
