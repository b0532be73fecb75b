package service

// The three request-level error kinds. Every failure leaving this package is
// one of these; no engine or I/O error type crosses the boundary raw.

// BodyErrorKind enumerates malformed structured-input failures at the
// transport boundary.
type BodyErrorKind int

const (
	BodyBadData BodyErrorKind = iota
	BodyBadSyntax
	BodyMissingContentType
	BodyBuffering
)

type invalidBodyError struct{ kind BodyErrorKind }

func (e invalidBodyError) Error() string {
	switch e.kind {
	case BodyBadData:
		return "Invalid JSON data"
	case BodyBadSyntax:
		return "Invalid JSON syntax"
	case BodyMissingContentType:
		return "Missing 'Content-Type: application/json' header"
	default:
		return "Failed to buffer request body"
	}
}

// ErrInvalidBody constructs a malformed-body error for the given subkind.
func ErrInvalidBody(kind BodyErrorKind) error { return invalidBodyError{kind: kind} }

// IsInvalidBody reports whether err is a malformed-body failure (client fault).
func IsInvalidBody(err error) bool {
	_, ok := err.(invalidBodyError)
	return ok
}

type invalidRequestError struct{ msg string }

func (e invalidRequestError) Error() string { return e.msg }

// ErrInvalidRequest constructs a client-correctable validation failure. The
// message is shown verbatim to the caller.
func ErrInvalidRequest(msg string) error { return invalidRequestError{msg: msg} }

// IsInvalidRequest reports whether err is attributable to the caller's input.
func IsInvalidRequest(err error) bool {
	_, ok := err.(invalidRequestError)
	return ok
}

type internalError struct{ msg string }

func (e internalError) Error() string { return e.msg }

// ErrInternal constructs a server-side failure. The detailed message is logged
// but never shown to the caller.
func ErrInternal(msg string) error { return internalError{msg: msg} }

// IsInternal reports whether err is a server-side failure (return 500).
func IsInternal(err error) bool {
	_, ok := err.(internalError)
	return ok
}
