package fastparser

import (
	"errors"
	"fmt"
)

// ErrorKind identifies which grammar rule or limit a request head violated.
// The set is closed.
type ErrorKind uint8

const (
	// KindHeaderName: empty header name, or a byte outside the token class.
	KindHeaderName ErrorKind = iota + 1
	// KindHeaderValue: a control byte other than HTAB inside a header value.
	KindHeaderValue
	// KindNewLine: a line terminator other than CRLF.
	KindNewLine
	// KindStatus is reserved for status-line parsing and is never produced
	// by the request scanner.
	KindStatus
	// KindToken: invalid method token or request-target.
	KindToken
	// KindTooManyHeaders: more header fields than the configured maximum.
	KindTooManyHeaders
	// KindVersion: anything other than HTTP/1.0 or HTTP/1.1.
	KindVersion
	// KindChunkSize is reserved for a chunked body decoder and is never
	// produced by the request scanner. It is not a parsing error in the
	// ErrParsing sense.
	KindChunkSize
)

var kindText = [...]string{
	KindHeaderName:     "invalid header name",
	KindHeaderValue:    "invalid header value",
	KindNewLine:        "invalid byte in new line",
	KindStatus:         "invalid response status",
	KindToken:          "invalid token",
	KindTooManyHeaders: "too many headers",
	KindVersion:        "invalid HTTP version",
	KindChunkSize:      "invalid chunk size",
}

// String returns a short human-readable description of the kind.
func (k ErrorKind) String() string {
	if k == 0 || int(k) >= len(kindText) {
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
	return kindText[k]
}

// ErrParsing matches every ParseError produced while scanning a message,
// whatever its kind. KindChunkSize errors do not match it.
var ErrParsing = errors.New("httparse: parsing error")

// ParseError is returned when the request head is malformed or exceeds a
// configured limit.
type ParseError struct {
	Kind   ErrorKind
	Offset int // index of the offending byte in the input buffer
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("httparse: %s at offset %d", e.Kind, e.Offset)
}

// IsParsing reports whether e belongs to the parsing-error family.
func (e *ParseError) IsParsing() bool {
	return e.Kind != KindChunkSize
}

// Is lets errors.Is match e against ErrParsing or against any *ParseError of
// the same kind, regardless of offset.
func (e *ParseError) Is(target error) bool {
	if target == ErrParsing {
		return e.IsParsing()
	}
	t, ok := target.(*ParseError)
	return ok && t != nil && t.Kind == e.Kind
}

func newError(kind ErrorKind, offset int) *ParseError {
	return &ParseError{Kind: kind, Offset: offset}
}
