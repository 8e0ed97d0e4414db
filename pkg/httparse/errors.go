package httparse

import (
	"errors"

	"github.com/shapestone/shape-httparse/internal/fastparser"
)

// ParseError is returned when a request head breaks the HTTP/1.x grammar or a
// configured limit. Its Kind is one of the Kind* constants and Offset is the
// index of the offending byte.
type ParseError = fastparser.ParseError

// ErrorKind enumerates the closed set of parse failures.
type ErrorKind = fastparser.ErrorKind

const (
	KindHeaderName     = fastparser.KindHeaderName
	KindHeaderValue    = fastparser.KindHeaderValue
	KindNewLine        = fastparser.KindNewLine
	KindStatus         = fastparser.KindStatus
	KindToken          = fastparser.KindToken
	KindTooManyHeaders = fastparser.KindTooManyHeaders
	KindVersion        = fastparser.KindVersion
	KindChunkSize      = fastparser.KindChunkSize
)

// ErrParsing matches, through errors.Is, every parse failure except
// ErrInvalidChunkSize.
var ErrParsing = fastparser.ErrParsing

// Sentinels for errors.Is. A *ParseError matches the sentinel of its kind
// whatever its offset.
var (
	ErrInvalidHeaderName  = &ParseError{Kind: KindHeaderName}
	ErrInvalidHeaderValue = &ParseError{Kind: KindHeaderValue}
	ErrInvalidNewLine     = &ParseError{Kind: KindNewLine}
	ErrInvalidToken       = &ParseError{Kind: KindToken}
	ErrTooManyHeaders     = &ParseError{Kind: KindTooManyHeaders}
	ErrInvalidVersion     = &ParseError{Kind: KindVersion}

	// ErrInvalidStatus and ErrInvalidChunkSize belong to status-line parsing
	// and chunked body decoding. Parse never returns them; they are declared
	// so that callers sharing this taxonomy can match them.
	ErrInvalidStatus    = &ParseError{Kind: KindStatus}
	ErrInvalidChunkSize = &ParseError{Kind: KindChunkSize}
)

// ErrHeadTooLarge is returned by a Decoder when a request head is longer
// than its size limit.
var ErrHeadTooLarge = errors.New("httparse: request head too large")

// ErrBodyTooLarge is returned by Decoder.Body for lengths past the body
// size limit.
var ErrBodyTooLarge = errors.New("httparse: request body too large")

// KindOf returns the kind of the first *ParseError in err's chain, or 0.
func KindOf(err error) ErrorKind {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return 0
}
