// Package httparse provides an incremental, zero-copy parser for HTTP/1.x
// request heads.
//
// A parse either completes, reports that more bytes are needed, or fails with
// a *ParseError naming the violated rule:
//
//	var req httparse.Request
//	st, err := httparse.Parse(buf, &req)
//	switch {
//	case err != nil:
//		// reject: errors.Is(err, httparse.ErrTooManyHeaders), ...
//	case st == httparse.Incomplete:
//		// read more bytes, then call Parse again on the whole buffer
//	default:
//		body := buf[req.BodyStart:]
//	}
//
// # Zero copy
//
// Method, Path and every header Name and Value are sub-slices of buf. They
// stay valid only while the caller keeps buf unchanged. Use the interning
// helpers (MethodString, HeaderName) or copy the bytes when a value has to
// outlive the buffer.
//
// # Thread Safety
//
// Parse and (*Parser).Parse hold no state between calls and are safe for
// concurrent use, provided each call gets its own *Request. A Decoder is
// bound to one reader and is not safe for concurrent use.
package httparse

import "github.com/shapestone/shape-httparse/internal/fastparser"

// Request is a parsed request line and header block. See the package
// documentation for the lifetime of its slices.
type Request = fastparser.Request

// Header is a single header field aliasing the parsed buffer.
type Header = fastparser.Header

// Headers is an ordered, repeatable list of header fields with
// case-insensitive lookup helpers.
type Headers = fastparser.Headers

// Status reports whether a parse saw the whole head.
type Status = fastparser.Status

const (
	// Incomplete: valid so far, more bytes are needed.
	Incomplete = fastparser.Incomplete
	// Complete: the head and its terminating blank line were parsed.
	Complete = fastparser.Complete
)

// Proto returns the protocol string for a parsed minor version.
func Proto(version uint8) string {
	if version == 0 {
		return "HTTP/1.0"
	}
	return "HTTP/1.1"
}
