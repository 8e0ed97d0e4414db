// Package fastparser implements a zero-copy, incremental HTTP/1.x request
// head scanner. It walks the input once, left to right, and reports either a
// complete head, the need for more bytes, or the first grammar violation.
// Every slice it returns points into the caller's buffer.
package fastparser

import "errors"

// Status tells whether a buffer held a whole request head.
type Status uint8

const (
	// Incomplete means the bytes seen so far are valid but the head has not
	// ended yet. Call again with the same bytes plus whatever arrived since.
	Incomplete Status = iota
	// Complete means the head, including its blank line, was parsed.
	Complete
)

func (s Status) String() string {
	if s == Complete {
		return "complete"
	}
	return "incomplete"
}

// Header is a single header field. Name and Value alias the parsed buffer.
type Header struct {
	Name  []byte
	Value []byte
}

// Request is the parsed request line and header block.
//
// All byte slices alias the buffer given to ParseRequest and become invalid
// as soon as that buffer is modified or reused.
type Request struct {
	Method    []byte
	Path      []byte  // raw request-target, not decoded
	Version   uint8   // minor version: 0 for HTTP/1.0, 1 for HTTP/1.1
	Headers   Headers // wire order, duplicates kept
	BodyStart int     // offset just past the terminating blank line
}

// Reset clears r, keeping the header storage for reuse.
func (r *Request) Reset() {
	r.Method = nil
	r.Path = nil
	r.Version = 0
	r.Headers = r.Headers[:0]
	r.BodyStart = 0
}

// Config toggles the leniencies the scanner may apply. The zero value is
// strict.
type Config struct {
	AllowBareLF           bool // accept "\n" wherever "\r\n" is expected
	AllowSpaceBeforeColon bool // accept "Name : value"
	IgnoreInvalidHeaders  bool // skip malformed header lines instead of failing
}

// errIncomplete unwinds the scan when the buffer runs out. It never leaves
// this package.
var errIncomplete = errors.New("fastparser: incomplete")

// Parser holds the cursor for a single scan. It is not reused across calls.
type Parser struct {
	data   []byte
	pos    int
	length int
	cfg    Config
}

// initParser initializes a parser in-place (stack-friendly, avoids heap alloc).
func initParser(p *Parser, data []byte, cfg Config) {
	p.data = data
	p.pos = 0
	p.length = len(data)
	p.cfg = cfg
}

// ParseRequest scans data for a request head and fills req on success.
//
// maxHeaders bounds the number of header fields; negative values count as
// zero. On Incomplete or error req is reset and holds no partial result.
// Header storage already in req.Headers is reused.
func ParseRequest(data []byte, req *Request, maxHeaders int, cfg Config) (Status, error) {
	var p Parser
	initParser(&p, data, cfg)
	if maxHeaders < 0 {
		maxHeaders = 0
	}

	req.Reset()
	err := p.parseRequest(req, maxHeaders)
	if err == nil {
		return Complete, nil
	}
	req.Reset()
	if err == errIncomplete {
		return Incomplete, nil
	}
	return Incomplete, err
}

func (p *Parser) parseRequest(req *Request, maxHeaders int) error {
	if err := p.skipEmptyLines(); err != nil {
		return err
	}

	method, err := p.parseMethod()
	if err != nil {
		return err
	}
	path, err := p.parseTarget()
	if err != nil {
		return err
	}
	version, err := p.parseVersion()
	if err != nil {
		return err
	}

	if err := p.parseHeaders(req, maxHeaders); err != nil {
		return err
	}

	req.Method = method
	req.Path = path
	req.Version = version
	req.BodyStart = p.pos
	return nil
}

// skipEmptyLines drops blank lines in front of the request line
// (RFC 9112 §2.2).
func (p *Parser) skipEmptyLines() error {
	for p.pos < p.length {
		switch p.data[p.pos] {
		case '\r':
			if p.pos+1 >= p.length {
				return errIncomplete
			}
			if p.data[p.pos+1] != '\n' {
				return newError(KindNewLine, p.pos+1)
			}
			p.pos += 2
		case '\n':
			if !p.cfg.AllowBareLF {
				return newError(KindNewLine, p.pos)
			}
			p.pos++
		default:
			return nil
		}
	}
	return errIncomplete
}

// parseMethod consumes "token SP".
func (p *Parser) parseMethod() ([]byte, error) {
	start := p.pos
	for {
		if p.pos >= p.length {
			return nil, errIncomplete
		}
		c := p.data[p.pos]
		if c == ' ' {
			break
		}
		if !isToken(c) {
			return nil, newError(KindToken, p.pos)
		}
		p.pos++
	}
	if p.pos == start {
		return nil, newError(KindToken, p.pos)
	}
	method := p.data[start:p.pos]
	p.pos++
	return method, nil
}

// parseTarget consumes "request-target SP". The target is not decoded.
func (p *Parser) parseTarget() ([]byte, error) {
	start := p.pos
	for {
		if p.pos >= p.length {
			return nil, errIncomplete
		}
		c := p.data[p.pos]
		if c == ' ' {
			break
		}
		if !isTargetByte(c) {
			return nil, newError(KindToken, p.pos)
		}
		p.pos++
	}
	if p.pos == start {
		return nil, newError(KindToken, p.pos)
	}
	path := p.data[start:p.pos]
	p.pos++
	return path, nil
}

const versionPrefix = "HTTP/1."

// parseVersion consumes "HTTP/1.x CRLF" and returns the minor version.
func (p *Parser) parseVersion() (uint8, error) {
	for i := 0; i < len(versionPrefix); i++ {
		if p.pos >= p.length {
			return 0, errIncomplete
		}
		if p.data[p.pos] != versionPrefix[i] {
			return 0, newError(KindVersion, p.pos)
		}
		p.pos++
	}

	if p.pos >= p.length {
		return 0, errIncomplete
	}
	var minor uint8
	switch p.data[p.pos] {
	case '0':
		minor = 0
	case '1':
		minor = 1
	default:
		return 0, newError(KindVersion, p.pos)
	}
	p.pos++

	if err := p.parseNewLine(KindVersion); err != nil {
		return 0, err
	}
	return minor, nil
}

// parseHeaders consumes header lines up to and including the blank line.
// A line that starts once maxHeaders fields are stored is TooManyHeaders,
// whatever follows it.
func (p *Parser) parseHeaders(req *Request, maxHeaders int) error {
	count := 0
	for {
		if p.pos >= p.length {
			return errIncomplete
		}
		if c := p.data[p.pos]; c == '\r' || c == '\n' {
			return p.parseNewLine(KindHeaderName)
		}

		if count >= maxHeaders {
			return newError(KindTooManyHeaders, p.pos)
		}
		name, value, err := p.parseHeader()
		if err != nil {
			if p.cfg.IgnoreInvalidHeaders && isFieldError(err) {
				if err := p.skipLine(); err != nil {
					return err
				}
				continue
			}
			return err
		}

		count++
		req.Headers = append(req.Headers, Header{Name: name, Value: value})
	}
}

// parseHeader consumes one "field-name : OWS field-value OWS CRLF" line.
func (p *Parser) parseHeader() (name, value []byte, err error) {
	start := p.pos
	for p.pos < p.length && isToken(p.data[p.pos]) {
		p.pos++
	}
	nameEnd := p.pos
	if p.cfg.AllowSpaceBeforeColon && nameEnd > start {
		for p.pos < p.length && isOWS(p.data[p.pos]) {
			p.pos++
		}
	}
	if p.pos >= p.length {
		return nil, nil, errIncomplete
	}
	if p.data[p.pos] != ':' || nameEnd == start {
		return nil, nil, newError(KindHeaderName, p.pos)
	}
	p.pos++

	for p.pos < p.length && isOWS(p.data[p.pos]) {
		p.pos++
	}
	valueStart := p.pos
	for {
		if p.pos >= p.length {
			return nil, nil, errIncomplete
		}
		if !isValueByte(p.data[p.pos]) {
			break
		}
		p.pos++
	}
	valueEnd := p.pos

	if c := p.data[p.pos]; c != '\r' && c != '\n' {
		return nil, nil, newError(KindHeaderValue, p.pos)
	}
	if err := p.parseNewLine(KindHeaderValue); err != nil {
		return nil, nil, err
	}

	for valueEnd > valueStart && isOWS(p.data[valueEnd-1]) {
		valueEnd--
	}
	return p.data[start:nameEnd], p.data[valueStart:valueEnd], nil
}

// parseNewLine consumes a line terminator. A byte that cannot start one is
// reported as kind.
func (p *Parser) parseNewLine(kind ErrorKind) error {
	if p.pos >= p.length {
		return errIncomplete
	}
	switch p.data[p.pos] {
	case '\r':
		if p.pos+1 >= p.length {
			return errIncomplete
		}
		if p.data[p.pos+1] != '\n' {
			return newError(KindNewLine, p.pos+1)
		}
		p.pos += 2
		return nil
	case '\n':
		if !p.cfg.AllowBareLF {
			return newError(KindNewLine, p.pos)
		}
		p.pos++
		return nil
	default:
		return newError(kind, p.pos)
	}
}

// skipLine advances past the end of the current line. The terminator is
// held to the same rules as any other.
func (p *Parser) skipLine() error {
	for p.pos < p.length {
		if c := p.data[p.pos]; c == '\r' || c == '\n' {
			return p.parseNewLine(KindNewLine)
		}
		p.pos++
	}
	return errIncomplete
}

func isFieldError(err error) bool {
	var pe *ParseError
	if !errors.As(err, &pe) {
		return false
	}
	return pe.Kind == KindHeaderName || pe.Kind == KindHeaderValue
}
