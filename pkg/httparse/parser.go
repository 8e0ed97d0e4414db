package httparse

import (
	"io"
	"log/slog"

	"github.com/shapestone/shape-httparse/internal/fastparser"
)

const (
	// DefaultMaxHeaders is the header count limit used when none is set.
	DefaultMaxHeaders = 256
	// DefaultMaxHeadSize bounds how many bytes a Decoder buffers while
	// waiting for a head to complete.
	DefaultMaxHeadSize = 64 << 10
	// DefaultMaxBodySize bounds the body length a Decoder buffers in Body.
	DefaultMaxBodySize = 10 << 20
)

// Option configures a Parser or a Decoder.
type Option func(*options)

type options struct {
	maxHeaders  int
	maxHeadSize int
	maxBodySize int
	scan        fastparser.Config
	logger      *slog.Logger
}

func defaultOptions() options {
	return options{
		maxHeaders:  DefaultMaxHeaders,
		maxHeadSize: DefaultMaxHeadSize,
		maxBodySize: DefaultMaxBodySize,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithMaxHeaders sets the maximum number of header fields. Zero rejects any
// header; negative values count as zero.
func WithMaxHeaders(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.maxHeaders = n
	}
}

// WithBareLF accepts a lone "\n" wherever "\r\n" is expected.
func WithBareLF() Option {
	return func(o *options) { o.scan.AllowBareLF = true }
}

// WithSpaceBeforeColon accepts whitespace between a header name and its colon.
func WithSpaceBeforeColon() Option {
	return func(o *options) { o.scan.AllowSpaceBeforeColon = true }
}

// WithIgnoreInvalidHeaders skips header lines with an invalid name or value
// instead of failing the parse. Skipped lines are not counted.
func WithIgnoreInvalidHeaders() Option {
	return func(o *options) { o.scan.IgnoreInvalidHeaders = true }
}

// WithMaxHeadSize sets the Decoder buffer limit. Values below 1 keep the
// default.
func WithMaxHeadSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxHeadSize = n
		}
	}
}

// WithMaxBodySize sets the largest body a Decoder will buffer in Body.
// Values below 0 keep the default.
func WithMaxBodySize(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.maxBodySize = n
		}
	}
}

// WithLogger sets the logger used by a Decoder. The scanner itself never logs.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Parser parses request heads with a fixed configuration. It is immutable and
// safe for concurrent use.
type Parser struct {
	opts options
}

// NewParser returns a Parser. Without options it is strict and allows
// DefaultMaxHeaders headers.
func NewParser(opts ...Option) *Parser {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Parser{opts: o}
}

// MaxHeaders returns the configured header count limit.
func (p *Parser) MaxHeaders() int { return p.opts.maxHeaders }

// Parse scans buf for a request head and stores the result in req.
//
// It returns (Complete, nil) on success, (Incomplete, nil) when buf ends
// before the blank line that closes the head, or a *ParseError. req never
// holds a partial result; its header storage is reused between calls.
// Parse restarts from byte 0 on every call, so after Incomplete the caller
// passes the old bytes plus the new ones.
func (p *Parser) Parse(buf []byte, req *Request) (Status, error) {
	return fastparser.ParseRequest(buf, req, p.opts.maxHeaders, p.opts.scan)
}

var defaultParser = NewParser()

// Parse parses buf with the default strict configuration.
func Parse(buf []byte, req *Request) (Status, error) {
	return defaultParser.Parse(buf, req)
}
