package httparse

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

const (
	minRead         = 4 << 10
	maxEmptyReads   = 100
	initialBufferSz = 4 << 10
)

// Decoder reads request heads from a stream, one connection per Decoder.
//
// It keeps a single growable buffer, appends every read to it and re-parses
// the whole pending head until it completes, fails, or exceeds the head size
// limit. A Decoder is not safe for concurrent use.
type Decoder struct {
	r       io.Reader
	parser  *Parser
	buf     []byte
	start   int // first byte of the current message
	pending int // head bytes of the last decoded request not yet released
	err     error
	logger  *slog.Logger
}

// NewDecoder returns a decoder reading from r. Parser options apply to every
// decoded head; WithMaxHeadSize and WithLogger apply to the decoder itself.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	p := NewParser(opts...)
	return &Decoder{
		r:      r,
		parser: p,
		buf:    make([]byte, 0, initialBufferSz),
		logger: p.opts.logger,
	}
}

// Decode reads the next request head into req.
//
// The slices in req alias the decoder's buffer and req.BodyStart is relative
// to the first byte of this request. Both stay valid until the next call to
// Decode or Body. Body bytes that were not consumed with Body are treated as
// the start of the next request.
//
// Decode returns io.EOF when the stream ends cleanly between requests,
// io.ErrUnexpectedEOF when it ends inside a head, ErrHeadTooLarge when the
// head outgrows the limit, and a *ParseError for malformed input.
func (d *Decoder) Decode(req *Request) error {
	d.release()

	for {
		st, err := d.parser.Parse(d.buf[d.start:], req)
		if err != nil {
			d.logger.Warn("httparse: rejected request head",
				"kind", KindOf(err).String(),
				"buffered", len(d.buf)-d.start,
				"error", err)
			return err
		}
		if st == Complete {
			if req.BodyStart > d.parser.opts.maxHeadSize {
				d.logger.Warn("httparse: request head too large",
					"size", req.BodyStart,
					"limit", d.parser.opts.maxHeadSize)
				req.Reset()
				return ErrHeadTooLarge
			}
			d.pending = req.BodyStart
			return nil
		}

		if len(d.buf)-d.start >= d.parser.opts.maxHeadSize {
			d.logger.Warn("httparse: request head too large",
				"buffered", len(d.buf)-d.start,
				"limit", d.parser.opts.maxHeadSize)
			return ErrHeadTooLarge
		}

		if d.err != nil {
			if errors.Is(d.err, io.EOF) {
				if len(d.buf) == d.start {
					return io.EOF
				}
				return io.ErrUnexpectedEOF
			}
			return fmt.Errorf("httparse: decode: %w", d.err)
		}
		if n := d.fill(); n > 0 {
			d.logger.Debug("httparse: head incomplete, read more",
				"read", n,
				"buffered", len(d.buf)-d.start)
		}
	}
}

// Body returns the next n bytes after the last decoded head, reading from the
// stream as needed. The returned slice aliases the decoder's buffer and is
// valid until the next call to Decode or Body.
//
// The whole body is buffered, so n is bounded by WithMaxBodySize; larger
// values fail with ErrBodyTooLarge before anything is read. Stream bigger
// bodies from the reader directly, starting with Buffered.
func (d *Decoder) Body(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("httparse: negative body length %d", n)
	}
	if n > d.parser.opts.maxBodySize {
		return nil, ErrBodyTooLarge
	}
	d.release()

	for len(d.buf)-d.start < n {
		if d.err != nil {
			if errors.Is(d.err, io.EOF) {
				return nil, io.ErrUnexpectedEOF
			}
			return nil, fmt.Errorf("httparse: read body: %w", d.err)
		}
		d.fill()
	}
	b := d.buf[d.start : d.start+n : d.start+n]
	d.start += n
	return b, nil
}

// Buffered returns the bytes already read past the last decoded head.
func (d *Decoder) Buffered() []byte {
	return d.buf[d.start+d.pending:]
}

// release drops the head of the previously decoded request.
func (d *Decoder) release() {
	d.start += d.pending
	d.pending = 0
}

// fill reads once from the stream into the free tail of the buffer,
// compacting or growing it first when the tail is short. A read error is
// kept in d.err and surfaces once the buffered bytes are used up.
func (d *Decoder) fill() int {
	if d.start == len(d.buf) {
		d.buf = d.buf[:0]
		d.start = 0
	}
	if cap(d.buf)-len(d.buf) < minRead {
		unread := len(d.buf) - d.start
		nb := d.buf[:0]
		if unread+minRead > cap(d.buf) {
			nb = make([]byte, 0, 2*cap(d.buf)+minRead)
		}
		nb = append(nb, d.buf[d.start:]...)
		d.buf = nb
		d.start = 0
	}

	for i := 0; i < maxEmptyReads; i++ {
		n, err := d.r.Read(d.buf[len(d.buf):cap(d.buf)])
		if n < 0 {
			panic("httparse: reader returned negative count from Read")
		}
		d.buf = d.buf[:len(d.buf)+n]
		if err != nil {
			d.err = err
		}
		if n > 0 || err != nil {
			return n
		}
	}
	d.err = io.ErrNoProgress
	return 0
}
