// Package charstream reads text one character at a time without loading
// the whole source into memory.
//
// The source is consumed in fixed-size chunks. Characters are UTF-8
// decoded runes; a multi-byte sequence split across two chunks is
// reassembled before it is returned.
//
//	f, err := os.Open("input.txt")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	for c, err := range charstream.Read(f) {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Printf("%c", c)
//	}
package charstream

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"unicode/utf8"

	"golang.org/x/text/transform"

	"github.com/gogpu/geom"
)

// ErrInvalidChunkSize is returned when the configured chunk size is not positive.
var ErrInvalidChunkSize = errors.New("charstream: chunk size must be positive")

// maxConsecutiveEmptyReads bounds how often a source may return no data
// and no error before the Reader gives up with io.ErrNoProgress.
const maxConsecutiveEmptyReads = 100

// Reader yields the characters of a source one at a time.
// A Reader is forward-only and is not safe for concurrent use.
type Reader struct {
	src       io.Reader
	chunkSize int

	// buf holds one chunk plus room for the bytes of a rune that was cut
	// off at the end of the previous chunk.
	buf     []byte
	pending []byte
	err     error
	chunks  int
}

// New returns a Reader over src.
// It fails with ErrInvalidChunkSize if WithChunkSize was given a value <= 0.
func New(src io.Reader, opts ...Option) (*Reader, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.chunkSize <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidChunkSize, o.chunkSize)
	}

	if o.encoding != nil {
		src = transform.NewReader(src, o.encoding.NewDecoder())
	}
	if o.normalize {
		src = transform.NewReader(src, o.form)
	}

	return &Reader{
		src:       src,
		chunkSize: o.chunkSize,
		buf:       make([]byte, o.chunkSize+utf8.UTFMax),
	}, nil
}

// Next returns the next character. At the end of the source it returns
// io.EOF. Any other read error is returned after the characters read
// before it, and every later call returns the same error.
//
// Bytes that are not valid UTF-8 are returned as utf8.RuneError, one byte
// at a time.
func (r *Reader) Next() (rune, error) {
	for {
		if len(r.pending) > 0 && (utf8.FullRune(r.pending) || r.err != nil) {
			c, size := utf8.DecodeRune(r.pending)
			r.pending = r.pending[size:]
			return c, nil
		}
		if r.err != nil {
			return 0, r.err
		}
		r.fill()
	}
}

// fill reads the next chunk, keeping any incomplete rune at the front.
func (r *Reader) fill() {
	carry := copy(r.buf, r.pending)
	chunk := r.buf[carry : carry+r.chunkSize]

	for i := 0; i < maxConsecutiveEmptyReads; i++ {
		n, err := r.src.Read(chunk)
		if n < 0 || n > len(chunk) {
			panic("charstream: source returned invalid count from Read")
		}
		r.pending = r.buf[:carry+n]
		if err != nil {
			r.err = err
			if err != io.EOF {
				geom.Logger().Debug("charstream: read failed", "chunk", r.chunks, "err", err)
			}
		}
		if n > 0 {
			r.chunks++
			geom.Logger().Debug("charstream: read chunk", "chunk", r.chunks, "bytes", n)
			return
		}
		if err != nil {
			return
		}
	}
	r.err = io.ErrNoProgress
}

// Chunks returns the number of non-empty chunks read from the source so far.
func (r *Reader) Chunks() int {
	return r.chunks
}

// All returns an iterator over the remaining characters.
// Iteration stops at the end of the source; a read error is yielded once
// as (0, err) and ends the sequence. The sequence shares the Reader's
// position: breaking out and ranging again continues where it stopped,
// and ranging over an exhausted Reader yields nothing.
func (r *Reader) All() iter.Seq2[rune, error] {
	return func(yield func(rune, error) bool) {
		for {
			c, err := r.Next()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(0, err)
				return
			}
			if !yield(c, nil) {
				return
			}
		}
	}
}

// Read returns a lazy sequence of the characters in src.
// It is shorthand for New(src, opts...).All(); an invalid option is
// yielded as the first and only element.
func Read(src io.Reader, opts ...Option) iter.Seq2[rune, error] {
	r, err := New(src, opts...)
	if err != nil {
		return func(yield func(rune, error) bool) {
			yield(0, err)
		}
	}
	return r.All()
}
