package charstream

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/unicode/norm"
)

// DefaultChunkSize is the number of bytes requested from the source per read.
const DefaultChunkSize = 1024

// Option configures a Reader.
//
// Example:
//
//	// Latin-1 file, NFC-normalized, read 4 KiB at a time
//	for c, err := range charstream.Read(f,
//	    charstream.WithChunkSize(4096),
//	    charstream.WithEncoding(charmap.ISO8859_1),
//	    charstream.WithNormalization(norm.NFC),
//	) {
//	    ...
//	}
type Option func(*options)

type options struct {
	chunkSize int
	encoding  encoding.Encoding
	normalize bool
	form      norm.Form
}

func defaultOptions() options {
	return options{
		chunkSize: DefaultChunkSize,
	}
}

// WithChunkSize sets how many bytes are read from the source at a time.
// The size must be positive.
func WithChunkSize(n int) Option {
	return func(o *options) {
		o.chunkSize = n
	}
}

// WithEncoding decodes the source from enc instead of treating it as UTF-8.
func WithEncoding(enc encoding.Encoding) Option {
	return func(o *options) {
		o.encoding = enc
	}
}

// WithNormalization applies the Unicode normalization form f to the
// decoded text before it is split into characters.
func WithNormalization(f norm.Form) Option {
	return func(o *options) {
		o.normalize = true
		o.form = f
	}
}
