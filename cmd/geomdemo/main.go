// Command geomdemo reads "x y" pairs from a text file and prints facts
// about the resulting vectors.
//
// Numbers may be separated by any whitespace or commas:
//
//	3 4
//	1, 0
//	-2 2
//
// Usage:
//
//	geomdemo -input points.txt [-chunk 1024] [-charset utf8|latin1|utf16] [-v]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/geom"
	"github.com/gogpu/geom/charstream"
)

// normForm folds compatibility characters such as full-width digits to ASCII.
const normForm = norm.NFKC

func main() {
	var (
		input   = flag.String("input", "-", "input file, - for stdin")
		chunk   = flag.Int("chunk", charstream.DefaultChunkSize, "read chunk size in bytes")
		charset = flag.String("charset", "utf8", "input charset: utf8, latin1 or utf16")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		geom.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var src io.Reader = os.Stdin
	if *input != "-" {
		f, err := os.Open(*input)
		if err != nil {
			log.Fatalf("Failed to open input: %v", err)
		}
		defer f.Close()
		src = f
	}

	opts := []charstream.Option{
		charstream.WithChunkSize(*chunk),
		charstream.WithNormalization(normForm),
	}
	enc, err := lookupCharset(*charset)
	if err != nil {
		log.Fatal(err)
	}
	if enc != nil {
		opts = append(opts, charstream.WithEncoding(enc))
	}

	vectors, err := readVectors(src, opts...)
	if err != nil {
		log.Fatalf("Failed to read vectors: %v", err)
	}

	report(os.Stdout, vectors)
}

func lookupCharset(name string) (encoding.Encoding, error) {
	switch strings.ToLower(name) {
	case "utf8", "utf-8":
		return nil, nil
	case "latin1", "iso-8859-1":
		return charmap.ISO8859_1, nil
	case "utf16", "utf-16":
		return xunicode.UTF16(xunicode.LittleEndian, xunicode.UseBOM), nil
	}
	return nil, fmt.Errorf("unknown charset %q", name)
}

// readVectors tokenizes src character by character and pairs up the numbers.
func readVectors(src io.Reader, opts ...charstream.Option) ([]geom.Vector2, error) {
	var (
		nums []float64
		tok  strings.Builder
	)
	flush := func() error {
		if tok.Len() == 0 {
			return nil
		}
		f, err := strconv.ParseFloat(tok.String(), 64)
		if err != nil {
			return err
		}
		nums = append(nums, f)
		tok.Reset()
		return nil
	}

	for c, err := range charstream.Read(src, opts...) {
		if err != nil {
			return nil, err
		}
		if unicode.IsSpace(c) || c == ',' {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		tok.WriteRune(c)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(nums)%2 != 0 {
		return nil, fmt.Errorf("odd number of values (%d): last x has no y", len(nums))
	}

	vectors := make([]geom.Vector2, 0, len(nums)/2)
	for i := 0; i < len(nums); i += 2 {
		vectors = append(vectors, geom.New(nums[i], nums[i+1]))
	}
	return vectors, nil
}

func report(w io.Writer, vectors []geom.Vector2) {
	var sum geom.Vector2
	for i, v := range vectors {
		sum = sum.Add(v)
		fmt.Fprintf(w, "%d: %v |v|=%.4g", i, v, v.Magnitude())
		if angle, err := v.Angle(); err == nil {
			fmt.Fprintf(w, " angle=%.4g", angle)
		}
		if n, err := v.Normalized(); err == nil {
			fmt.Fprintf(w, " unit=%v", n)
		}
		if i > 0 {
			prev := vectors[i-1]
			fmt.Fprintf(w, " dist=%.4g", prev.Distance(v))
			if between, err := prev.AngleBetween(v); err == nil {
				fmt.Fprintf(w, " between=%.4g", between)
			}
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "sum: %v\n", sum)
}
