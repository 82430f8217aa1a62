package holidayfile

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/aalvaropc/dayoff/internal/domain"
	"github.com/aalvaropc/dayoff/internal/ports"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// Loader reads holiday_jp style files ("YYYY-MM-DD: description" per line).
type Loader struct {
	encoding string
}

type Option func(*Loader)

// WithEncoding selects the text encoding of the source: utf-8 (default),
// shift_jis or euc-jp.
func WithEncoding(name string) Option {
	return func(l *Loader) { l.encoding = name }
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{encoding: "utf-8"}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.HolidayLoader = (*Loader)(nil)

// Load reads the whole file and keeps every line that starts with a date.
// Lines that do not parse are dropped; only I/O and decoding problems fail.
func (l *Loader) Load(path string) (domain.HolidaySet, error) {
	dec, err := decoderFor(l.encoding)
	if err != nil {
		return domain.HolidaySet{}, &domain.OpError{
			Op:   "holidayfile.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	text, err := readText(path, dec)
	if err != nil {
		return domain.HolidaySet{}, &domain.OpError{
			Op:   "holidayfile.load",
			Kind: domain.KindUnavailable,
			Path: path,
			Err:  err,
		}
	}

	return Parse(strings.Split(text, "\n")), nil
}

func readText(path string, dec *encoding.Decoder) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var r io.Reader = f
	if dec != nil {
		r = transform.NewReader(f, dec)
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	b = bytes.TrimPrefix(b, utf8BOM)
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: content is not valid UTF-8", domain.ErrUnavailable)
	}
	return string(b), nil
}

// decoderFor returns nil for UTF-8, which is read as-is.
func decoderFor(name string) (*encoding.Decoder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return nil, nil
	case "shift_jis", "shift-jis", "sjis", "cp932":
		return japanese.ShiftJIS.NewDecoder(), nil
	case "euc-jp", "eucjp":
		return japanese.EUCJP.NewDecoder(), nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
}
