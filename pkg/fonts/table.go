package fonts

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/matzehuels/stackbadge/pkg/errors"
)

// Parse reads a width table of the form [[low,high,width],...] and builds a
// font of the given pixel size. Whitespace is allowed between tokens.
func Parse(r io.Reader, size int) (*Font, error) {
	ranges, err := ReadTable(r)
	if err != nil {
		return nil, err
	}
	return New(ranges, size)
}

// ParseString is Parse over an in-memory table.
func ParseString(table string, size int) (*Font, error) {
	return Parse(strings.NewReader(table), size)
}

// LoadFile parses the width table stored at path.
func LoadFile(path string, size int) (*Font, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNotFound, err, "open font table %s", path)
	}
	defer f.Close()

	font, err := Parse(f, size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return font, nil
}

// ReadTable reads the raw ranges of a width table without validating them.
func ReadTable(r io.Reader) ([]Range, error) {
	s := &scanner{r: bufio.NewReader(r)}

	if err := s.expect('['); err != nil {
		return nil, err
	}
	var ranges []Range
	for {
		if err := s.expect('['); err != nil {
			return nil, err
		}
		low, err := s.codepoint()
		if err != nil {
			return nil, err
		}
		if err := s.expect(','); err != nil {
			return nil, err
		}
		high, err := s.codepoint()
		if err != nil {
			return nil, err
		}
		if err := s.expect(','); err != nil {
			return nil, err
		}
		width, err := s.number()
		if err != nil {
			return nil, err
		}
		if err := s.expect(']'); err != nil {
			return nil, err
		}
		ranges = append(ranges, Range{Low: low, High: high, Width: width})

		c, err := s.next()
		if err != nil {
			return nil, err
		}
		if c == ']' {
			break
		}
		if c != ',' {
			return nil, s.fail("',' or ']'", c)
		}
	}

	if c, err := s.next(); err != nil {
		return nil, err
	} else if c != eof {
		return nil, s.fail("end of input", c)
	}
	return ranges, nil
}

// WriteTable writes ranges in the format read by Parse.
func WriteTable(w io.Writer, ranges []Range) error {
	bw := bufio.NewWriter(w)
	bw.WriteByte('[')
	for i, r := range ranges {
		if i > 0 {
			bw.WriteByte(',')
		}
		bw.WriteByte('[')
		bw.WriteString(strconv.Itoa(int(r.Low)))
		bw.WriteByte(',')
		bw.WriteString(strconv.Itoa(int(r.High)))
		bw.WriteByte(',')
		bw.WriteString(strconv.FormatFloat(r.Width, 'f', -1, 64))
		bw.WriteByte(']')
	}
	bw.WriteByte(']')
	return bw.Flush()
}

const eof = -1

// scanner is a byte-level reader for the width table grammar.
type scanner struct {
	r      *bufio.Reader
	offset int
}

func (s *scanner) read() (int, error) {
	b, err := s.r.ReadByte()
	if stderrors.Is(err, io.EOF) {
		return eof, nil
	}
	if err != nil {
		return eof, errors.Wrap(errors.ErrCodeInvalidFontTable, err, "read font table at offset %d", s.offset)
	}
	s.offset++
	return int(b), nil
}

func (s *scanner) unread(c int) {
	if c == eof {
		return
	}
	_ = s.r.UnreadByte()
	s.offset--
}

// next returns the next byte that is not whitespace.
func (s *scanner) next() (int, error) {
	for {
		c, err := s.read()
		if err != nil {
			return eof, err
		}
		switch c {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return c, nil
	}
}

func (s *scanner) expect(want byte) error {
	c, err := s.next()
	if err != nil {
		return err
	}
	if c != int(want) {
		return s.fail(strconv.QuoteRune(rune(want)), c)
	}
	return nil
}

func (s *scanner) codepoint() (rune, error) {
	c, err := s.next()
	if err != nil {
		return 0, err
	}
	sign := 1
	if c == '-' {
		sign = -1
		if c, err = s.read(); err != nil {
			return 0, err
		}
	}
	if !isDigit(c) {
		return 0, s.fail("0-9", c)
	}
	v := 0
	for isDigit(c) {
		v = v*10 + c - '0'
		if v > utf8.MaxRune {
			return 0, errors.New(errors.ErrCodeInvalidFontTable, "code point out of range at offset %d", s.offset)
		}
		if c, err = s.read(); err != nil {
			return 0, err
		}
	}
	s.unread(c)
	return rune(sign * v), nil
}

func (s *scanner) number() (float64, error) {
	c, err := s.next()
	if err != nil {
		return 0, err
	}
	var b strings.Builder
	if c == '-' {
		b.WriteByte('-')
		if c, err = s.read(); err != nil {
			return 0, err
		}
	}
	if !isDigit(c) && c != '.' {
		return 0, s.fail("0-9 or '.'", c)
	}
	for isDigit(c) {
		b.WriteByte(byte(c))
		if c, err = s.read(); err != nil {
			return 0, err
		}
	}
	if c == '.' {
		b.WriteByte('.')
		if c, err = s.read(); err != nil {
			return 0, err
		}
		if !isDigit(c) {
			return 0, s.fail("0-9", c)
		}
		for isDigit(c) {
			b.WriteByte(byte(c))
			if c, err = s.read(); err != nil {
				return 0, err
			}
		}
	}
	s.unread(c)

	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidFontTable, err, "invalid width at offset %d", s.offset)
	}
	return v, nil
}

func (s *scanner) fail(want string, got int) error {
	gotText := "EOF"
	if got != eof {
		gotText = strconv.QuoteRune(rune(got))
	}
	return errors.New(errors.ErrCodeInvalidFontTable, "need %s, got %s at offset %d", want, gotText, s.offset)
}

func isDigit(c int) bool {
	return c >= '0' && c <= '9'
}
