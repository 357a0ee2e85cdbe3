// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package pattern provides a formatter for date/time patterns written using
// letter runs such as "yyyy-MM-dd HH:mm:ss" rather than Go's reference
// time layouts. Patterns are compiled once and may then be used to format
// any number of time.Time values. Compilation is the only operation that
// can fail, all errors are reported as *InvalidFormatError.
//
// The supported pattern letters are:
//
//	G  era                    AD; Anno Domini; A
//	y  year-of-era            2024; 24
//	u  year                   2024; 24
//	Q  quarter-of-year        1; 01; Q1; 1st quarter
//	M  month-of-year          3; 03; Mar; March; M
//	d  day-of-month           5; 05
//	D  day-of-year            65; 065
//	E  day-of-week            Tue; Tuesday; T
//	a  am-pm-of-day           AM
//	H  hour-of-day (0-23)     7; 07
//	k  clock-hour-of-day      24
//	K  hour-of-am-pm (0-11)   0
//	h  clock-hour-of-am-pm    12
//	m  minute-of-hour         8; 08
//	s  second-of-minute       9; 09
//	S  fraction-of-second     123
//	A  milli-of-day           25689123
//	n  nano-of-second         123456789
//	N  nano-of-day            25689123456789
//
// For the numeric fields A, n and N a count greater than one is a minimum
// width: the value is zero padded to the count and is never truncated,
// so "AA" for 23:30:00.123 yields 84600123. Formatting never fails since
// all errors are reported when a pattern is compiled.
//
// q and L are accepted as synonyms for Q and M. Text within single quotes is
// output verbatim and two consecutive single quotes represent a single
// quote. Square brackets delimit optional sections, since all fields are
// always available when formatting a time.Time these sections are always
// output. The characters '{', '}' and '#' are reserved and all other
// non-letter characters are output as is.
package pattern

import (
	"errors"
	"fmt"
	"time"
)

// Default is the pattern used when none is specified.
const Default = "yyyy-MM-dd HH:mm:ss"

// ErrInvalidFormat is wrapped by all errors returned for malformed patterns.
var ErrInvalidFormat = errors.New("invalid format pattern")

// InvalidFormatError is returned when a pattern cannot be compiled. Offset
// is the byte offset within Pattern at which the problem was detected.
type InvalidFormatError struct {
	Pattern string
	Offset  int
	Reason  string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("%v: %q: offset %d: %s", ErrInvalidFormat, e.Pattern, e.Offset, e.Reason)
}

// Unwrap returns ErrInvalidFormat.
func (e *InvalidFormatError) Unwrap() error {
	return ErrInvalidFormat
}

type appender func(b []byte, t time.Time) []byte

type element struct {
	literal string
	field   appender
}

// Pattern represents a compiled pattern.
type Pattern struct {
	src   string
	elems []element
}

// Compile compiles the supplied pattern.
func Compile(src string) (*Pattern, error) {
	p := &Pattern{src: src}
	var lit []byte
	flush := func() {
		if len(lit) > 0 {
			p.elems = append(p.elems, element{literal: string(lit)})
			lit = lit[:0]
		}
	}
	optional := 0
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case isLetter(c):
			n := runLength(src, i)
			fn, reason := field(c, n)
			if len(reason) > 0 {
				return nil, &InvalidFormatError{Pattern: src, Offset: i, Reason: reason}
			}
			flush()
			p.elems = append(p.elems, element{field: fn})
			i += n
		case c == '\'':
			text, n, ok := quoted(src, i)
			if !ok {
				return nil, &InvalidFormatError{Pattern: src, Offset: i, Reason: "unterminated quoted literal"}
			}
			lit = append(lit, text...)
			i += n
		case c == '[':
			optional++
			i++
		case c == ']':
			if optional == 0 {
				return nil, &InvalidFormatError{Pattern: src, Offset: i, Reason: "']' without a preceding '['"}
			}
			optional--
			i++
		case c == '{' || c == '}' || c == '#':
			return nil, &InvalidFormatError{Pattern: src, Offset: i, Reason: fmt.Sprintf("reserved character %q", c)}
		default:
			lit = append(lit, c)
			i++
		}
	}
	flush()
	return p, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(src string) *Pattern {
	p, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return p
}

// Format compiles src and uses it to format t.
func Format(src string, t time.Time) (string, error) {
	p, err := Compile(src)
	if err != nil {
		return "", err
	}
	return p.Format(t), nil
}

// Format returns t formatted according to the pattern.
func (p *Pattern) Format(t time.Time) string {
	return string(p.AppendFormat(make([]byte, 0, len(p.src)+8), t))
}

// AppendFormat is like Format but appends the formatted text to b.
func (p *Pattern) AppendFormat(b []byte, t time.Time) []byte {
	for _, e := range p.elems {
		if e.field == nil {
			b = append(b, e.literal...)
			continue
		}
		b = e.field(b, t)
	}
	return b
}

// String returns the pattern's source text.
func (p *Pattern) String() string {
	return p.src
}

// IsZero returns true for a nil or empty pattern.
func (p *Pattern) IsZero() bool {
	return p == nil || len(p.elems) == 0
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func runLength(src string, i int) int {
	n := 1
	for i+n < len(src) && src[i+n] == src[i] {
		n++
	}
	return n
}

// quoted returns the text of the quoted literal starting at src[i], the
// number of bytes consumed and false if the literal is unterminated.
func quoted(src string, i int) (string, int, bool) {
	if i+1 < len(src) && src[i+1] == '\'' {
		return "'", 2, true
	}
	var text []byte
	for j := i + 1; j < len(src); j++ {
		if src[j] != '\'' {
			text = append(text, src[j])
			continue
		}
		if j+1 < len(src) && src[j+1] == '\'' {
			text = append(text, '\'')
			j++
			continue
		}
		return string(text), j + 1 - i, true
	}
	return "", 0, false
}
