// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pattern

import (
	"fmt"
	"strconv"
	"time"
)

// field returns the appender for a run of n copies of the pattern letter c,
// or a non-empty reason if the run is not supported.
func field(c byte, n int) (appender, string) {
	switch c {
	case 'G':
		return textField(c, n, era)
	case 'y':
		return yearField(c, n, yearOfEra)
	case 'u':
		return yearField(c, n, func(t time.Time) int { return t.Year() })
	case 'Q', 'q':
		return quarterField(c, n)
	case 'M', 'L':
		return monthField(c, n)
	case 'd':
		return numericField(c, n, 2, func(t time.Time) int { return t.Day() })
	case 'D':
		return numericField(c, n, 3, func(t time.Time) int { return t.YearDay() })
	case 'E':
		return textField(c, n, weekday)
	case 'a':
		if n > 1 {
			return nil, tooMany(c)
		}
		return func(b []byte, t time.Time) []byte {
			if t.Hour() < 12 {
				return append(b, "AM"...)
			}
			return append(b, "PM"...)
		}, ""
	case 'H':
		return numericField(c, n, 2, func(t time.Time) int { return t.Hour() })
	case 'k':
		return numericField(c, n, 2, func(t time.Time) int {
			if h := t.Hour(); h != 0 {
				return h
			}
			return 24
		})
	case 'K':
		return numericField(c, n, 2, func(t time.Time) int { return t.Hour() % 12 })
	case 'h':
		return numericField(c, n, 2, func(t time.Time) int {
			if h := t.Hour() % 12; h != 0 {
				return h
			}
			return 12
		})
	case 'm':
		return numericField(c, n, 2, func(t time.Time) int { return t.Minute() })
	case 's':
		return numericField(c, n, 2, func(t time.Time) int { return t.Second() })
	case 'S':
		if n > 9 {
			return nil, tooMany(c)
		}
		return func(b []byte, t time.Time) []byte {
			frac := appendPadded(nil, int64(t.Nanosecond()), 9)
			return append(b, frac[:n]...)
		}, ""
	case 'A':
		return wideField(c, n, func(t time.Time) int64 {
			return sinceMidnight(t).Milliseconds()
		})
	case 'n':
		return wideField(c, n, func(t time.Time) int64 { return int64(t.Nanosecond()) })
	case 'N':
		return wideField(c, n, func(t time.Time) int64 {
			return sinceMidnight(t).Nanoseconds()
		})
	case 'V', 'v', 'z', 'O', 'X', 'x', 'Z':
		return nil, fmt.Sprintf("unsupported time zone pattern letter %q", c)
	case 'Y', 'w', 'W', 'e', 'c', 'F', 'B', 'g', 'p':
		return nil, fmt.Sprintf("unsupported pattern letter %q", c)
	}
	return nil, fmt.Sprintf("unknown pattern letter %q", c)
}

func tooMany(c byte) string {
	return fmt.Sprintf("too many pattern letters %q", c)
}

func numericField(c byte, n, maxWidth int, value func(time.Time) int) (appender, string) {
	if n > maxWidth {
		return nil, tooMany(c)
	}
	return func(b []byte, t time.Time) []byte {
		return appendPadded(b, int64(value(t)), n)
	}, ""
}

// wideField pads the value to at least n digits, longer values are
// output in full.
func wideField(c byte, n int, value func(time.Time) int64) (appender, string) {
	if n > 19 {
		return nil, tooMany(c)
	}
	return func(b []byte, t time.Time) []byte {
		return appendPadded(b, value(t), n)
	}, ""
}

func yearField(c byte, n int, value func(time.Time) int) (appender, string) {
	if n > 19 {
		return nil, tooMany(c)
	}
	if n == 2 {
		return func(b []byte, t time.Time) []byte {
			y := value(t) % 100
			if y < 0 {
				y += 100
			}
			return appendPadded(b, int64(y), 2)
		}, ""
	}
	return func(b []byte, t time.Time) []byte {
		return appendPadded(b, int64(value(t)), n)
	}, ""
}

var quarterOrdinals = [4]string{"1st quarter", "2nd quarter", "3rd quarter", "4th quarter"}

func quarterField(c byte, n int) (appender, string) {
	quarter := func(t time.Time) int { return (int(t.Month())-1)/3 + 1 }
	switch n {
	case 1, 2, 5:
		width := n
		if n == 5 {
			width = 1
		}
		return func(b []byte, t time.Time) []byte {
			return appendPadded(b, int64(quarter(t)), width)
		}, ""
	case 3:
		return func(b []byte, t time.Time) []byte {
			return appendPadded(append(b, 'Q'), int64(quarter(t)), 1)
		}, ""
	case 4:
		return func(b []byte, t time.Time) []byte {
			return append(b, quarterOrdinals[quarter(t)-1]...)
		}, ""
	}
	return nil, tooMany(c)
}

func monthField(c byte, n int) (appender, string) {
	switch n {
	case 1, 2:
		return numericField(c, n, 2, func(t time.Time) int { return int(t.Month()) })
	}
	return textField(c, n, func(t time.Time) string { return t.Month().String() })
}

// textField handles the short (1-3), full (4) and narrow (5) forms of
// a textual field.
func textField(c byte, n int, full func(time.Time) string) (appender, string) {
	switch {
	case n <= 3:
		return func(b []byte, t time.Time) []byte {
			return append(b, short(full(t))...)
		}, ""
	case n == 4:
		return func(b []byte, t time.Time) []byte {
			return append(b, full(t)...)
		}, ""
	case n == 5:
		return func(b []byte, t time.Time) []byte {
			return append(b, full(t)[0])
		}, ""
	}
	return nil, tooMany(c)
}

func short(s string) string {
	switch s {
	case "Anno Domini":
		return "AD"
	case "Before Christ":
		return "BC"
	}
	if len(s) > 3 {
		return s[:3]
	}
	return s
}

func era(t time.Time) string {
	if t.Year() > 0 {
		return "Anno Domini"
	}
	return "Before Christ"
}

func yearOfEra(t time.Time) int {
	if y := t.Year(); y > 0 {
		return y
	}
	return 1 - t.Year()
}

func weekday(t time.Time) string {
	return t.Weekday().String()
}

func sinceMidnight(t time.Time) time.Duration {
	y, m, d := t.Date()
	return t.Sub(time.Date(y, m, d, 0, 0, 0, 0, t.Location()))
}

// appendPadded appends v zero padded to at least width digits.
func appendPadded(b []byte, v int64, width int) []byte {
	if v < 0 {
		b = append(b, '-')
		v = -v
	}
	var digits [20]byte
	d := strconv.AppendInt(digits[:0], v, 10)
	for i := len(d); i < width; i++ {
		b = append(b, '0')
	}
	return append(b, d...)
}
