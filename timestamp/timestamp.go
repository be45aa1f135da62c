// Package timestamp implements the ID3v2.4 timestamp grammar used by
// TDRC/TDRL/TDOR and friends (spec component J): a subset of ISO 8601
// with decreasing precision, yyyy[-MM[-DD[THH[:mm[:ss]]]]].
//
// Grounded on original_source/src/frame/timestamp.rs: the parser's
// whitespace-tolerant recursive-descent shape and the formatter's
// deepest-precision zero-padding are both carried over directly.
package timestamp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-audio/id3tag/id3err"
)

// Timestamp is a date/time with optional decreasing precision below the
// year. A zero Timestamp has no valid representation; use Parse.
type Timestamp struct {
	Year                       int32
	Month, Day                 *uint8
	Hour, Minute, Second       *uint8
}

func u8p(n uint8) *uint8 { return &n }

// Parse parses s per the grammar above. Optional whitespace is tolerated
// between components. Anything beyond a bare year requires every prior
// component to also be present (a dash before month, "T" before hour,
// colons between hour/minute/second).
func Parse(s string) (Timestamp, error) {
	p := &parser{s: s}
	year, err := p.number()
	if err != nil {
		return Timestamp{}, id3err.ParsingErr("timestamp: missing or invalid year")
	}
	ts := Timestamp{Year: int32(year)}

	// Best-effort: once a required separator is missing, parsing of
	// deeper fields stops without failing the whole timestamp, mirroring
	// the original's permissive inner closure.
	if !p.expect('-') {
		return ts, nil
	}
	month, ok := p.component()
	if !ok {
		return ts, nil
	}
	ts.Month = u8p(month)

	if !p.expect('-') {
		return ts, nil
	}
	day, ok := p.component()
	if !ok {
		return ts, nil
	}
	ts.Day = u8p(day)

	if !p.expect('T') {
		return ts, nil
	}
	hour, ok := p.component()
	if !ok {
		return ts, nil
	}
	ts.Hour = u8p(hour)

	if !p.expect(':') {
		return ts, nil
	}
	minute, ok := p.component()
	if !ok {
		return ts, nil
	}
	ts.Minute = u8p(minute)

	if !p.expect(':') {
		return ts, nil
	}
	second, ok := p.component()
	if !ok {
		return ts, nil
	}
	ts.Second = u8p(second)

	return ts, nil
}

// String formats the timestamp, zero-padding each field to the deepest
// precision present.
func (t Timestamp) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%04d", t.Year)
	if t.Month == nil {
		return b.String()
	}
	fmt.Fprintf(&b, "-%02d", *t.Month)
	if t.Day == nil {
		return b.String()
	}
	fmt.Fprintf(&b, "-%02d", *t.Day)
	if t.Hour == nil {
		return b.String()
	}
	fmt.Fprintf(&b, "T%02d", *t.Hour)
	if t.Minute == nil {
		return b.String()
	}
	fmt.Fprintf(&b, ":%02d", *t.Minute)
	if t.Second == nil {
		return b.String()
	}
	fmt.Fprintf(&b, ":%02d", *t.Second)
	return b.String()
}

// Equal compares two timestamps field by field.
func (t Timestamp) Equal(o Timestamp) bool {
	return t.Year == o.Year &&
		eqPtr(t.Month, o.Month) && eqPtr(t.Day, o.Day) &&
		eqPtr(t.Hour, o.Hour) && eqPtr(t.Minute, o.Minute) && eqPtr(t.Second, o.Second)
}

func eqPtr(a, b *uint8) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

type parser struct {
	s string
	i int
}

func (p *parser) skipWhitespace() {
	for p.i < len(p.s) && (p.s[p.i] == ' ' || p.s[p.i] == '\t') {
		p.i++
	}
}

func (p *parser) expect(ch byte) bool {
	p.skipWhitespace()
	if p.i < len(p.s) && p.s[p.i] == ch {
		p.i++
		return true
	}
	return false
}

func (p *parser) number() (int, error) {
	p.skipWhitespace()
	start := p.i
	for p.i < len(p.s) && p.s[p.i] >= '0' && p.s[p.i] <= '9' {
		p.i++
	}
	if p.i == start {
		return 0, id3err.ParsingErr("timestamp: expected a number")
	}
	return strconv.Atoi(p.s[start:p.i])
}

// component parses a sub-year numeric field (month, day, hour, minute,
// second), each required to fit in a byte (< 100).
func (p *parser) component() (uint8, bool) {
	n, err := p.number()
	if err != nil || n >= 100 {
		return 0, false
	}
	return uint8(n), true
}
