package v1

import (
	"strconv"
	"strings"
)

// ParseTCON resolves legacy ID3v1 genre references embedded in a TCON
// text value: zero or more prefix occurrences of "(N)" (an ID3v1 genre
// id), "(RX)" ("Remix") or "(CR)" ("Cover"), followed by optional
// trailing free-form text. "((" escapes a literal "(" and the remainder
// of the string is kept verbatim. Malformed input is returned unchanged.
//
// Grounded on original_source/src/tcon.rs's Parser: the
// content_type/v1_content_type/escaped_content_type/trailer grammar and
// its "first matching alternative, backtrack on failure" control flow
// are carried over directly (Go lacks Rust's closure-based combinators,
// so this uses explicit recursive-descent helpers instead).
func ParseTCON(s string) string {
	p := &tconParser{s: s}
	var refs []string
	for {
		ref, ok := p.contentType()
		if !ok {
			break
		}
		refs = append(refs, ref)
	}
	if len(refs) == 0 {
		return s
	}

	trailer, ok := p.trailer()
	parts := refs
	if ok {
		parts = append(parts, trailer)
	}
	return strings.Join(parts, " ")
}

type tconParser struct {
	s string
}

func (p *tconParser) contentType() (string, bool) {
	if v, ok := p.escapedContentType(); ok {
		return v, ok
	}
	return p.v1ContentType()
}

// escapedContentType handles the "((" escape: the remainder of the
// string (including the literal "(") becomes the trailer and parsing
// stops, matching original_source's Parser::escaped_content_type.
func (p *tconParser) escapedContentType() (string, bool) {
	if !strings.HasPrefix(p.s, "((") {
		return "", false
	}
	rest := p.s[1:]
	p.s = ""
	return rest, true
}

func (p *tconParser) v1ContentType() (string, bool) {
	saved := p.s
	if !p.expect("(") {
		return "", false
	}

	var value string
	switch {
	case p.expect("RX"):
		value = "Remix"
	case p.expect("CR"):
		value = "Cover"
	default:
		n, ok := p.parseNumber()
		if !ok {
			p.s = saved
			return "", false
		}
		if n >= 0 && n < len(GenreList) {
			value = GenreList[n]
		} else {
			value = "(" + strconv.Itoa(n) + ")"
		}
	}

	if !p.expect(")") {
		p.s = saved
		return "", false
	}
	return value, true
}

func (p *tconParser) trailer() (string, bool) {
	if p.s == "" {
		return "", false
	}
	t := p.s
	p.s = ""
	return t, true
}

func (p *tconParser) expect(prefix string) bool {
	if strings.HasPrefix(p.s, prefix) {
		p.s = p.s[len(prefix):]
		return true
	}
	return false
}

func (p *tconParser) parseNumber() (int, bool) {
	i := 0
	for i < len(p.s) && p.s[i] >= '0' && p.s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(p.s[:i])
	if err != nil {
		return 0, false
	}
	p.s = p.s[i:]
	return n, true
}
