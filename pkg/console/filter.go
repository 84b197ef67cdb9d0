// Package console implements the operator-facing output stream: a line
// filter that rewrites git's stderr for display, and a log sink that can
// delay output for a grace window so fast operations stay silent.
package console

import "bytes"

// Filter rewrites a subprocess's diagnostic stream for display. Lines whose
// first character is a space or 'F' are dropped entirely; they belong to
// git's per-fetch ref summary ("From <url>", " <sha>..<sha> ...") which
// describes mirror-internal state and means nothing to the caller. Every
// other line is prefixed with the program tag, unless it already carries it.
//
// Filter state persists across calls, so the input may be split at
// arbitrary chunk boundaries.
type Filter struct {
	tag []byte

	state   filterState
	matched int // tag bytes matched while in filterTagMatch
}

type filterState int

const (
	filterLineStart filterState = iota
	filterTagMatch
	filterMidLine
	filterDropping
)

// NewFilter returns a Filter that prefixes kept lines with "<tag>: ".
func NewFilter(tag string) *Filter {
	return &Filter{tag: []byte(tag + ": ")}
}

// Apply transforms the next chunk of the stream and returns the bytes to
// display. The empty result is valid: the whole chunk may have been dropped,
// or held back until a later chunk decides its line's fate.
func (f *Filter) Apply(chunk []byte) []byte {
	var out bytes.Buffer
	for _, c := range chunk {
		eol := c == '\n' || c == '\r'
		switch f.state {
		case filterDropping:
			if eol {
				f.state = filterLineStart
			}
		case filterLineStart:
			if c == ' ' || c == 'F' {
				f.state = filterDropping
				continue
			}
			if c == f.tag[0] {
				f.state = filterTagMatch
				f.matched = 1
				continue
			}
			out.Write(f.tag)
			f.writeBody(&out, c, eol)
		case filterTagMatch:
			if !eol && c == f.tag[f.matched] {
				f.matched++
				if f.matched == len(f.tag) {
					// Line is already tagged; keep it as-is.
					out.Write(f.tag)
					f.state = filterMidLine
				}
				continue
			}
			// Not a repeated tag after all. Prefix and replay what was held.
			out.Write(f.tag)
			out.Write(f.tag[:f.matched])
			f.writeBody(&out, c, eol)
		case filterMidLine:
			f.writeBody(&out, c, eol)
		}
	}
	return out.Bytes()
}

// Flush returns any bytes still held back by an unfinished tag match. It
// must be called once the stream has ended, or a trailing unterminated line
// could be lost.
func (f *Filter) Flush() []byte {
	if f.state != filterTagMatch {
		return nil
	}
	var out bytes.Buffer
	out.Write(f.tag)
	out.Write(f.tag[:f.matched])
	f.state = filterMidLine
	f.matched = 0
	return out.Bytes()
}

func (f *Filter) writeBody(out *bytes.Buffer, c byte, eol bool) {
	out.WriteByte(c)
	if eol {
		f.state = filterLineStart
	} else {
		f.state = filterMidLine
	}
}
