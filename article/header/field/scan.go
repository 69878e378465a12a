package field

import "unicode/utf8"

// Span identifies a region of a buffer by offsets. The extractors in this
// package never copy the input. They return a Span that refers to the bytes
// consumed and the caller decides when (and if) to copy those bytes.
type Span struct {
	Start int // offset of the first byte
	End   int // offset just after the last byte
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty returns true if the span covers no bytes.
func (s Span) IsEmpty() bool {
	return s.End <= s.Start
}

// Bytes returns the part of b covered by the span. The returned slice shares
// memory with b.
func (s Span) Bytes(b []byte) []byte {
	return b[s.Start:s.End]
}

// Line is the result of matching a single header field line.
type Line struct {
	Name    Span // the header name
	Content Span // the header content, empty if absent, includes any folds
	End     int  // offset just after the terminating CRLF
}

// takeASCIIByte consumes a single byte in the range 0x00 through 0x7f.
func takeASCIIByte(b []byte, at int) (Span, error) {
	if at >= len(b) || !IsASCII(b[at]) {
		return Span{}, errorAt(b, at, "ASCII byte")
	}
	return Span{at, at + 1}, nil
}

// takeAChar consumes a single A-CHAR.
func takeAChar(b []byte, at int) (Span, error) {
	s, err := takeASCIIByte(b, at)
	if err != nil || !IsAChar(b[at]) {
		return Span{}, errorAt(b, at, "A-CHAR")
	}
	return s, nil
}

// takeUTF8NonASCII consumes one non-ASCII character encoded as UTF-8. It tries
// each possible encoded length in turn and takes the shortest that is valid.
func takeUTF8NonASCII(b []byte, at int) (Span, error) {
	for n := 1; n <= utf8.UTFMax; n++ {
		if at+n > len(b) {
			break
		}
		if IsUTF8NonASCII(b[at : at+n]) {
			return Span{at, at + n}, nil
		}
	}

	err := errorAt(b, at, "UTF8-non-ascii")
	if at < len(b) && !utf8.FullRune(b[at:]) {
		err.Err = ErrIncomplete
	}
	return Span{}, err
}

// takePChar consumes a single P-CHAR, which is an A-CHAR or a UTF8-non-ascii.
func takePChar(b []byte, at int) (Span, error) {
	if s, err := takeAChar(b, at); err == nil {
		return s, nil
	}
	return takeUTF8NonASCII(b, at)
}

// skipSpace returns the offset of the first byte at or after at that is not
// horizontal whitespace.
func skipSpace(b []byte, at int) int {
	for at < len(b) && IsSpace(b[at]) {
		at++
	}
	return at
}

// hasCRLF returns true if a CRLF begins at offset at.
func hasCRLF(b []byte, at int) bool {
	return at+1 < len(b) && b[at] == '\r' && b[at+1] == '\n'
}

// TakeCRLF consumes a CRLF line terminator starting at offset at and returns
// the offset just after it.
func TakeCRLF(b []byte, at int) (int, error) {
	if !hasCRLF(b, at) {
		if at < len(b) && b[at] == '\r' {
			return at, errorAt(b, at+1, "LF")
		}
		return at, errorAt(b, at, "CRLF")
	}
	return at + 2, nil
}

// TakeToken consumes one or more P-CHAR starting at offset at. The match is
// greedy and stops at the first whitespace, control, or otherwise unmatched
// byte.
//
//	token = 1*P-CHAR
func TakeToken(b []byte, at int) (Span, error) {
	c, err := takePChar(b, at)
	if err != nil {
		return Span{}, err
	}

	end := c.End
	for {
		c, err = takePChar(b, end)
		if err != nil {
			return Span{at, end}, nil
		}
		end = c.End
	}
}

// TakeHeaderName consumes one or more A-NOTCOLON characters starting at offset
// at.
//
//	header-name = 1*A-NOTCOLON
func TakeHeaderName(b []byte, at int) (Span, error) {
	end := at
	for end < len(b) && IsANotColon(b[end]) {
		end++
	}

	if end == at {
		return Span{}, errorAt(b, at, "header name")
	}
	return Span{at, end}, nil
}

// TakeContent consumes the content of a header starting at offset at.
//
//	header-content = [WS] token *( [CRLF] WS token )
//
// This does not follow RFC 3977 precisely. Servers in the wild place
// whitespace between the last token of a line and the CRLF of a fold, so that
// is accepted, as is whitespace trailing the final token. The returned span
// covers every byte consumed, so folds are kept verbatim.
func TakeContent(b []byte, at int) (Span, error) {
	first, err := TakeToken(b, skipSpace(b, at))
	if err != nil {
		return Span{}, err
	}

	end := first.End
	for {
		next := end

		// the optional fold, with the non-compliant leading whitespace
		if ws := skipSpace(b, next); hasCRLF(b, ws) {
			next = ws + 2
		}

		// a continuation always starts with whitespace
		ws := skipSpace(b, next)
		if ws == next {
			break
		}

		tok, err := TakeToken(b, ws)
		if err != nil {
			break
		}
		end = tok.End
	}

	return Span{at, skipSpace(b, end)}, nil
}

// TakeLine consumes a single header line starting at offset at, including its
// terminating CRLF.
//
//	header = header-name ":" SP [header-content] CRLF
func TakeLine(b []byte, at int) (Line, error) {
	name, err := TakeHeaderName(b, at)
	if err != nil {
		return Line{}, err
	}

	p := name.End
	if p >= len(b) || b[p] != ':' {
		return Line{}, errorAt(b, p, `":"`)
	}
	p++

	if p >= len(b) || b[p] != ' ' {
		return Line{}, errorAt(b, p, "SP")
	}
	p++

	content := Span{p, p}
	if c, err := TakeContent(b, p); err == nil {
		content = c
		p = c.End
	}

	end, err := TakeCRLF(b, p)
	if err != nil {
		return Line{}, err
	}

	return Line{Name: name, Content: content, End: end}, nil
}
