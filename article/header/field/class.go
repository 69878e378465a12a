package field

import "unicode/utf8"

// octetClass describes the character classes a single byte belongs to.
//
// From RFC 3977 section 9.8:
//
//	A-CHAR     = %x21-7E
//	A-NOTCOLON = %x21-39 / %x3B-7E  ; exclude ":"
//	WS         = 1*(SP / TAB)
type octetClass byte

const (
	octetASCII octetClass = 1 << iota
	octetAChar
	octetANotColon
	octetSpace
)

var octetClasses [256]octetClass

func init() {
	for c := 0; c < 256; c++ {
		var t octetClass
		if c < 0x80 {
			t |= octetASCII
		}
		if c >= 0x21 && c <= 0x7e {
			t |= octetAChar
			if c != ':' {
				t |= octetANotColon
			}
		}
		if c == ' ' || c == '\t' {
			t |= octetSpace
		}
		octetClasses[c] = t
	}
}

// IsANotColon returns true if c is a printable ASCII character other than a
// colon. These are the characters permitted in a header name.
func IsANotColon(c byte) bool { return octetClasses[c]&octetANotColon != 0 }

// IsAChar returns true if c is any ASCII character from '!' through '~'.
func IsAChar(c byte) bool { return octetClasses[c]&octetAChar != 0 }

// IsASCII returns true if c is in the range 0x00 through 0x7f.
func IsASCII(c byte) bool { return octetClasses[c]&octetASCII != 0 }

// IsSpace returns true for the horizontal whitespace characters, space and tab.
func IsSpace(c byte) bool { return octetClasses[c]&octetSpace != 0 }

// IsUTF8NonASCII returns true if b is valid UTF-8 and none of its bytes are
// ASCII.
func IsUTF8NonASCII(b []byte) bool {
	if !utf8.Valid(b) {
		return false
	}
	for _, c := range b {
		if IsASCII(c) {
			return false
		}
	}
	return true
}
