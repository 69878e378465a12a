package field

import (
	"fmt"
	"io"
	"mime"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// Text converts the bytes of a header name or content to a string. Invalid
// UTF-8 is replaced with the Unicode replacement character, U+FFFD, rather
// than failing.
func Text(b []byte) string {
	s, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return strings.ToValidUTF8(string(b), "\uFFFD")
	}
	return string(s)
}

// Unfold removes the line breaks from a folded header content, leaving the
// continuation whitespace in place.
func Unfold(content string) string {
	return strings.NewReplacer("\r", "", "\n", "").Replace(content)
}

// CharsetReader returns a reader that transcodes input from the named
// character set into UTF-8. It is suitable for use with mime.WordDecoder and
// knows about every character set in golang.org/x/text/encoding/ianaindex.
func CharsetReader(charset string, input io.Reader) (io.Reader, error) {
	e, err := ianaindex.MIME.Encoding(charset)
	if err != nil {
		return nil, err
	}

	if e == nil {
		return nil, fmt.Errorf("no encoding found for charset %q", charset)
	}

	return e.NewDecoder().Reader(input), nil
}

// Decode transforms a single header content and looks for MIME word encoded
// values. When they are found, these are decoded into native unicode. The
// header parser never does this itself.
func Decode(content string) (string, error) {
	dec := &mime.WordDecoder{
		CharsetReader: CharsetReader,
	}

	if strings.Contains(content, "=?") {
		return dec.DecodeHeader(content)
	}

	return content, nil
}
