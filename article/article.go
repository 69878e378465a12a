package article

import (
	"bytes"
	"io"

	"github.com/zostay/go-nntp/article/header"
)

// Article is a parsed article response: the headers and the body that
// followed them.
type Article struct {
	status string
	header *header.Headers
	body   []byte
}

// StatusLine returns the response status line without its CRLF. It is empty
// unless the article was parsed with WithStatusLine().
func (a *Article) StatusLine() string {
	return a.status
}

// Header returns the article headers.
func (a *Article) Header() *header.Headers {
	return a.header
}

// Body returns the bytes following the header block, exactly as received.
func (a *Article) Body() []byte {
	return a.body
}

// BodyReader returns an io.Reader over Body().
func (a *Article) BodyReader() io.Reader {
	return bytes.NewReader(a.body)
}
