package article

import (
	"bytes"
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/zostay/go-nntp/article/header"
	"github.com/zostay/go-nntp/article/header/field"
)

// DefaultMaxLength is the default maximum number of bytes ParseReader will read
// before giving up.
const DefaultMaxLength = 1 << 20

// Errors that occur during parsing.
var (
	// ErrNoStatusLine is returned when WithStatusLine() is set, but the input
	// has no CRLF terminated first line.
	ErrNoStatusLine = errors.New("the response status line is missing")

	// ErrLargeArticle is returned by ParseReader when the input is longer than
	// the configured WithMaxLength option (or the default, DefaultMaxLength).
	ErrLargeArticle = errors.New("the article exceeds the maximum parse length")
)

type parser struct {
	statusLine bool
	maxLength  int
	logger     *zap.Logger
}

// ParseOption refers to options that may be passed to Parse or ParseReader to
// modify how the parser works.
type ParseOption func(pr *parser)

// WithStatusLine is a ParseOption that tells the parser the input starts with
// the response status line (e.g., "220 0 <id@example.com>"). That line is
// kept on the Article and parsing of the header block begins after it.
func WithStatusLine() ParseOption {
	return func(pr *parser) { pr.statusLine = true }
}

// WithMaxLength is a ParseOption that sets the maximum number of bytes
// ParseReader will read. Setting this to a value less than or equal to 0 will
// result in there being no maximum length. The default value is
// DefaultMaxLength.
func WithMaxLength(n int) ParseOption {
	return func(pr *parser) { pr.maxLength = n }
}

// WithLogger is a ParseOption that sets the logger passed on to the header
// parser.
func WithLogger(logger *zap.Logger) ParseOption {
	return func(pr *parser) {
		if logger != nil {
			pr.logger = logger
		}
	}
}

func newParser(opts []ParseOption) *parser {
	pr := &parser{
		maxLength: DefaultMaxLength,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(pr)
	}
	return pr
}

// Parse splits the bytes of an article response into an Article. The body
// shares memory with b.
func Parse(b []byte, opts ...ParseOption) (*Article, error) {
	return newParser(opts).parse(b)
}

// ParseReader reads the whole article from r and then parses it as Parse
// does.
func ParseReader(r io.Reader, opts ...ParseOption) (*Article, error) {
	pr := newParser(opts)

	if pr.maxLength > 0 {
		r = io.LimitReader(r, int64(pr.maxLength)+1)
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if pr.maxLength > 0 && len(b) > pr.maxLength {
		return nil, ErrLargeArticle
	}

	return pr.parse(b)
}

func (pr *parser) parse(b []byte) (*Article, error) {
	var status string
	if pr.statusLine {
		ix := bytes.Index(b, []byte("\r\n"))
		if ix < 0 {
			return nil, ErrNoStatusLine
		}
		status = field.Text(b[:ix])
		b = b[ix+2:]
	}

	h, body, err := header.Parse(b, header.WithLogger(pr.logger))
	if err != nil {
		return nil, err
	}

	pr.logger.Debug("parsed article",
		zap.Int("headers", h.Len()),
		zap.Int("lines", h.Lines()),
		zap.Int("bodyLength", len(body)))

	return &Article{
		status: status,
		header: h,
		body:   body,
	}, nil
}
