package header

import (
	"errors"

	"go.uber.org/zap"

	"github.com/zostay/go-nntp/article/header/field"
)

type parser struct {
	logger *zap.Logger
}

// ParseOption refers to options that may be passed to the Parse function to
// modify how the parser works.
type ParseOption func(pr *parser)

// WithLogger is a ParseOption that sets the logger that receives a debug
// record for every header line parsed. By default, nothing is logged.
func WithLogger(logger *zap.Logger) ParseOption {
	return func(pr *parser) {
		if logger != nil {
			pr.logger = logger
		}
	}
}

// Parse reads the header block of an article from the start of b. The block is
// one or more header lines followed by an empty line. It returns the headers
// and the rest of b following the empty line, which is the article body.
//
// Header names and contents are stored as found. Folded content keeps its
// line breaks and indentation. Bytes that are not valid UTF-8 are replaced
// with U+FFFD.
//
// If the block cannot be parsed, no headers are returned and the error is a
// *field.ParseError.
func Parse(b []byte, opts ...ParseOption) (*Headers, []byte, error) {
	pr := &parser{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(pr)
	}

	h := &Headers{}
	at := 0
	var lineErr error
	for {
		line, err := field.TakeLine(b, at)
		if err != nil {
			lineErr = err
			break
		}

		name := field.Text(line.Name.Bytes(b))
		content := field.Text(line.Content.Bytes(b))
		pr.logger.Debug("found header",
			zap.String("name", name),
			zap.String("content", content))

		h.add(name, content)
		at = line.End
	}

	if h.Lines() == 0 {
		return nil, nil, lineErr
	}

	end, err := field.TakeCRLF(b, at)
	if err != nil {
		return nil, nil, furthest(lineErr, err)
	}

	return h, b[end:], nil
}

// furthest returns whichever of the two parse errors got further into the
// input, preferring a.
func furthest(a, b error) error {
	var pa, pb *field.ParseError
	if !errors.As(a, &pa) {
		return b
	}
	if !errors.As(b, &pb) {
		return a
	}
	if pb.Offset > pa.Offset {
		return b
	}
	return a
}
