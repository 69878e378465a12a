package header

import (
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/araddon/dateparse"
	"github.com/zostay/go-addr/pkg/addr"

	"github.com/zostay/go-nntp/article/header/field"
)

// Errors returned by the Headers getter methods.
var (
	// ErrNoSuchField is returned when the named header is not present.
	ErrNoSuchField = errors.New("no such header field")

	// ErrManyFields is returned when a single value was requested, but the
	// named header appears on more than one line.
	ErrManyFields = errors.New("many header fields found")
)

// Common header names found on NNTP articles, written as they usually appear
// on the wire. Lookups are case-sensitive, so these only match servers that
// use the same case.
const (
	Date            = "Date"
	Expires         = "Expires"
	From            = "From"
	Lines           = "Lines"
	MessageID       = "Message-ID"
	Newsgroups      = "Newsgroups"
	NNTPPostingDate = "NNTP-Posting-Date"
	NNTPPostingHost = "NNTP-Posting-Host"
	Organization    = "Organization"
	Path            = "Path"
	References      = "References"
	ReplyTo         = "Reply-To"
	Sender          = "Sender"
	Subject         = "Subject"
	Xref            = "Xref"
)

// Header holds every content found for a single header name, in the order
// the lines appeared in the header block.
type Header struct {
	name    string
	content []string
}

// Name returns the header name.
func (h *Header) Name() string {
	return h.name
}

// Content returns a copy of the contents of the header, one per line the name
// appeared on.
func (h *Header) Content() []string {
	cs := make([]string, len(h.content))
	copy(cs, h.content)
	return cs
}

// First returns the content of the first line with this name.
func (h *Header) First() string {
	if len(h.content) == 0 {
		return ""
	}
	return h.content[0]
}

// Len returns the number of lines this header appeared on.
func (h *Header) Len() int {
	return len(h.content)
}

// Headers is the collection of headers parsed from an article. Each distinct
// name has one Header. Lookup is by exact, case-sensitive name.
type Headers struct {
	inner map[string]*Header
	order []string
	lines int
}

// add appends content to the named header, creating it if needed.
func (h *Headers) add(name, content string) {
	if h.inner == nil {
		h.inner = make(map[string]*Header, 20)
	}

	hdr, found := h.inner[name]
	if !found {
		hdr = &Header{name: name, content: make([]string, 0, 1)}
		h.inner[name] = hdr
		h.order = append(h.order, name)
	}

	hdr.content = append(hdr.content, content)
	h.lines++
}

// Len returns the number of distinct header names.
func (h *Headers) Len() int {
	return len(h.inner)
}

// Lines returns the number of header lines that were parsed. This is larger
// than Len() when a name is repeated.
func (h *Headers) Lines() int {
	return h.lines
}

// Names returns the distinct header names in the order each was first seen.
func (h *Headers) Names() []string {
	ns := make([]string, len(h.order))
	copy(ns, h.order)
	return ns
}

// Each calls fn for every header in the order each name was first seen.
func (h *Headers) Each(fn func(*Header)) {
	for _, n := range h.order {
		fn(h.inner[n])
	}
}

// Get returns the named header or ErrNoSuchField.
func (h *Headers) Get(name string) (*Header, error) {
	hdr, found := h.inner[name]
	if !found {
		return nil, ErrNoSuchField
	}
	return hdr, nil
}

// GetValue returns the content of the named header.
//
// If the header is not present, it returns an empty string with
// ErrNoSuchField. If the name appears on multiple lines, it returns the first
// content along with ErrManyFields.
func (h *Headers) GetValue(name string) (string, error) {
	hdr, err := h.Get(name)
	if err != nil {
		return "", err
	}

	if hdr.Len() > 1 {
		return hdr.First(), ErrManyFields
	}

	return hdr.First(), nil
}

// GetAll returns every content of the named header or ErrNoSuchField.
func (h *Headers) GetAll(name string) ([]string, error) {
	hdr, err := h.Get(name)
	if err != nil {
		return nil, err
	}
	return hdr.Content(), nil
}

// GetDecoded returns the content of the named header, unfolded and with any
// MIME encoded words decoded. It fails in the same way as GetValue(). If the
// encoded words cannot be decoded, the unfolded content is returned with the
// decoding error.
func (h *Headers) GetDecoded(name string) (string, error) {
	v, err := h.GetValue(name)
	if err != nil {
		return v, err
	}

	v = field.Unfold(v)
	dv, err := field.Decode(v)
	if err != nil {
		return v, err
	}

	return dv, nil
}

// ParseTime parses a header content as a date. It tries the RFC 5322 format
// first and falls back to a parser that accepts many other formats.
func ParseTime(content string) (time.Time, error) {
	content = field.Unfold(content)

	t, err := mail.ParseDate(content)
	if err == nil {
		return t, nil
	}

	t, err = dateparse.ParseAny(content)
	if err == nil {
		return t, nil
	}

	return t, fmt.Errorf("time string %q cannot be parsed", content)
}

// GetTime returns the named header parsed as a time.Time. It fails in the same
// way as GetValue() or with the error from ParseTime().
func (h *Headers) GetTime(name string) (time.Time, error) {
	v, err := h.GetValue(name)
	if err != nil {
		return time.Time{}, err
	}
	return ParseTime(v)
}

// GetAddressList returns the named header parsed as a list of email addresses.
// It fails in the same way as GetValue() or when the content is not an
// address list.
func (h *Headers) GetAddressList(name string) (addr.AddressList, error) {
	v, err := h.GetDecoded(name)
	if err != nil {
		return nil, err
	}
	return addr.ParseEmailAddressList(v)
}
