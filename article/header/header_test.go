package header_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-nntp/article/header"
)

const getterBlock = "Subject: =?utf-8?b?4pqA4pqB4pqC4pqD4pqE4pqF?=\r\n" +
	"From: Jane Developer <jdev@mozilla.com>\r\n" +
	"Date: Thu, 4 Jun 2020 10:13:40 -0700\r\n" +
	"NNTP-Posting-Date: Thu, 04 Jun 2020 12:13:40 -0500\r\n" +
	"Expires: soon\r\n" +
	"X-Received: a\r\n" +
	"X-Received: b\r\n" +
	"References: <a@b>\r\n <c@d>\r\n" +
	"\r\n"

func parseGetterBlock(t *testing.T) *header.Headers {
	t.Helper()

	h, _, err := header.Parse([]byte(getterBlock))
	require.NoError(t, err)
	return h
}

func TestHeader(t *testing.T) {
	t.Parallel()

	h := parseGetterBlock(t)
	xr, err := h.Get("X-Received")
	require.NoError(t, err)
	assert.Equal(t, "X-Received", xr.Name())
	assert.Equal(t, 2, xr.Len())
	assert.Equal(t, "a", xr.First())

	// Content returns a copy
	c := xr.Content()
	c[0] = "changed"
	assert.Equal(t, []string{"a", "b"}, xr.Content())

	assert.Equal(t, "", (&header.Header{}).First())
}

func TestHeaders_Zero(t *testing.T) {
	t.Parallel()

	h := &header.Headers{}
	assert.Equal(t, 0, h.Len())
	assert.Equal(t, 0, h.Lines())
	assert.Empty(t, h.Names())

	_, err := h.Get(header.Subject)
	assert.ErrorIs(t, err, header.ErrNoSuchField)

	called := false
	h.Each(func(*header.Header) { called = true })
	assert.False(t, called)
}

func TestHeaders_GetValue(t *testing.T) {
	t.Parallel()

	h := parseGetterBlock(t)

	v, err := h.GetValue(header.Subject)
	assert.NoError(t, err)
	assert.Equal(t, "=?utf-8?b?4pqA4pqB4pqC4pqD4pqE4pqF?=", v)

	v, err = h.GetValue("X-Received")
	assert.ErrorIs(t, err, header.ErrManyFields)
	assert.Equal(t, "a", v)

	v, err = h.GetValue("Nope")
	assert.ErrorIs(t, err, header.ErrNoSuchField)
	assert.Equal(t, "", v)

	v, err = h.GetValue(header.References)
	assert.NoError(t, err)
	assert.Equal(t, "<a@b>\r\n <c@d>", v)
}

func TestHeaders_GetAll(t *testing.T) {
	t.Parallel()

	h := parseGetterBlock(t)

	vs, err := h.GetAll("X-Received")
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, vs)

	vs, err = h.GetAll("Nope")
	assert.ErrorIs(t, err, header.ErrNoSuchField)
	assert.Nil(t, vs)
}

func TestHeaders_GetDecoded(t *testing.T) {
	t.Parallel()

	h := parseGetterBlock(t)

	v, err := h.GetDecoded(header.Subject)
	assert.NoError(t, err)
	assert.Equal(t, "⚀⚁⚂⚃⚄⚅", v)

	v, err = h.GetDecoded(header.References)
	assert.NoError(t, err)
	assert.Equal(t, "<a@b> <c@d>", v)

	_, err = h.GetDecoded("Nope")
	assert.ErrorIs(t, err, header.ErrNoSuchField)
}

func TestHeaders_GetTime(t *testing.T) {
	t.Parallel()

	h := parseGetterBlock(t)
	want := time.Date(2020, time.June, 4, 17, 13, 40, 0, time.UTC)

	d, err := h.GetTime(header.Date)
	assert.NoError(t, err)
	assert.True(t, want.Equal(d), "got %v", d)

	d, err = h.GetTime(header.NNTPPostingDate)
	assert.NoError(t, err)
	assert.True(t, want.Equal(d), "got %v", d)

	_, err = h.GetTime(header.Expires)
	assert.Error(t, err)

	_, err = h.GetTime("Nope")
	assert.ErrorIs(t, err, header.ErrNoSuchField)
}

func TestParseTime(t *testing.T) {
	t.Parallel()

	d, err := header.ParseTime("2020-06-04 17:13:40")
	assert.NoError(t, err)
	assert.Equal(t, 2020, d.Year())
	assert.Equal(t, time.June, d.Month())
	assert.Equal(t, 4, d.Day())

	_, err = header.ParseTime("not a date")
	assert.Error(t, err)
}

func TestHeaders_GetAddressList(t *testing.T) {
	t.Parallel()

	h := parseGetterBlock(t)

	al, err := h.GetAddressList(header.From)
	require.NoError(t, err)
	assert.Len(t, al, 1)
	assert.Contains(t, al.String(), "jdev@mozilla.com")

	_, err = h.GetAddressList(header.Sender)
	assert.ErrorIs(t, err, header.ErrNoSuchField)
}
