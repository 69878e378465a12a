// Package nntp is the root of a small library for reading the articles an NNTP
// server returns. Connecting to a server and reading responses is left to the
// caller. This library picks up once the complete bytes of an article response
// are in hand.
//
// The work is split according to part of the article. The article package
// splits a response into headers and body. The article/header package parses
// the header block into Headers, a collection of every header line found,
// grouped by name. The article/header/field package holds the byte-level
// grammar from RFC 3977 Appendix A.1 on which the header parser is built.
//
// The header parser follows the RFC closely, with one exception: servers put
// whitespace before the line break of a folded header, which the grammar does
// not allow, and so this is accepted. Header content is kept byte-for-byte as
// it appeared on the wire, including folds, so that nothing is lost.
// Unfolding and decoding of MIME encoded words are available on request
// through Headers getters.
//
// The cmd/nntpheaders tool prints the headers of saved articles and is handy
// for checking how a server's output parses.
package nntp
