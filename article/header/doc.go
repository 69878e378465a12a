// Package header turns the header block of an NNTP article into Headers.
//
// The provided Parse() function is strict about the grammar of RFC 3977 with
// one exception: whitespace before the line break of a folded header is
// accepted, because servers send it. Content is kept exactly as it appeared,
// folds and all. Use the getter methods on Headers for decoded, unfolded, or
// typed values.
package header
