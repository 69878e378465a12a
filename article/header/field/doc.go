// Package field provides the byte-level grammar for the header block of an
// NNTP article, as given in RFC 3977 Appendix A.1. Each extractor works on a
// buffer and an offset and returns a Span of the bytes it matched or a
// *ParseError. Nothing here copies input. Turning spans into strings, and
// collecting the lines into a header, is left to the header package.
package field
