// Package article splits a complete NNTP article response into its headers
// and its body. Reading the response from the connection and any
// dot-unstuffing of the body are the transport's job. This package expects
// the full response bytes and leaves the body untouched.
//
//	a, err := article.Parse(resp, article.WithStatusLine())
//	if err != nil {
//	  panic(err)
//	}
//
//	subject, err := a.Header().GetValue(header.Subject)
package article
