// Package response defines the response model the compression layer operates
// on: an ordered, case-insensitive header multimap and a response whose body
// is exactly one of five sealed representation variants.
//
// # Body variants
//
// A response body is one of:
//
//   - ReaderBody: the body is obtained by opening a readable stream on demand
//   - WriterBody: the body is produced by writing into a caller-supplied sink
//   - BytesBody: the body is an in-memory byte payload
//   - NoContent: the response has no body
//   - Upgrade: the response switches protocols and the connection is taken over
//
// The set is sealed (the Body interface has an unexported marker method), so
// every dispatch site in this module handles all five variants exhaustively.
//
// # Header purity
//
// Headers values are rewritten by cloning, never in place. Collaborators that
// hold a reference to a pre-transform response always observe its original
// headers.
package response
