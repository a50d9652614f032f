// Package rankcore implements the ranking core of a full-text search
// engine: given a parsed query tree and the raw posting lists it
// resolves to, it produces a ranked, paginated list of documents.
//
// The core is intentionally blind to tokenisation, query parsing,
// index persistence, and transport. It consumes two external
// collaborators -- a ReadTransaction over the index and a Traverser
// that walks a caller-built query tree -- and turns their output into
// a SortResult via Search.
package rankcore
