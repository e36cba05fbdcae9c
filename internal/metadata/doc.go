// Package metadata persists the collection's metadata records.
//
// The Writer handles one record: pretty-printed 2-space JSON at
// <root>/<index> (extensionless, so the name doubles as a token URI path
// segment), or under a per-token-type subfolder when separation is on.
// The Pipeline drives a full run over every index in the collection.
package metadata
