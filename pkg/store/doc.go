// Package store reads and writes persisted change logs.
//
// # Overview
//
// A change log is the list of [change.Change] records that [depgraph] turns
// into a dependency graph. The store keeps them as JSON so logs can be
// exported from any system that content-addresses its changes.
//
// # JSON Format
//
// The document has a single top-level array:
//
//	{
//	  "changes": [
//	    {"hash": "5d2c...e9", "deps": []},
//	    {"hash": "0a91...77", "deps": ["5d2c...e9"]}
//	  ]
//	}
//
// Each hash is 64 hexadecimal characters (32 bytes). "deps" may be omitted or
// empty for root changes. Unknown fields are ignored, so stores exported with
// extra per-change payload load unchanged.
//
// # Import
//
// Use [Load] to read a log from a file path, or [Read] to read from any
// io.Reader. Record and dependency order are preserved exactly. Malformed
// JSON or hashes yield an error with code [errors.ErrCodeCorruptStore]; the
// graph itself is not validated (dangling and duplicate dependencies load
// as-is).
//
// # Export
//
// Use [Save] or [Write] to persist a log in the same format. The DOT documents
// produced by [depgraph] are one-way and cannot be loaded back.
//
// [depgraph]: github.com/matzehuels/changegraph/pkg/depgraph
package store
