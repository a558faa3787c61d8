// Package change defines the content-addressed change records that
// changegraph turns into dependency graphs.
//
// A [Change] is identified by a [Hash] and lists the hashes of the changes it
// depends on. Hashes are plain 32-byte values with structural equality and a
// byte-wise total order, so they can be compared, sorted and used as map keys
// without any helper type.
package change

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
)

// HashSize is the length in bytes of a change hash (SHA-256).
const HashSize = 32

// ErrInvalidHash is returned by [ParseHash] when the input is not
// 2*[HashSize] hexadecimal characters.
var ErrInvalidHash = errors.New("invalid change hash")

// Hash identifies a change by the digest of its contents.
// The zero value is a valid (all-zero) hash.
type Hash [HashSize]byte

// String returns the lowercase hexadecimal encoding of h.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// Compare returns -1, 0 or +1 depending on whether h sorts before, equal to,
// or after other in byte-lexicographic order.
// It has the signature expected by [slices.SortFunc].
func (h Hash) Compare(other Hash) int {
	return bytes.Compare(h[:], other[:])
}

// IsZero reports whether h is the all-zero hash.
func (h Hash) IsZero() bool {
	return h == Hash{}
}

// MarshalText encodes h as lowercase hex.
func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText decodes a hex hash produced by [Hash.MarshalText].
func (h *Hash) UnmarshalText(text []byte) error {
	parsed, err := ParseHash(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// ParseHash decodes a hex-encoded hash. Upper- and lowercase digits are
// accepted; the input must decode to exactly [HashSize] bytes.
func ParseHash(s string) (Hash, error) {
	var h Hash
	if len(s) != 2*HashSize {
		return h, fmt.Errorf("%w: %q has %d characters, want %d", ErrInvalidHash, s, len(s), 2*HashSize)
	}
	if _, err := hex.Decode(h[:], []byte(s)); err != nil {
		return h, fmt.Errorf("%w: %q: %v", ErrInvalidHash, s, err)
	}
	return h, nil
}

// MustParseHash is like [ParseHash] but panics on error.
// It is intended for tests and package-level fixtures.
func MustParseHash(s string) Hash {
	h, err := ParseHash(s)
	if err != nil {
		panic(err)
	}
	return h
}

// Change is a single record of a change log: its own hash plus the hashes
// it depends on, in the order the log declares them.
//
// Deps may be empty (a root change) and may reference hashes that are not
// part of the same log.
type Change struct {
	Hash Hash
	Deps []Hash
}

// IsRoot reports whether c has no dependencies.
func (c Change) IsRoot() bool {
	return len(c.Deps) == 0
}
