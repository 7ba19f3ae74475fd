// Package sharedtag provides a serializable encoding of a version tag
// salted with a random per-process instance identifier.
//
// Raw ordinals restart from 1 on every process start, so two tags from
// different process lifetimes can carry the same ordinal while meaning
// entirely different things. A SharedTag binds the ordinal to the
// process instance that minted it: a SharedTag persisted before a
// restart never compares equal to one minted after, because the
// instance identifiers differ.
//
// The wire form is a fixed-width 24-byte composite, the 16-byte
// instance identifier followed by the big-endian ordinal, rendered as
// unpadded URL-safe base64 (32 characters). Decode rejects anything
// else.
package sharedtag

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/google/uuid"

	versiontag "github.com/danylaporte/version-tag"
	tagerrors "github.com/danylaporte/version-tag/errors"
)

// EncodedLen is the length of the text form produced by Encode.
const EncodedLen = 32

// binaryLen is the width of the fixed binary composite.
const binaryLen = 24

// instance returns the process-wide random instance identifier,
// minting it on first use. Concurrent first callers all observe the
// same value.
var instance = sync.OnceValue(uuid.New)

// Instance returns the random identifier of this process instance.
// It is generated once, lazily, from a cryptographically adequate
// source, and stays fixed for the process lifetime.
func Instance() uuid.UUID {
	return instance()
}

// SharedTag is a version tag bound to the process instance that minted
// it. The zero value is not a valid shared tag; obtain one via Share
// or Decode.
type SharedTag struct {
	instance uuid.UUID
	ordinal  uint64
}

// Share binds a tag to this process instance.
func Share(t versiontag.Tag) SharedTag {
	return SharedTag{instance: Instance(), ordinal: t.Uint64()}
}

// Instance returns the identifier of the process instance that minted
// this shared tag.
func (s SharedTag) Instance() uuid.UUID { return s.instance }

// Ordinal returns the ordinal component.
func (s SharedTag) Ordinal() uint64 { return s.ordinal }

// Tag recovers the underlying version tag. Only meaningful inside the
// process instance that minted the shared tag; check Instance against
// the package-level Instance() before trusting the result.
func (s SharedTag) Tag() versiontag.Tag {
	return versiontag.FromUint64(s.ordinal)
}

// Equal reports whether both the instance identifier and the ordinal
// match exactly. Equal ordinals from different process lifetimes are
// not equal.
func (s SharedTag) Equal(other SharedTag) bool {
	return s.instance == other.instance && s.ordinal == other.ordinal
}

// EqualPtr compares against an optional counterpart. A nil pointer
// means "no tag present" and is always unequal, never an error.
func (s SharedTag) EqualPtr(other *SharedTag) bool {
	return other != nil && s.Equal(*other)
}

// appendBinary writes the fixed-width composite.
func (s SharedTag) appendBinary(b []byte) []byte {
	b = append(b, s.instance[:]...)
	return binary.BigEndian.AppendUint64(b, s.ordinal)
}

// Encode renders the shared tag in its transport-safe text form.
func (s SharedTag) Encode() string {
	return base64.RawURLEncoding.EncodeToString(s.appendBinary(make([]byte, 0, binaryLen)))
}

// String implements fmt.Stringer with the same text form as Encode.
func (s SharedTag) String() string {
	return s.Encode()
}

// Decode parses the text form produced by Encode. Malformed input
// (wrong length, non-URL-safe alphabet, padding) is rejected with a
// decode error; Decode never returns a silently wrong tag.
func Decode(encoded string) (SharedTag, error) {
	if len(encoded) != EncodedLen {
		return SharedTag{}, tagerrors.NewDecodeError(tagerrors.OpDecode,
			fmt.Errorf("invalid length %d, want %d", len(encoded), EncodedLen))
	}
	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return SharedTag{}, tagerrors.NewDecodeError(tagerrors.OpDecode,
			fmt.Errorf("invalid base64: %w", err))
	}
	return decodeBinary(raw)
}

func decodeBinary(raw []byte) (SharedTag, error) {
	if len(raw) != binaryLen {
		return SharedTag{}, tagerrors.NewDecodeError(tagerrors.OpDecode,
			fmt.Errorf("invalid composite width %d bytes, want %d", len(raw), binaryLen))
	}
	var s SharedTag
	copy(s.instance[:], raw[:16])
	s.ordinal = binary.BigEndian.Uint64(raw[16:])
	return s, nil
}

// MarshalText implements encoding.TextMarshaler.
func (s SharedTag) MarshalText() ([]byte, error) {
	return []byte(s.Encode()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *SharedTag) UnmarshalText(text []byte) error {
	decoded, err := Decode(string(text))
	if err != nil {
		return err
	}
	*s = decoded
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler with the raw
// 24-byte composite.
func (s SharedTag) MarshalBinary() ([]byte, error) {
	return s.appendBinary(make([]byte, 0, binaryLen)), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (s *SharedTag) UnmarshalBinary(data []byte) error {
	decoded, err := decodeBinary(data)
	if err != nil {
		return err
	}
	*s = decoded
	return nil
}
