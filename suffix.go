package suffix

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
)

// Suffix represents the suffix portion of a TypeID: a 128-bit UUID
// payload rendered as a 26-character, lexicographically sortable
// base32 string. The zero value is Nil.
type Suffix [16]byte

// Nil is the zero suffix (all-zero payload). It encodes as
// "00000000000000000000000000".
var Nil Suffix

// New returns a suffix seeded from a freshly generated UUIDv7, so that
// suffixes created over time sort in creation order. Callers that need
// a different UUID version should build one with their UUID library
// and use FromUUID.
func New() (Suffix, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return Nil, err
	}
	return FromUUID(id), nil
}

// FromUUID creates a Suffix from a UUID. Every 128-bit value is
// representable; version and variant bits are carried through
// untouched and never interpreted.
func FromUUID(id uuid.UUID) Suffix {
	return Suffix(id)
}

// FromBytes creates a Suffix from a 16-byte payload slice
func FromBytes(b []byte) (Suffix, error) {
	var s Suffix
	if len(b) != 16 {
		return s, fmt.Errorf("%w: got %d bytes", ErrInvalidByteLength, len(b))
	}
	copy(s[:], b)
	return s, nil
}

// MustFromBytes is like FromBytes but panics on error
func MustFromBytes(b []byte) Suffix {
	s, err := FromBytes(b)
	if err != nil {
		panic(err)
	}
	return s
}

// Parse parses and validates a 26-character suffix string.
//
// Validation is byte-wise and fails fast, in this order:
//  1. the input must be exactly 26 bytes long, else ErrInvalidLength;
//  2. every byte must be in the Alphabet, else ErrInvalidCharacter
//     (the wrapped message names the offending byte and position);
//  3. the first byte must map to a value of 7 or less, else
//     ErrInvalidFirstCharacter.
//
// Parse never panics, for input of any length or content.
func Parse(str string) (Suffix, error) {
	s, err := parse(str)
	observer.ObserveDecode(str, err)
	return s, err
}

func parse(str string) (Suffix, error) {
	var s Suffix
	if len(str) != EncodedLen {
		return s, fmt.Errorf("%w: got %d", ErrInvalidLength, len(str))
	}
	var enc [EncodedLen]byte
	copy(enc[:], str)
	for i := 0; i < EncodedLen; i++ {
		if decodeTable[enc[i]] == invalidByte {
			return s, fmt.Errorf("%w: byte 0x%02x at position %d", ErrInvalidCharacter, enc[i], i)
		}
	}
	if decodeTable[enc[0]] > 7 {
		return s, fmt.Errorf("%w: got %q", ErrInvalidFirstCharacter, enc[0])
	}
	decodeBase32((*[16]byte)(&s), &enc)
	return s, nil
}

// MustParse is like Parse but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables.
func MustParse(str string) Suffix {
	s, err := Parse(str)
	if err != nil {
		panic(fmt.Sprintf("suffix: Parse(%q): %v", str, err))
	}
	return s
}

// String returns the canonical 26-character base32 encoding of the
// suffix. Every payload encodes; String never fails.
func (s Suffix) String() string {
	return s.encode()
}

// encode renders the payload and reports the result to the observer.
func (s Suffix) encode() string {
	var buf [EncodedLen]byte
	encodeBase32(&buf, (*[16]byte)(&s))
	out := string(buf[:])
	observer.ObserveEncode(out)
	return out
}

// UUID returns the payload as a UUID. The conversion is infallible;
// interpreting version and variant bits is the caller's concern.
func (s Suffix) UUID() uuid.UUID {
	return uuid.UUID(s)
}

// Bytes returns the 16-byte payload as a byte slice
func (s Suffix) Bytes() []byte {
	return s[:]
}

// IsNil returns true if the suffix is the zero suffix
func (s Suffix) IsNil() bool {
	return s == Nil
}

// Compare returns an integer comparing two suffixes byte-wise over the
// payload. The result will be 0 if s==other, -1 if s < other, and +1
// if s > other. This order agrees with lexicographic order of the
// encoded strings.
func (s Suffix) Compare(other Suffix) int {
	return bytes.Compare(s[:], other[:])
}

// Equal returns true if s and other carry the same payload
func (s Suffix) Equal(other Suffix) bool {
	return s == other
}

// MarshalText implements the encoding.TextMarshaler interface.
// The suffix marshals as its 26-character string.
func (s Suffix) MarshalText() ([]byte, error) {
	return []byte(s.encode()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// The input runs through the full Parse validation and fails with the
// same error taxonomy.
func (s *Suffix) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface
func (s Suffix) MarshalBinary() ([]byte, error) {
	return s[:], nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface
func (s *Suffix) UnmarshalBinary(data []byte) error {
	if len(data) != 16 {
		return fmt.Errorf("%w: got %d bytes", ErrInvalidByteLength, len(data))
	}
	copy(s[:], data)
	return nil
}
