// Package suffix implements the suffix portion of the TypeID identifier
// format: a 26-character, lexicographically sortable base32 encoding of a
// 128-bit UUID payload.
//
// A TypeID pairs a type-name prefix with this suffix. The suffix alone is a
// fixed-length text form of the UUID's 16 raw bytes, using the alphabet
// "0123456789abcdefghjkmnpqrstvwxyz". Because the alphabet is in ascending
// byte order and symbols are emitted most significant bits first, sorting
// encoded strings sorts the underlying 128-bit values, making suffixes
// built from UUIDv7 naturally time-ordered.
//
// Basic Usage:
//
//	// New suffix seeded from a UUIDv7
//	s, err := suffix.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(s.String()) // e.g. "01h455vb4pex5vsknk084sn02q"
//
//	// Parse a suffix from untrusted input
//	s, err := suffix.Parse("01h455vb4pex5vsknk084sn02q")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Convert to and from a UUID
//	s := suffix.FromUUID(id)
//	id := s.UUID()
//
// Validation:
//
// Parse is total over arbitrary input and never panics. Failures are
// reported as wrapped sentinel errors so callers can classify them with
// errors.Is:
//   - ErrInvalidLength: the input is not exactly 26 bytes
//   - ErrInvalidCharacter: a byte is outside the base32 alphabet
//   - ErrInvalidFirstCharacter: the first symbol maps to a value above 7,
//     which would need more than 128 payload bits
//
// Thread Safety:
//
// The codec is stateless beyond the immutable alphabet tables; all
// operations are safe for concurrent use without synchronization.
//
// This package does not generate or validate UUID versions; it consumes
// and produces github.com/google/uuid values and treats all 128 bits as
// opaque payload. UUID version and variant semantics belong to that
// library.
package suffix
