package suffix

import "errors"

var (
	// ErrInvalidLength indicates that the suffix string is not exactly 26 characters
	ErrInvalidLength = errors.New("suffix: invalid length (expected 26 characters)")

	// ErrInvalidCharacter indicates that the suffix string contains a character
	// outside the base32 alphabet
	ErrInvalidCharacter = errors.New("suffix: invalid character (not in base32 alphabet)")

	// ErrInvalidFirstCharacter indicates that the first character maps to a value
	// greater than 7, which would require more than 128 payload bits
	ErrInvalidFirstCharacter = errors.New("suffix: invalid first character (payload would exceed 128 bits)")

	// ErrInvalidByteLength indicates that a raw payload has incorrect length
	ErrInvalidByteLength = errors.New("suffix: invalid payload length (expected 16 bytes)")
)
