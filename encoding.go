package suffix

import "encoding/binary"

// Alphabet is the base32 alphabet used by the TypeID suffix encoding.
// It is Crockford's base32 in strict form: lowercase only, no hyphens,
// and a single canonical symbol per value. The symbols are in
// ascending byte order, so lexicographic order of encoded strings
// matches numeric order of the payload. This sequence is fixed by the
// TypeID specification and must never change.
const Alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// EncodedLen is the exact length of an encoded suffix string.
const EncodedLen = 26

// invalidByte marks bytes outside the alphabet in decodeTable.
const invalidByte = 0xFF

// decodeTable maps an input byte to its 5-bit symbol value, with
// invalidByte for every byte not in the Alphabet. Built once at init
// and read-only thereafter.
var decodeTable [256]byte

func init() {
	for i := range decodeTable {
		decodeTable[i] = invalidByte
	}
	for i := 0; i < len(Alphabet); i++ {
		decodeTable[Alphabet[i]] = byte(i)
	}
}

// encodeBase32 packs a 16-byte payload into 26 base32 symbols.
// The payload is the low 128 bits of a 130-bit field whose two high
// bits are zero; symbols are emitted most significant first, so the
// first symbol carries only 3 payload bits and always maps to a value
// in [0, 7].
func encodeBase32(dst *[EncodedLen]byte, src *[16]byte) {
	hi := binary.BigEndian.Uint64(src[0:8])
	lo := binary.BigEndian.Uint64(src[8:16])
	for i := EncodedLen - 1; i >= 0; i-- {
		dst[i] = Alphabet[lo&0x1F]
		lo = lo>>5 | hi<<59
		hi >>= 5
	}
}

// decodeBase32 unpacks 26 base32 symbols into a 16-byte payload,
// keeping the low 128 bits of the 130-bit field. The caller must have
// validated every symbol against decodeTable and range-checked the
// first symbol to a value <= 7.
func decodeBase32(dst *[16]byte, src *[EncodedLen]byte) {
	var hi, lo uint64
	for i := 0; i < EncodedLen; i++ {
		hi = hi<<5 | lo>>59
		lo = lo<<5 | uint64(decodeTable[src[i]])
	}
	binary.BigEndian.PutUint64(dst[0:8], hi)
	binary.BigEndian.PutUint64(dst[8:16], lo)
}
