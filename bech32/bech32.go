// Copyright (c) 2024 The btc-vision developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

import (
	"strings"
)

// charset is the set of characters used in the data section of bech32
// strings.  Note that this is ordered, such that for a given charset[i], i is
// the binary value of the character.
const charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// gen encodes the generator polynomial for the bech32 BCH checksum.
var gen = []int{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}

// charsetRev is a mapping of 8-bit ascii characters to the charset positions
// used for decoding.  Invalid characters map to -1.  It is built once during
// package initialization and never written afterwards, so concurrent decodes
// share it without locking.
var charsetRev [128]int8

func init() {
	for i := range charsetRev {
		charsetRev[i] = -1
	}
	for i := 0; i < len(charset); i++ {
		charsetRev[charset[i]] = int8(i)
	}
}

// toBytes converts each character in the string 'chars' to the value of the
// index of the corresponding character in charset.
func toBytes(chars string) ([]byte, error) {
	decoded := make([]byte, 0, len(chars))
	for i := 0; i < len(chars); i++ {
		index := int8(-1)
		if chars[i] < 128 {
			index = charsetRev[chars[i]]
		}
		if index < 0 {
			return nil, ErrNonCharsetChar(chars[i])
		}
		decoded = append(decoded, byte(index))
	}
	return decoded, nil
}

// toChars converts the byte slice 'data' to a string where each byte in
// 'data' encodes the index of a character in charset.
func toChars(data []byte) (string, error) {
	result := make([]byte, 0, len(data))
	for _, b := range data {
		if int(b) >= len(charset) {
			return "", ErrInvalidDataByte(b)
		}
		result = append(result, charset[b])
	}
	return string(result), nil
}

// bech32HrpExpand returns the checksum preamble for the passed human-readable
// part: the high bits of each character, a zero separator, then the low bits
// of each character.
func bech32HrpExpand(hrp string) []byte {
	v := make([]byte, 0, len(hrp)*2+1)
	for i := 0; i < len(hrp); i++ {
		v = append(v, hrp[i]>>5)
	}
	v = append(v, 0)
	for i := 0; i < len(hrp); i++ {
		v = append(v, hrp[i]&31)
	}
	return v
}

// bech32Polymod calculates the BCH checksum over the passed 5-bit values
// using a 25-bit accumulator window and the bech32 generator coefficients.
// It is used both to generate and to verify checksums.
func bech32Polymod(values []byte) int {
	chk := 1
	for _, v := range values {
		b := chk >> 25
		chk = (chk&0x1ffffff)<<5 ^ int(v)
		for i := 0; i < 5; i++ {
			if (b>>uint(i))&1 == 1 {
				chk ^= gen[i]
			}
		}
	}
	return chk
}

// writeBech32Checksum calculates the checksum data expected for a string
// that will use the given checksum constant and returns the six checksum
// symbols.
func writeBech32Checksum(hrp string, data []byte, version Version) []byte {
	values := append(bech32HrpExpand(hrp), data...)
	values = append(values, []byte{0, 0, 0, 0, 0, 0}...)
	bech32Const := int(VersionToConsts[version])
	polymod := bech32Polymod(values) ^ bech32Const

	checksum := make([]byte, 6)
	for i := 0; i < 6; i++ {
		checksum[i] = byte((polymod >> uint(5*(5-i))) & 31)
	}
	return checksum
}

// bech32VerifyChecksum verifies whether the bech32 string specified by the
// provided hrp and payload data (including the checksum symbols) validates
// against one of the defined checksum constants.  It returns the version the
// string satisfies, or VersionUnknown along with false when the checksum
// matches neither constant.
func bech32VerifyChecksum(hrp string, data []byte) (Version, bool) {
	checksum := bech32Polymod(append(bech32HrpExpand(hrp), data...))
	if version, ok := ConstsToVersion[ChecksumConst(checksum)]; ok {
		return version, true
	}
	return VersionUnknown, false
}

// decodeNoLimit is a bech32 checksum version aware arbitrary string length
// decoder.  This function will return the version of the decoded checksum
// constant so higher level validation can be performed to ensure the correct
// variant of bech32 was used when encoding.
//
// Note that the only length restriction placed on the string is that it is
// at least 8 characters, enough for the separator and a checksum.
func decodeNoLimit(bech string) (string, []byte, Version, error) {
	// The minimum allowed size of a bech32 string is 8 characters, since
	// it needs a non-empty HRP, a separator, and a 6 character checksum.
	if len(bech) < 8 {
		return "", nil, VersionUnknown, ErrInvalidLength(len(bech))
	}

	// Only ASCII characters between 33 and 126 are allowed.
	var hasLower, hasUpper bool
	for i := 0; i < len(bech); i++ {
		if bech[i] < 33 || bech[i] > 126 {
			return "", nil, VersionUnknown,
				ErrInvalidCharacter(rune(bech[i]))
		}

		// The characters must be either all lowercase or all
		// uppercase.
		hasLower = hasLower || (bech[i] >= 'a' && bech[i] <= 'z')
		hasUpper = hasUpper || (bech[i] >= 'A' && bech[i] <= 'Z')
		if hasLower && hasUpper {
			return "", nil, VersionUnknown, ErrMixedCase{}
		}
	}

	// Bech32 standard uses only the lowercase for of strings for checksum
	// calculation.
	if hasUpper {
		bech = strings.ToLower(bech)
	}

	// The string is invalid if the last '1' is non-existent, it is the
	// first character of the string (no human-readable part) or one of
	// the last 6 characters of the string (since checksum cannot contain
	// '1').
	one := strings.LastIndexByte(bech, '1')
	if one < 1 || one+7 > len(bech) {
		return "", nil, VersionUnknown, ErrInvalidSeparatorIndex(one)
	}

	// The human-readable part is everything before the last '1'.
	hrp := bech[:one]
	data := bech[one+1:]

	// Each character corresponds to the byte with value of the index in
	// 'charset'.
	decoded, err := toBytes(data)
	if err != nil {
		return "", nil, VersionUnknown, err
	}

	// Verify if the checksum (stored inside decoded[:]) is valid, given
	// the previously decoded hrp.
	version, ok := bech32VerifyChecksum(hrp, decoded)
	if !ok {
		// Invalid checksum.  Calculate what it should have been for
		// both constants, so the error carries something actionable.
		payload := decoded[:len(decoded)-6]
		expected, _ := toChars(writeBech32Checksum(hrp, payload,
			Version0))
		expectedM, _ := toChars(writeBech32Checksum(hrp, payload,
			VersionM))
		actual := bech[len(bech)-6:]
		return "", nil, VersionUnknown, ErrInvalidChecksum{
			Expected:  expected,
			ExpectedM: expectedM,
			Actual:    actual,
		}
	}

	// We exclude the last 6 bytes, which is the checksum.
	return hrp, decoded[:len(decoded)-6], version, nil
}

// DecodeNoLimit decodes a bech32 encoded string, returning the human-readable
// part and the data part excluding the checksum, without enforcing the
// BIP-173 maximum length.  This function does NOT validate against the
// bech32m checksum variant; use DecodeGeneric when the variant matters.
func DecodeNoLimit(bech string) (string, []byte, error) {
	hrp, data, _, err := decodeNoLimit(bech)
	return hrp, data, err
}

// Decode decodes a bech32 encoded string, returning the human-readable part
// and the data part excluding the checksum.  The decoded checksum may satisfy
// either the original bech32 or the bech32m constant; use DecodeGeneric when
// the distinction matters.
//
// Note that the string length is restricted to the BIP-173 maximum of 90
// characters.
func Decode(bech string) (string, []byte, error) {
	// The maximum allowed length for a bech32 string is 90.
	if len(bech) > 90 {
		return "", nil, ErrInvalidLength(len(bech))
	}

	hrp, data, _, err := decodeNoLimit(bech)
	return hrp, data, err
}

// DecodeGeneric decodes a bech32 or bech32m encoded string, returning the
// human-readable part, the data part excluding the checksum, and the checksum
// version the string satisfies.
//
// Note that the string length is restricted to the BIP-173 maximum of 90
// characters.
func DecodeGeneric(bech string) (string, []byte, Version, error) {
	// The maximum allowed length for a bech32 string is 90.
	if len(bech) > 90 {
		return "", nil, VersionUnknown, ErrInvalidLength(len(bech))
	}

	return decodeNoLimit(bech)
}

// encodeGeneric performs the bech32 string encoding for the given checksum
// version.  The isolated conversion of the hrp to lowercase happens before
// the checksum computation since mixed-case strings do not round trip.
func encodeGeneric(hrp string, data []byte, version Version) (string, error) {
	// The resulting bech32 string is the concatenation of the lowercase
	// hrp, the separator 1, data and the 6-byte checksum.
	hrp = strings.ToLower(hrp)
	combined := append(append([]byte{}, data...),
		writeBech32Checksum(hrp, data, version)...)

	// The data is already in 5-bit groups, convert to the corresponding
	// charset characters.
	dataChars, err := toChars(combined)
	if err != nil {
		return "", err
	}
	return hrp + "1" + dataChars, nil
}

// Encode encodes a byte slice into a bech32 string with the given
// human-readable part.  The data must be in 5-bit groups; most callers first
// regroup arbitrary bytes with ConvertBits.
func Encode(hrp string, data []byte) (string, error) {
	return encodeGeneric(hrp, data, Version0)
}

// EncodeM is the exactly same as the Encode method, but it uses the new
// bech32m constant instead of the original one.  It should be used whenever
// one attempts to encode a segwit address of v1 and beyond.
func EncodeM(hrp string, data []byte) (string, error) {
	return encodeGeneric(hrp, data, VersionM)
}

// EncodeGeneric encodes a byte slice into a bech32 string with the
// human-readable part hrb.  The payload must be in 5-bit groups.  The
// checksum constant is selected by the passed version.
func EncodeGeneric(hrp string, data []byte, version Version) (string, error) {
	return encodeGeneric(hrp, data, version)
}

// ConvertBits converts a byte slice where each byte is encoding fromBits
// bits, to a byte slice where each byte is encoding toBits bits.
//
// When pad is true a trailing partial group is padded with zero bits to make
// a final full group; when pad is false the input must divide evenly into
// full output groups with all remaining padding bits zero, otherwise an
// ErrInvalidIncompleteGroup is returned.
func ConvertBits(data []byte, fromBits, toBits uint8, pad bool) ([]byte, error) {
	if fromBits < 1 || fromBits > 8 || toBits < 1 || toBits > 8 {
		return nil, ErrInvalidBitGroups{}
	}

	// The final length is len(data) * fromBits / toBits, rounded up.
	regrouped := make([]byte, 0, (len(data)*int(fromBits)+
		int(toBits)-1)/int(toBits))
	acc := uint32(0)
	bits := uint8(0)
	maxv := byte(1<<toBits - 1)
	for _, b := range data {
		// Any bits set above fromBits mean corrupt input.
		if b>>fromBits != 0 {
			return nil, ErrInvalidDataByte(b)
		}

		acc = acc<<fromBits | uint32(b)
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			regrouped = append(regrouped, byte(acc>>bits)&maxv)
		}
	}

	if pad {
		if bits > 0 {
			regrouped = append(regrouped,
				byte(acc<<(toBits-bits))&maxv)
		}
	} else {
		// The remaining bits are padding from the inverse conversion.
		// There cannot be a full group of them and all of them must be
		// zero.
		if bits >= fromBits {
			return nil, ErrInvalidIncompleteGroup{}
		}
		if byte(acc<<(toBits-bits))&maxv != 0 {
			return nil, ErrInvalidIncompleteGroup{}
		}
	}

	return regrouped, nil
}
