// Copyright (c) 2024 The btc-vision developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

import (
	"bytes"
	"strings"
	"testing"
)

// TestBech32 tests whether decoding and re-encoding the valid BIP-173 test
// vectors works and whether decoding invalid test vectors fails for the
// correct reason.
func TestBech32(t *testing.T) {
	tests := []struct {
		str           string
		expectedError error
	}{
		{"A12UEL5L", nil},
		{"a12uel5l", nil},
		{"an83characterlonghumanreadablepartthatcontainsthenumber1andtheexcludedcharactersbio1tt5tgs", nil},
		{"abcdef1qpzry9x8gf2tvdw0s3jn54khce6mua7lmqqqxw", nil},
		{"11qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqc8247j", nil},
		{"split1checkupstagehandshakeupstreamerranterredcaperred2y9e3w", nil},
		{"?1ezyfcl", nil},

		// Invalid checksum.
		{"split1checkupstagehandshakeupstreamerranterredcaperred2y9e2w", ErrInvalidChecksum{"2y9e3w", "lc445v", "2y9e2w"}},
		// No separator.
		{"pzry9x0s0muk", ErrInvalidSeparatorIndex(-1)},
		// Empty HRP.
		{"1pzry9x0s0muk", ErrInvalidSeparatorIndex(0)},
		// Invalid data character.
		{"x1b4n0q5v", ErrNonCharsetChar(98)},
		// Checksum too short.
		{"li1dgmt3", ErrInvalidSeparatorIndex(2)},
		// Checksum calculated with uppercase form of HRP.
		{"A1G7SGD8", ErrInvalidChecksum{"2uel5l", "lqfn3a", "g7sgd8"}},
		// Too short to contain an HRP, separator and checksum.
		{"10a06t8", ErrInvalidLength(7)},
		// Empty HRP.
		{"1qzzfhee", ErrInvalidSeparatorIndex(0)},
		// Mixed case.
		{"aBcdef1qpzry9x8gf2tvdw0s3jn54khce6mua7lmqqqxw", ErrMixedCase{}},
	}

	for i, test := range tests {
		str := test.str
		hrp, decoded, err := Decode(str)
		if test.expectedError != err {
			t.Errorf("%d: (%v) expected decoding error %v "+
				"instead got %v", i, str, test.expectedError,
				err)
			continue
		}

		if err != nil {
			// End test case here if a decoding error was expected.
			continue
		}

		// Check that it encodes to the same string, accounting for
		// the lowercase form the decoder normalizes to.
		encoded, err := Encode(hrp, decoded)
		if err != nil {
			t.Errorf("encoding failed: %v", err)
		}
		if encoded != strings.ToLower(str) {
			t.Errorf("expected data to encode to %v, but got %v",
				str, encoded)
		}

		// Flip a bit in the string an make sure it is caught.
		pos := strings.LastIndexAny(str, "1")
		flipped := str[:pos+1] + string(str[pos+1]^1) + str[pos+2:]
		_, _, err = Decode(flipped)
		if err == nil {
			t.Error("expected decoding to fail")
		}
	}
}

// TestBech32M tests that the BIP-350 test vectors for the bech32m checksum
// variant decode and re-encode correctly.
func TestBech32M(t *testing.T) {
	tests := []struct {
		str           string
		expectedError error
	}{
		{"A1LQFN3A", nil},
		{"a1lqfn3a", nil},
		{"an83characterlonghumanreadablepartthatcontainsthetheexcludedcharactersbioandnumber11sg7hg6", nil},
		{"abcdef1l7aum6echk45nj3s0wdvt2fg8x9yrzpqzd3ryx", nil},
		{"11llllllllllllllllllllllllllllllllllllllllllllllllllllllllllllllllllllllllllllllllllludsr8", nil},
		{"split1checkupstagehandshakeupstreamerranterredcaperredlc445v", nil},
		{"?1v759aa", nil},

		// Invalid character (o) in checksum.
		{"mm1crxm3i", ErrNonCharsetChar(105)},
		// Checksum too short.
		{"in1muywd", ErrInvalidSeparatorIndex(2)},
		// Checksum calculated with uppercase form of HRP.
		{"M1VUXWEZ", ErrInvalidChecksum{"mzl49c", "w70eq6", "vuxwez"}},
		// Too short to contain an HRP, separator and checksum.
		{"16plkw9", ErrInvalidLength(7)},
		// Empty HRP.
		{"1p2gdwpf", ErrInvalidSeparatorIndex(0)},
	}

	for i, test := range tests {
		str := test.str
		hrp, decoded, version, err := DecodeGeneric(str)
		if test.expectedError != err {
			t.Errorf("%d: (%v) expected decoding error %v "+
				"instead got %v", i, str, test.expectedError,
				err)
			continue
		}

		if err != nil {
			continue
		}

		if version != VersionM {
			t.Errorf("%d: (%v) expected version M, got %v", i, str,
				version)
			continue
		}

		encoded, err := EncodeM(hrp, decoded)
		if err != nil {
			t.Errorf("encoding failed: %v", err)
		}
		if encoded != strings.ToLower(str) {
			t.Errorf("expected data to encode to %v, but got %v",
				str, encoded)
		}
	}
}

// TestBech32DecodeGenericVersion ensures DecodeGeneric reports the checksum
// constant the string actually satisfies.
func TestBech32DecodeGenericVersion(t *testing.T) {
	tests := []struct {
		str     string
		version Version
	}{
		{"A12UEL5L", Version0},
		{"abcdef1qpzry9x8gf2tvdw0s3jn54khce6mua7lmqqqxw", Version0},
		{"A1LQFN3A", VersionM},
		{"abcdef1l7aum6echk45nj3s0wdvt2fg8x9yrzpqzd3ryx", VersionM},
	}

	for _, test := range tests {
		_, _, version, err := DecodeGeneric(test.str)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", test.str, err)
			continue
		}
		if version != test.version {
			t.Errorf("%q: got version %v, want %v", test.str,
				version, test.version)
		}
	}
}

// TestBech32ChecksumSensitivity ensures every single-character substitution
// of a valid string invalidates its checksum.
func TestBech32ChecksumSensitivity(t *testing.T) {
	const str = "abcdef1qpzry9x8gf2tvdw0s3jn54khce6mua7lmqqqxw"
	for i := 0; i < len(str); i++ {
		replacement := byte('q')
		if str[i] == 'q' {
			replacement = 'p'
		}
		mutated := str[:i] + string(replacement) + str[i+1:]
		if mutated == str {
			continue
		}
		if _, _, err := Decode(mutated); err == nil {
			t.Errorf("mutation at %d (%q) decoded successfully", i,
				mutated)
		}
	}
}

// TestBech32Length ensures the length restrictions on the overall string are
// enforced, including the relaxed behavior of DecodeNoLimit.
func TestBech32Length(t *testing.T) {
	// A 91-character string must be rejected by the limited decoders.
	longData := make([]byte, 85)
	long, err := Encode("long", longData)
	if err != nil {
		t.Fatalf("unexpected encoding error: %v", err)
	}
	if len(long) <= 90 {
		t.Fatalf("test string is only %d characters", len(long))
	}
	if _, _, err := Decode(long); err != ErrInvalidLength(len(long)) {
		t.Errorf("Decode accepted %d character string", len(long))
	}
	if _, _, _, err := DecodeGeneric(long); err != ErrInvalidLength(len(long)) {
		t.Errorf("DecodeGeneric accepted %d character string", len(long))
	}
	if _, _, err := DecodeNoLimit(long); err != nil {
		t.Errorf("DecodeNoLimit rejected %d character string: %v",
			len(long), err)
	}

	// Too short to contain an HRP, separator and checksum.
	if _, _, err := Decode("1qqqqqq"); err != ErrInvalidLength(7) {
		t.Errorf("unexpected error for short string: %v", err)
	}
}

// TestConvertBits exercises bit regrouping in both directions, including the
// padding rules.
func TestConvertBits(t *testing.T) {
	tests := []struct {
		input    []byte
		output   []byte
		fromBits uint8
		toBits   uint8
		pad      bool
		err      error
	}{
		// Empty input stays empty.
		{nil, []byte{}, 8, 5, true, nil},

		// 8 to 5 with padding.
		{[]byte{0xff}, []byte{0x1f, 0x1c}, 8, 5, true, nil},
		{[]byte{0x00}, []byte{0x00, 0x00}, 8, 5, true, nil},

		// 8 to 5 without padding only works when the input divides
		// evenly.
		{[]byte{0xff}, nil, 8, 5, false, ErrInvalidIncompleteGroup{}},
		{[]byte{0xff, 0xff, 0xff, 0xff, 0xff},
			[]byte{0x1f, 0x1f, 0x1f, 0x1f, 0x1f, 0x1f, 0x1f, 0x1f},
			8, 5, false, nil},

		// 5 to 8 with zero padding bits.
		{[]byte{0x1f, 0x1c}, []byte{0xff}, 5, 8, false, nil},

		// 5 to 8 with non-zero padding bits.
		{[]byte{0x1f, 0x1f}, nil, 5, 8, false, ErrInvalidIncompleteGroup{}},

		// Input byte with bits above fromBits set.
		{[]byte{0x20}, nil, 5, 8, false, ErrInvalidDataByte(0x20)},

		// Unsupported group sizes.
		{[]byte{0x01}, nil, 0, 5, true, ErrInvalidBitGroups{}},
		{[]byte{0x01}, nil, 8, 9, true, ErrInvalidBitGroups{}},
	}

	for i, test := range tests {
		got, err := ConvertBits(test.input, test.fromBits, test.toBits,
			test.pad)
		if err != test.err {
			t.Errorf("%d: unexpected error -- got %v, want %v", i,
				err, test.err)
			continue
		}
		if err != nil {
			continue
		}
		if !bytes.Equal(got, test.output) {
			t.Errorf("%d: unexpected output -- got %x, want %x", i,
				got, test.output)
		}
	}
}

// TestConvertBitsRoundTrip ensures that conversions from 8 to 5 bits with
// padding always round trip back through the unpadded 5 to 8 conversion.
func TestConvertBitsRoundTrip(t *testing.T) {
	data := []byte{0x00, 0x01, 0x7f, 0x80, 0xfe, 0xff, 0x55, 0xaa}
	for length := 0; length <= len(data); length++ {
		regrouped, err := ConvertBits(data[:length], 8, 5, true)
		if err != nil {
			t.Fatalf("length %d: 8->5 failed: %v", length, err)
		}
		back, err := ConvertBits(regrouped, 5, 8, false)
		if err != nil {
			t.Fatalf("length %d: 5->8 failed: %v", length, err)
		}
		if !bytes.Equal(back, data[:length]) {
			t.Fatalf("length %d: got %x, want %x", length, back,
				data[:length])
		}
	}
}
