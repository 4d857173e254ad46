// Copyright (c) 2024 The btc-vision developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address implements native segwit and taproot address encoding and
// decoding on top of the bech32 and bech32m checksummed base32 format.
package address

import (
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"

	"github.com/btc-vision/btc-runtime-sub001/bech32"
	"github.com/btc-vision/btc-runtime-sub001/hash"
	"github.com/btc-vision/btc-runtime-sub001/script"
)

const (
	// minWitnessProgLen is the minimum witness program length allowed for
	// witness versions 1 and above.
	minWitnessProgLen = 2

	// maxWitnessProgLen is the maximum witness program length allowed for
	// any witness version.
	maxWitnessProgLen = 40

	// maxWitnessVersion is the largest witness version the address format
	// can represent.
	maxWitnessVersion = 16
)

// ScriptType identifies the standard output script a witness address pays
// to.
type ScriptType int

const (
	// NonStandardTy indicates the address does not pay to any of the
	// recognized standard script forms.
	NonStandardTy ScriptType = iota

	// WitnessV0PubKeyHashTy indicates a pay-to-witness-pubkey-hash
	// address (version 0, 20 byte program).
	WitnessV0PubKeyHashTy

	// WitnessV0ScriptHashTy indicates a pay-to-witness-script-hash
	// address (version 0, 32 byte program).
	WitnessV0ScriptHashTy

	// WitnessV1TaprootTy indicates a pay-to-taproot address (version 1,
	// 32 byte program).
	WitnessV1TaprootTy
)

// scriptTypeToName houses the human-readable strings which describe each
// script type.
var scriptTypeToName = []string{
	NonStandardTy:         "nonstandard",
	WitnessV0PubKeyHashTy: "witness_v0_keyhash",
	WitnessV0ScriptHashTy: "witness_v0_scripthash",
	WitnessV1TaprootTy:    "witness_v1_taproot",
}

// String implements the Stringer interface by returning the name of the
// script type.
func (t ScriptType) String() string {
	if t < 0 || int(t) >= len(scriptTypeToName) {
		return "invalid"
	}
	return scriptTypeToName[t]
}

// WitnessAddress is the decoded form of a segwit address. The witness
// program bytes are the regrouped 8-bit program, not the 5-bit encoding the
// address string carries.
type WitnessAddress struct {
	// HRP is the human-readable prefix the address was encoded with, in
	// lowercase form.
	HRP string

	// WitnessVersion is the witness version the address pays to, between
	// 0 and 16.
	WitnessVersion byte

	// WitnessProgram is the raw witness program.
	WitnessProgram []byte
}

// String returns the bech32 or bech32m string encoding of the address. It
// returns the empty string when the address fields do not form an encodable
// address.
func (a *WitnessAddress) String() string {
	str, err := EncodeSegWit(a.HRP, a.WitnessVersion, a.WitnessProgram)
	if err != nil {
		return ""
	}
	return str
}

// ScriptType returns the standard script type the address pays to, or
// NonStandardTy when the version and program length combination does not
// correspond to one.
func (a *WitnessAddress) ScriptType() ScriptType {
	switch {
	case a.WitnessVersion == 0 && len(a.WitnessProgram) == 20:
		return WitnessV0PubKeyHashTy
	case a.WitnessVersion == 0 && len(a.WitnessProgram) == 32:
		return WitnessV0ScriptHashTy
	case a.WitnessVersion == 1 && len(a.WitnessProgram) == 32:
		return WitnessV1TaprootTy
	}
	return NonStandardTy
}

// EncodeSegWit encodes the given witness version and witness program into a
// segwit address string for the given human-readable prefix. Witness version
// 0 programs are encoded with the bech32 checksum while versions 1 through
// 16 use bech32m.
func EncodeSegWit(hrp string, witnessVersion byte, witnessProgram []byte) (
	string, error) {

	if witnessVersion > maxWitnessVersion {
		return "", UnsupportedWitnessVerError(witnessVersion)
	}
	if err := checkWitnessProgLen(witnessVersion, len(witnessProgram)); err != nil {
		return "", err
	}

	// Group the program bytes into 5 bit groups, as this is what is used
	// to encode each character in the address string.
	converted, err := bech32.ConvertBits(witnessProgram, 8, 5, true)
	if err != nil {
		return "", err
	}

	// Concatenate the witness version and program, and encode the
	// resulting bytes using bech32 encoding.
	combined := make([]byte, len(converted)+1)
	combined[0] = witnessVersion
	copy(combined[1:], converted)

	if witnessVersion == 0 {
		return bech32.Encode(hrp, combined)
	}
	return bech32.EncodeM(hrp, combined)
}

// DecodeSegWit decodes a segwit address into its human-readable prefix,
// witness version and witness program, verifying both the checksum and that
// the checksum variant agrees with the witness version.
func DecodeSegWit(addr string) (*WitnessAddress, error) {
	// Decode the bech32 encoded address.
	hrp, data, bech32Version, err := bech32.DecodeGeneric(addr)
	if err != nil {
		return nil, err
	}

	// The first byte of the decoded address is the witness version, it
	// must exist.
	if len(data) < 1 {
		return nil, ErrMissingWitnessVersion
	}

	// ...and be <= 16.
	version := data[0]
	if version > maxWitnessVersion {
		return nil, UnsupportedWitnessVerError(version)
	}

	// The remaining characters of the address returned are grouped into
	// words of 5 bits. In order to restore the original witness program
	// bytes, we'll need to regroup into 8 bit words.
	regrouped, err := bech32.ConvertBits(data[1:], 5, 8, false)
	if err != nil {
		return nil, err
	}

	if err := checkWitnessProgLen(version, len(regrouped)); err != nil {
		return nil, err
	}

	// Witness version 0 requires the bech32 checksum constant and all
	// later versions require the bech32m constant. A mismatch means the
	// address was produced with the wrong algorithm and is rejected even
	// though its checksum verifies.
	if version == 0 && bech32Version != bech32.Version0 {
		return nil, ChecksumVersionMismatchError{WitnessVersion: version}
	}
	if version != 0 && bech32Version != bech32.VersionM {
		return nil, ChecksumVersionMismatchError{WitnessVersion: version}
	}

	return &WitnessAddress{
		HRP:            hrp,
		WitnessVersion: version,
		WitnessProgram: regrouped,
	}, nil
}

// checkWitnessProgLen enforces the witness program length rules for the
// given witness version. Version 0 programs must be exactly 20 or 32 bytes
// while all later versions allow 2 through 40 bytes.
func checkWitnessProgLen(witnessVersion byte, progLen int) error {
	if progLen < minWitnessProgLen || progLen > maxWitnessProgLen {
		return UnsupportedWitnessProgLenError(progLen)
	}
	if witnessVersion == 0 && progLen != 20 && progLen != 32 {
		return UnsupportedWitnessProgLenError(progLen)
	}
	return nil
}

// P2WPKH derives the pay-to-witness-pubkey-hash address of the passed
// serialized compressed public key. The witness program is the hash160 of
// the key.
func P2WPKH(hrp string, pubKey []byte) (string, error) {
	if len(pubKey) != script.PubKeyLenCompressed {
		return "", ErrInvalidPubKeyLength
	}
	return EncodeSegWit(hrp, 0, hash.Hash160(pubKey))
}

// P2WSH derives the pay-to-witness-script-hash address of the passed witness
// script. The witness program is the single sha256 of the script.
func P2WSH(hrp string, witnessScript []byte) (string, error) {
	if len(witnessScript) > script.MaxScriptSize {
		return "", ErrScriptTooLong
	}
	return EncodeSegWit(hrp, 0, hash.Sha256(witnessScript))
}

// P2TR derives the pay-to-taproot address of the passed serialized x-only
// output key.
func P2TR(hrp string, outputKey []byte) (string, error) {
	if len(outputKey) != schnorr.PubKeyBytesLen {
		return "", ErrInvalidPubKeyLength
	}
	return EncodeSegWit(hrp, 1, outputKey)
}

// P2TRForPubKey derives the pay-to-taproot address of the passed output key
// using its 32 byte x-only serialization.
func P2TRForPubKey(hrp string, outputKey *btcec.PublicKey) (string, error) {
	return P2TR(hrp, schnorr.SerializePubKey(outputKey))
}

// IsValid returns whether addr parses as a segwit address with the expected
// human-readable prefix and witness version. An empty hrp skips the prefix
// check and a negative version skips the version check.
func IsValid(addr, hrp string, witnessVersion int) bool {
	decoded, err := DecodeSegWit(addr)
	if err != nil {
		return false
	}
	if hrp != "" && decoded.HRP != strings.ToLower(hrp) {
		return false
	}
	if witnessVersion >= 0 && int(decoded.WitnessVersion) != witnessVersion {
		return false
	}
	return true
}
