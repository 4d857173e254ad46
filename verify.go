// Copyright (c) 2024 The btc-vision developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcruntime

import (
	"bytes"
	"strings"

	"github.com/btc-vision/btc-runtime-sub001/address"
	"github.com/btc-vision/btc-runtime-sub001/hash"
	"github.com/btc-vision/btc-runtime-sub001/script"
)

// CSVTimelockP2WSHAddress builds the timelock witness script for the given
// public key and relative block delay and returns the
// pay-to-witness-script-hash address committing to it along with the script
// itself.
func CSVTimelockP2WSHAddress(hrp string, pubKey []byte, csvBlocks uint32) (
	string, []byte, error) {

	witnessScript, err := script.CSVTimelockScript(pubKey, csvBlocks)
	if err != nil {
		return "", nil, err
	}
	addr, err := address.P2WSH(hrp, witnessScript)
	if err != nil {
		return "", nil, err
	}
	return addr, witnessScript, nil
}

// MultiSigP2WSHAddress builds the m-of-n multisig witness script for the
// given keys and returns the pay-to-witness-script-hash address committing
// to it along with the script itself. The public keys keep their given
// order in the script.
func MultiSigP2WSHAddress(hrp string, required int, pubKeys [][]byte) (
	string, []byte, error) {

	witnessScript, err := script.MultiSigScript(required, pubKeys)
	if err != nil {
		return "", nil, err
	}
	addr, err := address.P2WSH(hrp, witnessScript)
	if err != nil {
		return "", nil, err
	}
	return addr, witnessScript, nil
}

// decodeP2WSH decodes addr and returns its witness program when it is a
// version 0 script hash address with the wanted prefix.
func decodeP2WSH(addr, hrp string) ([]byte, bool) {
	decoded, err := address.DecodeSegWit(addr)
	if err != nil {
		return nil, false
	}
	if decoded.ScriptType() != address.WitnessV0ScriptHashTy {
		return nil, false
	}
	if decoded.HRP != strings.ToLower(hrp) {
		return nil, false
	}
	return decoded.WitnessProgram, true
}

// VerifyCSVTimelockP2WSH reports whether addr is the
// pay-to-witness-script-hash address of the timelock script for the given
// public key and relative block delay. The expected script is rebuilt from
// the parameters, its hash compared against the witness program in constant
// time, and the rebuilt script recognized again as a cross-check of the
// builder itself. Malformed input of any kind yields false, never an error
// or panic.
func VerifyCSVTimelockP2WSH(pubKey []byte, csvBlocks uint32, addr,
	hrp string, strictMinimal bool) bool {

	program, ok := decodeP2WSH(addr, hrp)
	if !ok {
		return false
	}

	witnessScript, err := script.CSVTimelockScript(pubKey, csvBlocks)
	if err != nil {
		return false
	}
	if !Eq32(hash.Sha256(witnessScript), program) {
		return false
	}

	// Recognize the script that was just built and require it to yield
	// the parameters back. A builder regression that hashes to the right
	// program but emits a malformed template is caught here.
	details := script.ExtractCSVTimelockDetails(witnessScript,
		strictMinimal)
	if !details.Valid || uint32(details.CSVBlocks) != csvBlocks ||
		!bytes.Equal(details.PubKey, pubKey) {

		log.Debugf("timelock script for %d blocks fails recognition",
			csvBlocks)
		return false
	}

	return true
}

// VerifyMultiSigP2WSH reports whether addr is the
// pay-to-witness-script-hash address of the m-of-n multisig script for the
// given keys in the given order. It follows the same rebuild, hash compare
// and re-recognize pattern as VerifyCSVTimelockP2WSH. Malformed input of
// any kind yields false, never an error or panic.
func VerifyMultiSigP2WSH(required int, pubKeys [][]byte, addr,
	hrp string) bool {

	program, ok := decodeP2WSH(addr, hrp)
	if !ok {
		return false
	}

	witnessScript, err := script.MultiSigScript(required, pubKeys)
	if err != nil {
		return false
	}
	if !Eq32(hash.Sha256(witnessScript), program) {
		return false
	}

	details := script.ExtractMultiSigDetails(witnessScript, true)
	if !details.Valid || details.Required != required ||
		details.NumPubKeys != len(pubKeys) {

		log.Debugf("%d-of-%d multisig script fails recognition",
			required, len(pubKeys))
		return false
	}
	for i, pubKey := range pubKeys {
		if !bytes.Equal(details.PubKeys[i], pubKey) {
			return false
		}
	}

	return true
}

// VerifyP2TR reports whether addr is the pay-to-taproot address of the
// passed 32 byte x-only output key. Malformed input of any kind yields
// false, never an error or panic.
func VerifyP2TR(outputKey []byte, addr, hrp string) bool {
	decoded, err := address.DecodeSegWit(addr)
	if err != nil {
		return false
	}
	if decoded.ScriptType() != address.WitnessV1TaprootTy {
		return false
	}
	if decoded.HRP != strings.ToLower(hrp) {
		return false
	}
	return Eq32(decoded.WitnessProgram, outputKey)
}

// Eq32 compares two 32 byte values in constant time. The accumulator visits
// all 32 byte positions no matter where the first difference sits, and
// inputs that are not exactly 32 bytes fold their length difference into
// the result instead of returning early, reading missing positions as
// zero.
func Eq32(a, b []byte) bool {
	acc := (len(a) ^ 32) | (len(b) ^ 32)
	for i := 0; i < 32; i++ {
		var av, bv byte
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		acc |= int(av ^ bv)
	}
	return acc == 0
}
