// Copyright (c) 2024 The btc-vision developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcruntime

import (
	"strings"

	"github.com/btc-vision/btc-runtime-sub001/address"
	"github.com/btc-vision/btc-runtime-sub001/hash"
	"github.com/btc-vision/btc-runtime-sub001/script"
	"github.com/btc-vision/btc-runtime-sub001/serial"
)

// WriteAddressScriptPair serializes an address and witness script pair into
// the writer as a 16 bit length prefixed address string followed by a 32
// bit length prefixed script.
func WriteAddressScriptPair(w *serial.Writer, addr string,
	witnessScript []byte) error {

	w.WriteString(addr).WriteBytesWithLength(witnessScript)
	return w.Err()
}

// readAddressScriptPair reads the layout written by WriteAddressScriptPair.
func readAddressScriptPair(r *serial.Reader) (string, []byte, error) {
	addr, err := r.ReadString()
	if err != nil {
		return "", nil, err
	}
	witnessScript, err := r.ReadBytesWithLength()
	if err != nil {
		return "", nil, err
	}
	return addr, witnessScript, nil
}

// crossCheckPair is the validation shared by both pair readers: the address
// must decode to a version 0 script hash address carrying the wanted
// prefix, and its witness program must be the hash of the script that came
// with it.
func crossCheckPair(decoded *address.WitnessAddress, hrp string,
	witnessScript []byte) bool {

	if decoded == nil {
		return false
	}
	if decoded.ScriptType() != address.WitnessV0ScriptHashTy {
		return false
	}
	if hrp != "" && decoded.HRP != strings.ToLower(hrp) {
		return false
	}
	return Eq32(hash.Sha256(witnessScript), decoded.WitnessProgram)
}

// CSVPairResult is the outcome of reading and cross-checking a serialized
// timelock address and script pair.
type CSVPairResult struct {
	// AddressString is the raw address string carried in the stream.
	AddressString string

	// Address is the decoded address, or nil when the address string
	// does not parse.
	Address *address.WitnessAddress

	// WitnessScript is the raw witness script carried in the stream.
	WitnessScript []byte

	// Details is the timelock recognition output for the script.
	Details script.CSVTimelockDetails

	// Valid is whether the script is a well-formed timelock script and
	// the address commits to it.
	Valid bool
}

// ReadCSVTimelockPair reads an address and script pair from the reader and
// cross-checks it as a timelock pay-to-witness-script-hash pair, extracting
// the timelock parameters along the way. An error is returned only when the
// stream itself is truncated or malformed, a pair that fails the
// cross-check comes back with Valid set to false. A non-empty hrp
// additionally requires the address to carry that prefix.
func ReadCSVTimelockPair(r *serial.Reader, hrp string, strictMinimal bool) (
	*CSVPairResult, error) {

	addr, witnessScript, err := readAddressScriptPair(r)
	if err != nil {
		return nil, err
	}

	result := &CSVPairResult{
		AddressString: addr,
		WitnessScript: witnessScript,
	}
	result.Address, _ = address.DecodeSegWit(addr)
	result.Details = script.ExtractCSVTimelockDetails(witnessScript,
		strictMinimal)
	result.Valid = result.Details.Valid &&
		crossCheckPair(result.Address, hrp, witnessScript)
	return result, nil
}

// MultiSigPairResult is the outcome of reading and cross-checking a
// serialized multisig address and script pair.
type MultiSigPairResult struct {
	// AddressString is the raw address string carried in the stream.
	AddressString string

	// Address is the decoded address, or nil when the address string
	// does not parse.
	Address *address.WitnessAddress

	// WitnessScript is the raw witness script carried in the stream.
	WitnessScript []byte

	// Details is the multisig recognition output for the script.
	Details script.MultiSigDetails

	// Valid is whether the script is a well-formed multisig script and
	// the address commits to it.
	Valid bool
}

// ReadMultiSigPair reads an address and script pair from the reader and
// cross-checks it as a multisig pay-to-witness-script-hash pair, extracting
// the multisig parameters along the way. An error is returned only when the
// stream itself is truncated or malformed, a pair that fails the
// cross-check comes back with Valid set to false. A non-empty hrp
// additionally requires the address to carry that prefix.
func ReadMultiSigPair(r *serial.Reader, hrp string) (*MultiSigPairResult,
	error) {

	addr, witnessScript, err := readAddressScriptPair(r)
	if err != nil {
		return nil, err
	}

	result := &MultiSigPairResult{
		AddressString: addr,
		WitnessScript: witnessScript,
	}
	result.Address, _ = address.DecodeSegWit(addr)
	result.Details = script.ExtractMultiSigDetails(witnessScript, true)
	result.Valid = result.Details.Valid &&
		crossCheckPair(result.Address, hrp, witnessScript)
	return result, nil
}
