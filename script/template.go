// Copyright (c) 2024 The btc-vision developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"fmt"
)

// CSVTimelockScript returns a witness script that locks an output to the
// passed serialized public key until the relative block count csvBlocks has
// passed:
//
//	<csvBlocks> OP_CHECKSEQUENCEVERIFY OP_DROP <pubKey> OP_CHECKSIG
//
// The block count is pushed with the small integer opcodes for values 0
// through 16 and as a minimally encoded script number otherwise.  An error is
// returned for a block count that does not fit the 16-bit BIP-68 sequence
// field or a public key that is neither 33 nor 65 bytes.  Malformed build
// parameters are caller bugs, which is why builders error while the
// extractors below do not.
func CSVTimelockScript(pubKey []byte, csvBlocks uint32) ([]byte, error) {
	if csvBlocks > MaxCSVBlocks {
		str := fmt.Sprintf("relative lock of %d blocks exceeds the "+
			"maximum of %d", csvBlocks, MaxCSVBlocks)
		return nil, scriptError(ErrCSVOutOfRange, str)
	}
	if !isAcceptablePubKeyLen(pubKey) {
		str := fmt.Sprintf("public key of %d bytes is neither a "+
			"33-byte compressed nor a 65-byte uncompressed key",
			len(pubKey))
		return nil, scriptError(ErrInvalidPubKeyLen, str)
	}

	return NewScriptBuilder().
		AddInt64(int64(csvBlocks)).
		AddOp(OP_CHECKSEQUENCEVERIFY).
		AddOp(OP_DROP).
		AddData(pubKey).
		AddOp(OP_CHECKSIG).
		Script()
}

// MultiSigScript returns a multi-signature witness script requiring required
// signatures of the passed serialized public keys:
//
//	OP_m <pubKey>... OP_n OP_CHECKMULTISIG
//
// An error is returned when required or the key count is outside 1 through
// 16, more signatures are required than keys are present, or any key has an
// invalid length.
func MultiSigScript(required int, pubKeys [][]byte) ([]byte, error) {
	if required < 1 || required > MaxTemplatePubKeys {
		str := fmt.Sprintf("required signature count of %d is outside "+
			"1 through %d", required, MaxTemplatePubKeys)
		return nil, scriptError(ErrInvalidMultiSigParams, str)
	}
	if len(pubKeys) < required || len(pubKeys) > MaxTemplatePubKeys {
		str := fmt.Sprintf("key count of %d is outside %d through %d",
			len(pubKeys), required, MaxTemplatePubKeys)
		return nil, scriptError(ErrInvalidMultiSigParams, str)
	}

	builder := NewScriptBuilder().AddInt64(int64(required))
	for _, pubKey := range pubKeys {
		if !isAcceptablePubKeyLen(pubKey) {
			str := fmt.Sprintf("public key of %d bytes is neither "+
				"a 33-byte compressed nor a 65-byte "+
				"uncompressed key", len(pubKey))
			return nil, scriptError(ErrInvalidPubKeyLen, str)
		}
		builder.AddData(pubKey)
	}
	builder.AddInt64(int64(len(pubKeys)))
	builder.AddOp(OP_CHECKMULTISIG)
	return builder.Script()
}

// CSVTimelockDetails houses the recognized parameters of a CSV timelock
// witness script.  The struct is only valid as a whole: when Valid is false
// the remaining fields are unusable.
type CSVTimelockDetails struct {
	// Valid reports whether the script is in fact a CSV timelock script.
	Valid bool

	// CSVBlocks is the relative block count the script enforces.
	CSVBlocks uint16

	// PubKey is the serialized public key allowed to spend after the
	// lock expires.  It is a slice into the script, not a copy.
	PubKey []byte
}

// ExtractCSVTimelockDetails attempts to recognize the passed script as a CSV
// timelock script produced by CSVTimelockScript and extracts its parameters.
// Any deviation from the template, including tokenization failures and
// trailing bytes, yields a result with Valid set to false; the function never
// returns an error since rejection of untrusted scripts is an expected
// outcome.
//
// The leading block count may be a small integer opcode or a pushed script
// number.  OP_1NEGATE and negative or oversized numbers are not part of the
// template and result in a non-match.  When strictMinimal is set both the
// data pushes and the script number must use their minimal encodings.
func ExtractCSVTimelockDetails(scr []byte, strictMinimal bool) CSVTimelockDetails {
	var details CSVTimelockDetails

	// Relative block count, either as a small integer opcode or a pushed
	// non-negative script number within the 16-bit range.
	tokenizer := MakeScriptTokenizer(scr, strictMinimal)
	if !tokenizer.Next() {
		return details
	}
	var blocks int64
	switch {
	case IsSmallInt(tokenizer.Opcode()):
		blocks = int64(AsSmallInt(tokenizer.Opcode()))

	case tokenizer.IsPush():
		num, err := MakeScriptNum(tokenizer.Data(), strictMinimal,
			defaultScriptNumLen)
		if err != nil || num < 0 || num > MaxCSVBlocks {
			return details
		}
		blocks = int64(num)

	default:
		return details
	}

	if !tokenizer.Next() || tokenizer.Opcode() != OP_CHECKSEQUENCEVERIFY {
		return details
	}
	if !tokenizer.Next() || tokenizer.Opcode() != OP_DROP {
		return details
	}

	// Spender public key.
	if !tokenizer.Next() || !tokenizer.IsPush() ||
		!isAcceptablePubKeyLen(tokenizer.Data()) {

		return details
	}
	pubKey := tokenizer.Data()

	if !tokenizer.Next() || tokenizer.Opcode() != OP_CHECKSIG {
		return details
	}

	// The script must be exactly exhausted with no tokenization error.
	if tokenizer.Next() || tokenizer.Err() != nil {
		return details
	}

	details.Valid = true
	details.CSVBlocks = uint16(blocks)
	details.PubKey = pubKey
	return details
}

// MultiSigDetails houses the recognized parameters of a multi-signature
// witness script.  The struct is only valid as a whole: when Valid is false
// the remaining fields are unusable.
type MultiSigDetails struct {
	// Valid reports whether the script is in fact a multisig script.
	Valid bool

	// Required is the number of signatures required to spend.
	Required int

	// NumPubKeys is the total number of keys in the script.  It always
	// equals len(PubKeys).
	NumPubKeys int

	// PubKeys are the serialized public keys in script order.  They are
	// slices into the script, not copies.
	PubKeys [][]byte
}

// ExtractMultiSigDetails attempts to recognize the passed script as a
// multi-signature script produced by MultiSigScript and extracts its
// parameters.  Any deviation from the template yields a result with Valid set
// to false; the function never returns an error.
//
// Candidate public keys are consumed greedily: every consecutive push of 33
// or 65 bytes after the leading OP_m counts as a key, a push of any other
// length is a non-match, and the first non-push token must be the OP_n
// matching the number of keys collected.
func ExtractMultiSigDetails(scr []byte, strictMinimal bool) MultiSigDetails {
	var details MultiSigDetails

	// Required signature count, OP_1 through OP_16 only.
	tokenizer := MakeScriptTokenizer(scr, strictMinimal)
	if !tokenizer.Next() || !IsSmallInt(tokenizer.Opcode()) {
		return details
	}
	required := AsSmallInt(tokenizer.Opcode())
	if required < 1 {
		return details
	}

	// Gather the public keys.  The loop is bounded by the script length
	// since every iteration consumes at least one byte.
	var pubKeys [][]byte
	for tokenizer.Next() {
		if !tokenizer.IsPush() {
			break
		}
		if !isAcceptablePubKeyLen(tokenizer.Data()) {
			return details
		}
		pubKeys = append(pubKeys, tokenizer.Data())
	}
	if tokenizer.Err() != nil {
		return details
	}

	// The token that terminated the loop must be the key count, which has
	// to agree with the keys actually present.
	op := tokenizer.Opcode()
	if !IsSmallInt(op) || AsSmallInt(op) != len(pubKeys) ||
		len(pubKeys) < required {

		return details
	}

	if !tokenizer.Next() || tokenizer.Opcode() != OP_CHECKMULTISIG {
		return details
	}

	// The script must be exactly exhausted with no tokenization error.
	if tokenizer.Next() || tokenizer.Err() != nil {
		return details
	}

	details.Valid = true
	details.Required = required
	details.NumPubKeys = len(pubKeys)
	details.PubKeys = pubKeys
	return details
}
