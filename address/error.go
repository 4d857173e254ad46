// Copyright (c) 2024 The btc-vision developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"errors"
	"fmt"
)

// UnsupportedWitnessVerError describes an error where a segwit address being
// decoded advertises a witness version beyond the 0 through 16 range the
// address format defines.
type UnsupportedWitnessVerError byte

// Error implements the error interface.
func (e UnsupportedWitnessVerError) Error() string {
	return fmt.Sprintf("unsupported witness version: %#x", byte(e))
}

// UnsupportedWitnessProgLenError describes an error where a segwit address
// being decoded carries a witness program whose length is not allowed for its
// witness version.
type UnsupportedWitnessProgLenError int

// Error implements the error interface.
func (e UnsupportedWitnessProgLenError) Error() string {
	return fmt.Sprintf("unsupported witness program length: %d", int(e))
}

// ChecksumVersionMismatchError describes an error where the checksum variant
// a segwit address was encoded with does not agree with its witness version.
// Version 0 programs must use the bech32 checksum while versions 1 and up
// must use bech32m.
type ChecksumVersionMismatchError struct {
	WitnessVersion byte
}

// Error implements the error interface.
func (e ChecksumVersionMismatchError) Error() string {
	return fmt.Sprintf("checksum mismatched with witness version %d",
		e.WitnessVersion)
}

// ErrMissingWitnessVersion is returned when the data portion of a decoded
// address is empty and thus cannot carry a witness version byte.
var ErrMissingWitnessVersion = errors.New("no witness version")

// ErrInvalidPubKeyLength is returned when a public key passed to an address
// derivation function is not of the required length.
var ErrInvalidPubKeyLength = errors.New("invalid public key length")

// ErrScriptTooLong is returned when a witness script passed to an address
// derivation function exceeds the maximum allowed script size.
var ErrScriptTooLong = errors.New("witness script too long")
