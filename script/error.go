// Copyright (c) 2024 The btc-vision developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import "fmt"

// ErrorCode identifies a kind of script error.
type ErrorCode int

// These constants are used to identify a specific Error.
const (
	// ErrInternal is returned if internal consistency checks fail.  In
	// practice this error should never be seen as it would mean there is
	// an error in the engine logic.
	ErrInternal ErrorCode = iota

	// ErrTruncatedLength is returned when a data push opcode that carries
	// an explicit length field (OP_PUSHDATA1/2/4) ends before the length
	// field is complete.
	ErrTruncatedLength

	// ErrTruncatedPush is returned when a data push opcode declares more
	// payload bytes than remain in the script.
	ErrTruncatedPush

	// ErrMinimalPush is returned when a strict tokenizer encounters a data
	// push that does not use the smallest possible opcode for its payload
	// length.
	ErrMinimalPush

	// ErrMinimalNum is returned when a number is not encoded with the
	// smallest possible number of bytes, including the negative-zero and
	// padded-sign-byte forms.
	ErrMinimalNum

	// ErrNumTooBig is returned when decoding a number that is serialized
	// with more bytes than the allowed maximum.
	ErrNumTooBig

	// ErrElementTooBig is returned when a canonical data push exceeds the
	// maximum allowed size of a single stack element.
	ErrElementTooBig

	// ErrScriptTooBig is returned when building a script that would exceed
	// the maximum allowed script size.
	ErrScriptTooBig

	// ErrInvalidPubKeyLen is returned by the template builders when a
	// public key is neither 33 (compressed) nor 65 (uncompressed) bytes.
	ErrInvalidPubKeyLen

	// ErrCSVOutOfRange is returned by the CSV timelock builder when the
	// relative block count does not fit the 16-bit BIP-68 field.
	ErrCSVOutOfRange

	// ErrInvalidMultiSigParams is returned by the multisig builder when
	// the required-signature count or the key count is outside 1..16, or
	// more signatures are required than keys are present.
	ErrInvalidMultiSigParams

	// numErrorCodes is the maximum error code number used in tests.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrInternal:              "ErrInternal",
	ErrTruncatedLength:       "ErrTruncatedLength",
	ErrTruncatedPush:         "ErrTruncatedPush",
	ErrMinimalPush:           "ErrMinimalPush",
	ErrMinimalNum:            "ErrMinimalNum",
	ErrNumTooBig:             "ErrNumTooBig",
	ErrElementTooBig:         "ErrElementTooBig",
	ErrScriptTooBig:          "ErrScriptTooBig",
	ErrInvalidPubKeyLen:      "ErrInvalidPubKeyLen",
	ErrCSVOutOfRange:         "ErrCSVOutOfRange",
	ErrInvalidMultiSigParams: "ErrInvalidMultiSigParams",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error identifies a script-related error.  It is used to indicate issues
// such as malformed data pushes, non-minimal encodings, and invalid template
// parameters.
//
// The caller can use type assertions to determine if an error is an Error and
// access the ErrorCode field to ascertain the specific reason for the
// failure.
type Error struct {
	ErrorCode   ErrorCode
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// scriptError creates an Error given a set of arguments.
func scriptError(c ErrorCode, desc string) Error {
	return Error{ErrorCode: c, Description: desc}
}

// IsErrorCode returns whether or not the provided error is a script error
// with the provided error code.
func IsErrorCode(err error, c ErrorCode) bool {
	serr, ok := err.(Error)
	return ok && serr.ErrorCode == c
}
