// Copyright (c) 2024 The btc-vision developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"encoding/binary"
	"fmt"
)

// ScriptTokenizer provides a facility for easily and efficiently tokenizing
// scripts without creating allocations.  Each successive opcode is parsed
// with the Next function, which returns false when iteration is complete,
// either due to successfully tokenizing the entire script or encountering a
// parse error.  In the case of failure, the Err function may be used to
// obtain the specific parse error.
//
// Upon successfully parsing an opcode, the opcode and data associated with it
// may be obtained via the Opcode and Data functions, respectively.
//
// When the tokenizer is constructed with strict minimal-push enforcement, any
// data push that could have been expressed with a smaller opcode fails with
// ErrMinimalPush.  Recognizers that probe untrusted scripts rely on every
// failure being reported through Err rather than a panic.
type ScriptTokenizer struct {
	script     []byte
	offset     int32
	strictPush bool
	op         byte
	data       []byte
	err        error
}

// Done returns true when either all opcodes have been exhausted or a parse
// failure was encountered and therefore the state has an associated error.
func (t *ScriptTokenizer) Done() bool {
	return t.err != nil || t.offset >= int32(len(t.script))
}

// Next attempts to parse the next opcode and returns whether or not it was
// successful.  It will not be successful if invoked when already at the end
// of the script, a parse failure is encountered, or an associated error
// already exists due to a previous parse failure.
//
// In the case of a true return, the parsed opcode and data can be obtained
// with the associated functions and the offset into the script will either
// point to the next opcode or the end of the script if the final opcode was
// parsed.
//
// In the case of a false return, the parsed opcode and data will be the last
// successfully parsed values (if any) and the offset into the script will
// either point to the failing opcode or the end of the script if the function
// was invoked when already at the end of the script.
//
// Invoking this function when already at the end of the script is not
// considered an error and will simply return false.
func (t *ScriptTokenizer) Next() bool {
	if t.Done() {
		return false
	}

	op := t.script[t.offset]
	switch {
	// Plain opcodes carry no data.  Note that OP_0 is a push of a
	// zero-length operand while OP_1NEGATE and OP_[1-16] represent the
	// data themselves, so all of them fall in here.
	case op < OP_DATA_1 || op > OP_PUSHDATA4:
		t.offset++
		t.op = op
		t.data = nil
		if op == OP_0 {
			t.data = []byte{}
		}
		return true

	// Data pushes of specific lengths -- OP_DATA_[1-75].
	case op <= OP_DATA_75:
		script := t.script[t.offset:]
		dataLen := int32(op)
		if int32(len(script)) < 1+dataLen {
			str := fmt.Sprintf("opcode %s requires %d bytes, but "+
				"script only has %d remaining", OpcodeName(op),
				dataLen, len(script)-1)
			t.err = scriptError(ErrTruncatedPush, str)
			return false
		}

		t.offset += 1 + dataLen
		t.op = op
		t.data = script[1 : 1+dataLen]
		return true

	// Data pushes with parsed lengths -- OP_PUSHDATA{1,2,4}.
	default:
		var lenLen, minLen int32
		switch op {
		case OP_PUSHDATA1:
			lenLen, minLen = 1, OP_DATA_75+1
		case OP_PUSHDATA2:
			lenLen, minLen = 2, 0x100
		case OP_PUSHDATA4:
			lenLen, minLen = 4, 0x10000
		}

		script := t.script[t.offset+1:]
		if int32(len(script)) < lenLen {
			str := fmt.Sprintf("opcode %s requires a %d-byte "+
				"length, but script only has %d remaining",
				OpcodeName(op), lenLen, len(script))
			t.err = scriptError(ErrTruncatedLength, str)
			return false
		}

		// The length bytes are interpreted as a little-endian unsigned
		// integer.
		var dataLen int32
		switch op {
		case OP_PUSHDATA1:
			dataLen = int32(script[0])
		case OP_PUSHDATA2:
			dataLen = int32(binary.LittleEndian.Uint16(script[:2]))
		case OP_PUSHDATA4:
			dataLen = int32(binary.LittleEndian.Uint32(script[:4]))
		}

		// Disallow entries that do not fit the script or were sign
		// extended.
		script = script[lenLen:]
		if dataLen > int32(len(script)) || dataLen < 0 {
			str := fmt.Sprintf("opcode %s pushes %d bytes, but "+
				"script only has %d remaining", OpcodeName(op),
				dataLen, len(script))
			t.err = scriptError(ErrTruncatedPush, str)
			return false
		}

		// A push that fits a smaller encoding violates the minimal
		// push policy.
		if t.strictPush && dataLen < minLen {
			str := fmt.Sprintf("opcode %s used for a %d-byte push "+
				"which has a smaller canonical encoding",
				OpcodeName(op), dataLen)
			t.err = scriptError(ErrMinimalPush, str)
			return false
		}

		t.offset += 1 + lenLen + dataLen
		t.op = op
		t.data = script[:dataLen]
		return true
	}
}

// Script returns the full script associated with the tokenizer.
func (t *ScriptTokenizer) Script() []byte {
	return t.script
}

// ByteIndex returns the current offset into the full script that will be
// parsed next and therefore also implies everything before it has already
// been parsed.
func (t *ScriptTokenizer) ByteIndex() int32 {
	return t.offset
}

// Opcode returns the current opcode associated with the tokenizer.
func (t *ScriptTokenizer) Opcode() byte {
	return t.op
}

// Data returns the data associated with the most recently successfully parsed
// opcode.  It is nil for non-push opcodes and non-nil, though possibly empty,
// for push opcodes.
func (t *ScriptTokenizer) Data() []byte {
	return t.data
}

// IsPush returns whether or not the most recently parsed opcode is a data
// push, including the zero-length push OP_0.  The small integer opcodes OP_1
// through OP_16 and OP_1NEGATE are not considered pushes here since their
// numeric interpretation is template specific.
func (t *ScriptTokenizer) IsPush() bool {
	return t.data != nil
}

// Err returns any errors currently associated with the tokenizer.  This will
// only be non-nil in the case a parsing error was encountered.
func (t *ScriptTokenizer) Err() error {
	return t.err
}

// MakeScriptTokenizer returns a new instance of a script tokenizer.  When
// strictMinimalPush is true, any data push that does not use the smallest
// possible encoding for its payload results in a tokenization error.
//
// See the docs for ScriptTokenizer for more details.
func MakeScriptTokenizer(scr []byte, strictMinimalPush bool) ScriptTokenizer {
	return ScriptTokenizer{script: scr, strictPush: strictMinimalPush}
}
