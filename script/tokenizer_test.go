// Copyright (c) 2024 The btc-vision developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"testing"
)

// TestScriptTokenizer ensures a wide variety of behavior provided by the
// script tokenizer performs as expected.
func TestScriptTokenizer(t *testing.T) {
	t.Parallel()

	type expectedResult struct {
		op    byte   // expected parsed opcode
		data  []byte // expected parsed data
		index int32  // expected index into raw script after parsing token
	}

	type tokenizerTest struct {
		name     string           // test description
		script   []byte           // the script to tokenize
		strict   bool             // strict minimal push enforcement
		expected []expectedResult // expected info after parsing each token
		finalIdx int32            // expected final byte index
		err      error            // expected error
	}

	// Add both positive and negative tests for OP_DATA_1 through OP_DATA_75.
	const numTestsHint = 100 // Make prealloc linter happy.
	tests := make([]tokenizerTest, 0, numTestsHint)
	for op := byte(OP_DATA_1); op <= OP_DATA_75; op++ {
		data := bytes.Repeat([]byte{0x01}, int(op))
		tests = append(tests, tokenizerTest{
			name:     fmt.Sprintf("OP_DATA_%d", op),
			script:   append([]byte{op}, data...),
			expected: []expectedResult{{op, data, 1 + int32(op)}},
			finalIdx: 1 + int32(op),
			err:      nil,
		})

		// Create test that provides one less byte than the data push
		// requires.
		tests = append(tests, tokenizerTest{
			name:     fmt.Sprintf("short OP_DATA_%d", op),
			script:   append([]byte{op}, data[1:]...),
			expected: nil,
			finalIdx: 0,
			err:      scriptError(ErrTruncatedPush, ""),
		})
	}

	// Add both positive and negative tests for OP_PUSHDATA{1,2,4}.
	data := bytes.Repeat([]byte{0x01}, 76)
	pushData2Len := make([]byte, 2)
	binary.LittleEndian.PutUint16(pushData2Len, 256)
	pushData2 := append([]byte{OP_PUSHDATA2}, pushData2Len...)
	pushData2 = append(pushData2, bytes.Repeat([]byte{0x01}, 256)...)
	pushData4Len := make([]byte, 4)
	binary.LittleEndian.PutUint32(pushData4Len, 65536)
	pushData4 := append([]byte{OP_PUSHDATA4}, pushData4Len...)
	pushData4 = append(pushData4, bytes.Repeat([]byte{0x01}, 65536)...)
	tests = append(tests, []tokenizerTest{{
		name:     "OP_PUSHDATA1",
		script:   append([]byte{OP_PUSHDATA1, 76}, data...),
		expected: []expectedResult{{OP_PUSHDATA1, data, 2 + 76}},
		finalIdx: 2 + 76,
		err:      nil,
	}, {
		name:     "OP_PUSHDATA1 no data length",
		script:   []byte{OP_PUSHDATA1},
		expected: nil,
		finalIdx: 0,
		err:      scriptError(ErrTruncatedLength, ""),
	}, {
		name:     "OP_PUSHDATA1 short data by 1 byte",
		script:   append([]byte{OP_PUSHDATA1, 76}, data[1:]...),
		expected: nil,
		finalIdx: 0,
		err:      scriptError(ErrTruncatedPush, ""),
	}, {
		name:     "OP_PUSHDATA2",
		script:   pushData2,
		expected: []expectedResult{{OP_PUSHDATA2, pushData2[3:], 3 + 256}},
		finalIdx: 3 + 256,
		err:      nil,
	}, {
		name:     "OP_PUSHDATA2 no data length",
		script:   []byte{OP_PUSHDATA2, 0x01},
		expected: nil,
		finalIdx: 0,
		err:      scriptError(ErrTruncatedLength, ""),
	}, {
		name:     "OP_PUSHDATA2 short data by 1 byte",
		script:   pushData2[:len(pushData2)-1],
		expected: nil,
		finalIdx: 0,
		err:      scriptError(ErrTruncatedPush, ""),
	}, {
		name:     "OP_PUSHDATA4",
		script:   pushData4,
		expected: []expectedResult{{OP_PUSHDATA4, pushData4[5:], 5 + 65536}},
		finalIdx: 5 + 65536,
		err:      nil,
	}, {
		name:     "OP_PUSHDATA4 no data length",
		script:   []byte{OP_PUSHDATA4, 0x01, 0x02, 0x03},
		expected: nil,
		finalIdx: 0,
		err:      scriptError(ErrTruncatedLength, ""),
	}, {
		name:     "OP_PUSHDATA4 short data by 1 byte",
		script:   pushData4[:len(pushData4)-1],
		expected: nil,
		finalIdx: 0,
		err:      scriptError(ErrTruncatedPush, ""),
	}}...)

	// Add tests for non-minimal data pushes under strict enforcement.  The
	// same scripts must tokenize without strict enforcement.
	tenBytes := bytes.Repeat([]byte{0x01}, 10)
	nonMinimal1 := append([]byte{OP_PUSHDATA1, 10}, tenBytes...)
	nonMinimal2Len := make([]byte, 2)
	binary.LittleEndian.PutUint16(nonMinimal2Len, 10)
	nonMinimal2 := append(append([]byte{OP_PUSHDATA2}, nonMinimal2Len...),
		tenBytes...)
	nonMinimal4Len := make([]byte, 4)
	binary.LittleEndian.PutUint32(nonMinimal4Len, 10)
	nonMinimal4 := append(append([]byte{OP_PUSHDATA4}, nonMinimal4Len...),
		tenBytes...)
	tests = append(tests, []tokenizerTest{{
		name:     "strict OP_PUSHDATA1 with 10 bytes",
		script:   nonMinimal1,
		strict:   true,
		expected: nil,
		finalIdx: 0,
		err:      scriptError(ErrMinimalPush, ""),
	}, {
		name:     "non-strict OP_PUSHDATA1 with 10 bytes",
		script:   nonMinimal1,
		expected: []expectedResult{{OP_PUSHDATA1, tenBytes, 12}},
		finalIdx: 12,
		err:      nil,
	}, {
		name:     "strict OP_PUSHDATA2 with 10 bytes",
		script:   nonMinimal2,
		strict:   true,
		expected: nil,
		finalIdx: 0,
		err:      scriptError(ErrMinimalPush, ""),
	}, {
		name:     "non-strict OP_PUSHDATA2 with 10 bytes",
		script:   nonMinimal2,
		expected: []expectedResult{{OP_PUSHDATA2, tenBytes, 13}},
		finalIdx: 13,
		err:      nil,
	}, {
		name:     "strict OP_PUSHDATA4 with 10 bytes",
		script:   nonMinimal4,
		strict:   true,
		expected: nil,
		finalIdx: 0,
		err:      scriptError(ErrMinimalPush, ""),
	}, {
		name:     "non-strict OP_PUSHDATA4 with 10 bytes",
		script:   nonMinimal4,
		expected: []expectedResult{{OP_PUSHDATA4, tenBytes, 15}},
		finalIdx: 15,
		err:      nil,
	}}...)

	// Add tests for plain opcodes and a multi-token script.
	tests = append(tests, []tokenizerTest{{
		name:     "empty script",
		script:   nil,
		expected: nil,
		finalIdx: 0,
		err:      nil,
	}, {
		name:     "OP_0",
		script:   []byte{OP_0},
		expected: []expectedResult{{OP_0, []byte{}, 1}},
		finalIdx: 1,
		err:      nil,
	}, {
		name:     "OP_16",
		script:   []byte{OP_16},
		expected: []expectedResult{{OP_16, nil, 1}},
		finalIdx: 1,
		err:      nil,
	}, {
		name:   "CSV timelock script",
		script: []byte{OP_2, OP_CHECKSEQUENCEVERIFY, OP_DROP, OP_DATA_1, 0xaa, OP_CHECKSIG},
		strict: true,
		expected: []expectedResult{
			{OP_2, nil, 1},
			{OP_CHECKSEQUENCEVERIFY, nil, 2},
			{OP_DROP, nil, 3},
			{OP_DATA_1, []byte{0xaa}, 5},
			{OP_CHECKSIG, nil, 6},
		},
		finalIdx: 6,
		err:      nil,
	}}...)

	for _, test := range tests {
		tokenizer := MakeScriptTokenizer(test.script, test.strict)
		var numParsed int
		for tokenizer.Next() {
			// Ensure the observed data is as expected.
			if numParsed >= len(test.expected) {
				t.Fatalf("%q: unexpected token %d", test.name,
					numParsed)
			}
			expected := &test.expected[numParsed]
			if tokenizer.Opcode() != expected.op {
				t.Fatalf("%q: unexpected opcode -- got %d, "+
					"want %d", test.name, tokenizer.Opcode(),
					expected.op)
			}
			if !bytes.Equal(tokenizer.Data(), expected.data) {
				t.Fatalf("%q: unexpected data -- got %x, "+
					"want %x", test.name, tokenizer.Data(),
					expected.data)
			}
			if tokenizer.ByteIndex() != expected.index {
				t.Fatalf("%q: unexpected byte index -- got "+
					"%d, want %d", test.name,
					tokenizer.ByteIndex(), expected.index)
			}
			numParsed++
		}

		// Ensure the tokenizer claims it is done.  This should be the
		// case regardless of whether or not there was a parse error.
		if !tokenizer.Done() {
			t.Fatalf("%q: tokenizer claims it is not done", test.name)
		}

		// Ensure the error is as expected.
		if test.err == nil && tokenizer.Err() != nil {
			t.Fatalf("%q: unexpected tokenizer err -- got %v, "+
				"want nil", test.name, tokenizer.Err())
		} else if test.err != nil {
			if !IsErrorCode(tokenizer.Err(), test.err.(Error).ErrorCode) {
				t.Fatalf("%q: unexpected tokenizer err -- got "+
					"%v, want code %v", test.name,
					tokenizer.Err(),
					test.err.(Error).ErrorCode)
			}
		}

		// Ensure the final index is the expected value.
		if tokenizer.ByteIndex() != test.finalIdx {
			t.Fatalf("%q: unexpected final byte index -- got %d, "+
				"want %d", test.name, tokenizer.ByteIndex(),
				test.finalIdx)
		}
	}
}

// TestScriptTokenizerTruncation ensures the tokenizer reports truncated
// length fields with a distinct error from truncated payloads.
func TestScriptTokenizerTruncation(t *testing.T) {
	t.Parallel()

	// A truncated length field.
	tokenizer := MakeScriptTokenizer([]byte{OP_PUSHDATA2, 0x01}, false)
	if tokenizer.Next() {
		t.Fatal("tokenizer parsed a truncated length field")
	}
	if !IsErrorCode(tokenizer.Err(), ErrTruncatedLength) {
		t.Fatalf("unexpected error: %v", tokenizer.Err())
	}

	// A complete length field with missing payload.
	tokenizer = MakeScriptTokenizer([]byte{OP_PUSHDATA1, 0x4c}, false)
	if tokenizer.Next() {
		t.Fatal("tokenizer parsed a truncated payload")
	}
	if !IsErrorCode(tokenizer.Err(), ErrTruncatedPush) {
		t.Fatalf("unexpected error: %v", tokenizer.Err())
	}
}
