// Copyright (c) 2024 The btc-vision developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

// These constants are the values of the bitcoin script opcodes used by this
// package.  The names match the canonical opcode names from Bitcoin Core so
// scripts produced here are directly comparable against scripts produced by
// other implementations.
const (
	OP_0         = 0x00 // 0
	OP_FALSE     = 0x00 // 0 - AKA OP_0
	OP_DATA_1    = 0x01 // 1
	OP_DATA_2    = 0x02 // 2
	OP_DATA_3    = 0x03 // 3
	OP_DATA_17   = 0x11 // 17
	OP_DATA_20   = 0x14 // 20
	OP_DATA_32   = 0x20 // 32
	OP_DATA_33   = 0x21 // 33
	OP_DATA_65   = 0x41 // 65
	OP_DATA_75   = 0x4b // 75
	OP_PUSHDATA1 = 0x4c // 76
	OP_PUSHDATA2 = 0x4d // 77
	OP_PUSHDATA4 = 0x4e // 78
	OP_1NEGATE   = 0x4f // 79
	OP_RESERVED  = 0x50 // 80
	OP_1         = 0x51 // 81 - AKA OP_TRUE
	OP_TRUE      = 0x51 // 81
	OP_2         = 0x52 // 82
	OP_3         = 0x53 // 83
	OP_4         = 0x54 // 84
	OP_5         = 0x55 // 85
	OP_6         = 0x56 // 86
	OP_7         = 0x57 // 87
	OP_8         = 0x58 // 88
	OP_9         = 0x59 // 89
	OP_10        = 0x5a // 90
	OP_11        = 0x5b // 91
	OP_12        = 0x5c // 92
	OP_13        = 0x5d // 93
	OP_14        = 0x5e // 94
	OP_15        = 0x5f // 95
	OP_16        = 0x60 // 96

	OP_VERIFY = 0x69 // 105
	OP_RETURN = 0x6a // 106
	OP_DROP   = 0x75 // 117
	OP_DUP    = 0x76 // 118

	OP_EQUAL       = 0x87 // 135
	OP_EQUALVERIFY = 0x88 // 136

	OP_HASH160 = 0xa9 // 169
	OP_HASH256 = 0xaa // 170

	OP_CHECKSIG            = 0xac // 172
	OP_CHECKSIGVERIFY      = 0xad // 173
	OP_CHECKMULTISIG       = 0xae // 174
	OP_CHECKMULTISIGVERIFY = 0xaf // 175

	OP_CHECKLOCKTIMEVERIFY = 0xb1 // 177 - AKA OP_NOP2
	OP_CHECKSEQUENCEVERIFY = 0xb2 // 178 - AKA OP_NOP3
)

// opcodeNames maps the opcodes this package deals in to their canonical
// names for use in error and log messages.  Opcodes without an entry are
// formatted numerically.
var opcodeNames = map[byte]string{
	OP_0:                   "OP_0",
	OP_PUSHDATA1:           "OP_PUSHDATA1",
	OP_PUSHDATA2:           "OP_PUSHDATA2",
	OP_PUSHDATA4:           "OP_PUSHDATA4",
	OP_1NEGATE:             "OP_1NEGATE",
	OP_RESERVED:            "OP_RESERVED",
	OP_1:                   "OP_1",
	OP_2:                   "OP_2",
	OP_3:                   "OP_3",
	OP_4:                   "OP_4",
	OP_5:                   "OP_5",
	OP_6:                   "OP_6",
	OP_7:                   "OP_7",
	OP_8:                   "OP_8",
	OP_9:                   "OP_9",
	OP_10:                  "OP_10",
	OP_11:                  "OP_11",
	OP_12:                  "OP_12",
	OP_13:                  "OP_13",
	OP_14:                  "OP_14",
	OP_15:                  "OP_15",
	OP_16:                  "OP_16",
	OP_VERIFY:              "OP_VERIFY",
	OP_RETURN:              "OP_RETURN",
	OP_DROP:                "OP_DROP",
	OP_DUP:                 "OP_DUP",
	OP_EQUAL:               "OP_EQUAL",
	OP_EQUALVERIFY:         "OP_EQUALVERIFY",
	OP_HASH160:             "OP_HASH160",
	OP_HASH256:             "OP_HASH256",
	OP_CHECKSIG:            "OP_CHECKSIG",
	OP_CHECKSIGVERIFY:      "OP_CHECKSIGVERIFY",
	OP_CHECKMULTISIG:       "OP_CHECKMULTISIG",
	OP_CHECKMULTISIGVERIFY: "OP_CHECKMULTISIGVERIFY",
	OP_CHECKLOCKTIMEVERIFY: "OP_CHECKLOCKTIMEVERIFY",
	OP_CHECKSEQUENCEVERIFY: "OP_CHECKSEQUENCEVERIFY",
}

// OpcodeName returns the canonical name for the passed opcode.  Data push
// opcodes without an individual constant are named OP_DATA_#, and opcodes
// this package has no name for are formatted as OP_UNKNOWN#.
func OpcodeName(op byte) string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	if op >= OP_DATA_1 && op <= OP_DATA_75 {
		return "OP_DATA_" + itoa(int(op))
	}
	return "OP_UNKNOWN" + itoa(int(op))
}

// itoa is a tiny allocation-free replacement for strconv.Itoa for the small
// non-negative values opcode names need.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [3]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// IsSmallInt returns whether or not the opcode is considered a small integer,
// which is an OP_0, or OP_1 through OP_16.
func IsSmallInt(op byte) bool {
	return op == OP_0 || (op >= OP_1 && op <= OP_16)
}

// AsSmallInt returns the passed opcode, which must be true according to
// IsSmallInt, as an integer.
func AsSmallInt(op byte) int {
	if op == OP_0 {
		return 0
	}
	return int(op - (OP_1 - 1))
}
