// Copyright (c) 2024 The btc-vision developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

const (
	// MaxScriptSize is the maximum allowed length in bytes of a raw
	// script.
	MaxScriptSize = 10000

	// MaxScriptElementSize is the maximum number of bytes pushable to the
	// stack by a single canonical data push.
	MaxScriptElementSize = 520

	// MaxCSVBlocks is the largest relative block count expressible in the
	// 16-bit BIP-68 sequence field the CSV timelock template uses.
	MaxCSVBlocks = 0xffff

	// MaxTemplatePubKeys is the maximum number of public keys the
	// multisig template supports, bounded by the largest small integer
	// opcode.
	MaxTemplatePubKeys = 16

	// PubKeyLenCompressed and PubKeyLenUncompressed are the two public
	// key serializations the templates accept.
	PubKeyLenCompressed   = 33
	PubKeyLenUncompressed = 65
)

// isAcceptablePubKeyLen returns whether the passed serialized public key has
// one of the two accepted lengths.  No curve validation is performed.
func isAcceptablePubKeyLen(pubKey []byte) bool {
	return len(pubKey) == PubKeyLenCompressed ||
		len(pubKey) == PubKeyLenUncompressed
}
