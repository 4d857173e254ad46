// Copyright (c) 2024 The btc-vision developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package hash provides the digest primitives used to derive witness
// programs from public keys and witness scripts.
package hash

import (
	"hash"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"golang.org/x/crypto/ripemd160"
)

// calcHash returns the hash of buf using the passed hasher.
func calcHash(buf []byte, hasher hash.Hash) []byte {
	_, _ = hasher.Write(buf)
	return hasher.Sum(nil)
}

// Sha256 returns the single SHA-256 digest of the passed bytes.
func Sha256(buf []byte) []byte {
	return chainhash.HashB(buf)
}

// Hash160 calculates the hash ripemd160(sha256(b)).
func Hash160(buf []byte) []byte {
	return calcHash(chainhash.HashB(buf), ripemd160.New())
}
