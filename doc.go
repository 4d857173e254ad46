// Copyright (c) 2024 The btc-vision developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package btcruntime ties the script template, hashing, address and
serialization packages together into witness address derivation and
verification flows.

The derivation functions build a witness script from its parameters and
return it with the segwit address committing to it. The verification
functions are their inverse: given an address and a witness script they
report definitively whether the pair belongs together, never returning an
error for malformed input.

The stream codec reads and writes address and script pairs in a compact
length prefixed layout so derived pairs can be exchanged and re-verified on
the other side.
*/
package btcruntime
