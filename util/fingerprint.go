// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"encoding/hex"
	"hash"

	"golang.org/x/crypto/sha3"
)

// FingerprintLength - number of bytes in a fingerprint
const FingerprintLength = 32

// FingerprintBytes - SHA3-256 of some content
type FingerprintBytes [FingerprintLength]byte

// Fingerprint - digest of a single byte slice
func Fingerprint(data []byte) FingerprintBytes {
	return sha3.Sum256(data)
}

// String - hex for the fmt package (for %s)
func (f FingerprintBytes) String() string {
	return hex.EncodeToString(f[:])
}

// GoString - for the fmt package (for %#v)
func (f FingerprintBytes) GoString() string {
	return "<SHA3-256:" + hex.EncodeToString(f[:]) + ">"
}

// MarshalText - hex text for JSON encoding
func (f FingerprintBytes) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(FingerprintLength))
	hex.Encode(buffer, f[:])
	return buffer, nil
}

// Fingerprinter - accumulate a fingerprint over a sequence of items
//
// each item is length prefixed so that the split between items
// affects the result
type Fingerprinter struct {
	h hash.Hash
}

// NewFingerprinter - an empty accumulator
func NewFingerprinter() *Fingerprinter {
	return &Fingerprinter{h: sha3.New256()}
}

// Add - append one item
func (f *Fingerprinter) Add(item []byte) {
	f.h.Write(ToVarint64(uint64(len(item))))
	f.h.Write(item)
}

// Sum - fingerprint of the items added so far
func (f *Fingerprinter) Sum() FingerprintBytes {
	var result FingerprintBytes
	copy(result[:], f.h.Sum(nil))
	return result
}
