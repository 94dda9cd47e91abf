// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockdigest

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/bitmark-inc/hashminer/fault"
)

// Length - number of bytes in the digest
const Length = sha256.Size

// HexLength - number of characters in the printed digest
const HexLength = 2 * Length

// Digest - type for a digest
// stored and printed in natural (big endian) byte order
type Digest [Length]byte

// NewDigest - create a digest from a byte slice
func NewDigest(record []byte) Digest {
	return Digest(sha256.Sum256(record))
}

// LeadingZeros - count of leading '0' characters in the hex form
func (digest Digest) LeadingZeros() int {
	n := 0
	for _, b := range digest {
		if 0 != b&0xf0 {
			return n
		}
		n += 1
		if 0 != b&0x0f {
			return n
		}
		n += 1
	}
	return n
}

// IsZero - true for the unset digest
func (digest Digest) IsZero() bool {
	return digest == Digest{}
}

// String - convert a binary digest to hex string for use by the fmt package (for %s)
func (digest Digest) String() string {
	return hex.EncodeToString(digest[:])
}

// MarshalText - convert digest to hex text
func (digest Digest) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(digest))
	buffer := make([]byte, size)
	hex.Encode(buffer, digest[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a digest
func (digest *Digest) UnmarshalText(s []byte) error {
	if HexLength != len(s) {
		return fault.ErrInvalidDigest
	}
	buffer := make([]byte, Length)
	_, err := hex.Decode(buffer, s)
	if nil != err {
		return fault.ErrInvalidDigest
	}
	copy(digest[:], buffer)
	return nil
}

// FromString - parse a 64 character hex string
func FromString(s string) (Digest, error) {
	var digest Digest
	err := digest.UnmarshalText([]byte(s))
	return digest, err
}
