// Copyright (c) 2026 Keyspect Team
// Keyspect - SSH public key inspection tool
// This source code is licensed under the MIT license found in the LICENSE file.

package sshkey

import (
	"fmt"
	"math/big"
	"os"
)

// Components holds the two integers recovered from an RSA public key blob.
type Components struct {
	E *big.Int // public exponent
	N *big.Int // modulus
}

// BitLen returns the bit length of the modulus, the conventional "key size"
// of an RSA key.
func (c *Components) BitLen() int {
	return c.N.BitLen()
}

// FromString extracts the RSA components from a public key line given as a
// string. Leading and trailing whitespace is tolerated.
func FromString(text string) (*Components, error) {
	return fromText(text)
}

// FromFile reads a public key file fully into memory and extracts the RSA
// components from its contents. Read failures (missing file, permission)
// are returned as wrapped OS errors, distinct from FormatError and
// TruncatedError, so callers can tell I/O problems from parse problems.
func FromFile(path string) (*Components, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading public key file %s: %w", path, err)
	}
	return fromText(string(data))
}

// fromText is the single parsing path shared by both entry points: envelope
// first, then the binary blob. The tag inside the blob is verified
// independently of the outer envelope tag.
func fromText(text string) (*Components, error) {
	_, blob, err := ParseEnvelope(text)
	if err != nil {
		return nil, err
	}
	e, n, err := DecodeBlob(blob)
	if err != nil {
		return nil, err
	}
	return &Components{E: e, N: n}, nil
}
