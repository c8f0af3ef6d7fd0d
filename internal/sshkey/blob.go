// Copyright (c) 2026 Keyspect Team
// Keyspect - SSH public key inspection tool
// This source code is licensed under the MIT license found in the LICENSE file.

package sshkey

import (
	"fmt"
	"math/big"
)

// DecodeBlob walks a decoded ssh-rsa key blob and returns the public
// exponent and modulus. The blob is three length-prefixed fields in fixed
// order: the "ssh-rsa" tag, the exponent bytes, the modulus bytes. Both
// integers are unsigned big-endian; a zero-length field decodes to 0.
//
// Trailing bytes after the modulus are tolerated and ignored, matching
// permissive OpenSSH blob readers that skip vendor extensions appended
// after the RSA fields.
func DecodeBlob(blob []byte) (e, n *big.Int, err error) {
	tag, offset, err := ReadString(blob, 0)
	if err != nil {
		return nil, nil, err
	}
	if string(tag) != KeyTypeRSA {
		return nil, nil, &FormatError{Reason: fmt.Sprintf("blob type mismatch: expected %s got %q", KeyTypeRSA, tag)}
	}

	eBytes, offset, err := ReadString(blob, offset)
	if err != nil {
		return nil, nil, err
	}

	nBytes, _, err := ReadString(blob, offset)
	if err != nil {
		return nil, nil, err
	}

	return new(big.Int).SetBytes(eBytes), new(big.Int).SetBytes(nBytes), nil
}
