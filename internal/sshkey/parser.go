// Copyright (c) 2026 Keyspect Team
// Keyspect - SSH public key inspection tool
// This source code is licensed under the MIT license found in the LICENSE file.

package sshkey

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// KeyTypeRSA is the algorithm tag of an RSA public key, both as the first
// token of the text line and as the first field inside the binary blob.
const KeyTypeRSA = "ssh-rsa"

// ParseEnvelope splits a raw public key line (like one from an
// authorized_keys file or a .pub file) into its algorithm tag and decoded
// key blob. The line format is "<tag> <base64-blob> [comment...]"; the
// comment, if present, is ignored. Only ssh-rsa lines are accepted.
func ParseEnvelope(rawKey string) (typeTag string, blob []byte, err error) {
	fields := strings.Fields(strings.TrimSpace(rawKey))
	if len(fields) < 2 {
		return "", nil, &FormatError{Reason: "malformed key line"}
	}

	typeTag = fields[0]
	if typeTag != KeyTypeRSA {
		return "", nil, &FormatError{Reason: fmt.Sprintf("unsupported key type %q", typeTag)}
	}

	blob, decodeErr := base64.StdEncoding.DecodeString(fields[1])
	if decodeErr != nil {
		return "", nil, &FormatError{Reason: fmt.Sprintf("invalid base64: %v", decodeErr)}
	}

	return typeTag, blob, nil
}
