// Copyright (c) 2026 Keyspect Team
// Keyspect - SSH public key inspection tool
// This source code is licensed under the MIT license found in the LICENSE file.

package sshkey

import "fmt"

// FormatError reports a malformed key line or blob: wrong token count, an
// unsupported or mismatched key type, or undecodable base64. File read
// failures are never wrapped in a FormatError; they propagate as plain
// wrapped OS errors from FromFile.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string { return e.Reason }

// TruncatedError reports a key blob that ends before a declared field does.
// Offset is the byte position the failed read started at. For a payload that
// overruns the buffer, Length holds the declared payload length and Offset
// points at the start of the payload; for a missing length prefix, Prefix is
// true and Length is zero.
type TruncatedError struct {
	Offset int
	Length uint32
	Prefix bool
}

func (e *TruncatedError) Error() string {
	if e.Prefix {
		return fmt.Sprintf("length prefix out of bounds at offset %d", e.Offset)
	}
	return fmt.Sprintf("payload of length %d out of bounds at offset %d", e.Length, e.Offset)
}
