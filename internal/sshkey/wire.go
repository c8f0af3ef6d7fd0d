// Copyright (c) 2026 Keyspect Team
// Keyspect - SSH public key inspection tool
// This source code is licensed under the MIT license found in the LICENSE file.

package sshkey

import "encoding/binary"

// ReadString reads one length-prefixed field from buf at offset: a 4-byte
// unsigned big-endian length followed by that many payload bytes (the
// "string" type of RFC 4251 section 5). It returns the payload as a subslice
// of buf and the offset of the next field. The caller threads the offset;
// there is no hidden cursor and buf is never modified.
func ReadString(buf []byte, offset int) (payload []byte, next int, err error) {
	if offset+4 > len(buf) {
		return nil, 0, &TruncatedError{Offset: offset, Prefix: true}
	}
	length := binary.BigEndian.Uint32(buf[offset : offset+4])
	start := offset + 4
	if uint64(start)+uint64(length) > uint64(len(buf)) {
		return nil, 0, &TruncatedError{Offset: start, Length: length}
	}
	next = start + int(length)
	return buf[start:next], next, nil
}

// AppendString appends payload to buf as a length-prefixed field and returns
// the extended buffer, mirroring what ReadString consumes.
func AppendString(buf, payload []byte) []byte {
	var prefix [4]byte
	binary.BigEndian.PutUint32(prefix[:], uint32(len(payload)))
	buf = append(buf, prefix[:]...)
	return append(buf, payload...)
}
