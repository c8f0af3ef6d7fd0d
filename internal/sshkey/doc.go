// Copyright (c) 2026 Keyspect Team
// Keyspect - SSH public key inspection tool
// This source code is licensed under the MIT license found in the LICENSE file.

// Package sshkey decodes OpenSSH RSA public key lines into their raw RSA
// components. It parses the textual envelope ("ssh-rsa <base64> [comment]"),
// walks the length-prefixed binary blob inside, and returns the public
// exponent and modulus as big integers. The helpers are deterministic, keep
// no state between calls, and are safe to use concurrently on distinct
// inputs.
package sshkey
