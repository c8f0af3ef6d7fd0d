// Copyright (c) 2026 Keyspect Team
// Keyspect - SSH public key inspection tool
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"encoding/json"
	"io"
	"math/big"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/keyspect/internal/i18n"
	"github.com/toeirei/keyspect/internal/sshkey"
	xssh "golang.org/x/crypto/ssh"
)

var (
	reportHeaderStyle = lipgloss.NewStyle().Bold(true)
	reportNoteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	reportWarnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// Report is the presentation record derived from the decoded key
// components. It performs no validation; it only renders what the decoder
// returned.
type Report struct {
	Exponent    string `json:"exponent"`
	Modulus     string `json:"modulus"`
	BitLength   int    `json:"bit_length"`
	HexExponent string `json:"hex_exponent"`
	HexModulus  string `json:"hex_modulus"`
	Fingerprint string `json:"fingerprint,omitempty"`
	Note        string `json:"note,omitempty"`

	warn bool
}

// buildReport derives the presentation record from the decoded components.
func buildReport(c *sshkey.Components) Report {
	r := Report{
		Exponent:    c.E.String(),
		Modulus:     c.N.String(),
		BitLength:   c.BitLen(),
		HexExponent: "0x" + c.E.Text(16),
		HexModulus:  "0x" + c.N.Text(16),
	}

	// Fingerprint is best-effort: reassemble the canonical wire blob and let
	// x/crypto compute the SHA256 digest OpenSSH would show.
	if pk, err := xssh.ParsePublicKey(rsaWireBlob(c)); err == nil {
		r.Fingerprint = xssh.FingerprintSHA256(pk)
	}

	switch {
	case c.E.Cmp(big.NewInt(65537)) == 0:
		r.Note = i18n.T("inspect.exponent_standard")
	case c.E.Cmp(big.NewInt(3)) == 0:
		r.Note = i18n.T("inspect.exponent_small")
		r.warn = true
	default:
		r.Note = i18n.T("inspect.exponent_custom", c.E.String())
	}

	return r
}

// render formats the report for terminal display.
func (r Report) render() string {
	var b strings.Builder
	b.WriteString(reportHeaderStyle.Render(i18n.T("inspect.header")))
	b.WriteString("\n")
	b.WriteString(i18n.T("inspect.exponent", r.Exponent) + "\n")
	b.WriteString(i18n.T("inspect.exponent_hex", r.HexExponent) + "\n")
	b.WriteString(i18n.T("inspect.modulus", r.Modulus) + "\n")
	b.WriteString(i18n.T("inspect.modulus_hex", r.HexModulus) + "\n")
	b.WriteString(i18n.T("inspect.bit_length", r.BitLength) + "\n")
	if r.Fingerprint != "" {
		b.WriteString(i18n.T("inspect.fingerprint", r.Fingerprint) + "\n")
	}
	if r.Note != "" {
		style := reportNoteStyle
		if r.warn {
			style = reportWarnStyle
		}
		b.WriteString(style.Render(r.Note))
		b.WriteString("\n")
	}
	return b.String()
}

// renderJSON writes the report as indented JSON.
func (r Report) renderJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// rsaWireBlob reassembles the binary key blob from the components, byte for
// byte as OpenSSH encodes it.
func rsaWireBlob(c *sshkey.Components) []byte {
	var blob []byte
	blob = sshkey.AppendString(blob, []byte(sshkey.KeyTypeRSA))
	blob = sshkey.AppendString(blob, mpintBytes(c.E))
	blob = sshkey.AppendString(blob, mpintBytes(c.N))
	return blob
}

// mpintBytes renders a non-negative big integer in SSH mpint form: big
// endian, with a leading zero byte when the high bit is set.
func mpintBytes(v *big.Int) []byte {
	b := v.Bytes()
	if len(b) > 0 && b[0]&0x80 != 0 {
		return append([]byte{0x00}, b...)
	}
	return b
}
