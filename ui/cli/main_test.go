// Copyright (c) 2026 Keyspect Team
// Keyspect - SSH public key inspection tool
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// runRoot executes a fresh root command with the given args and returns its
// stdout. Config discovery is redirected into a temp dir so tests never
// touch the developer's real config.
func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	root := NewRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func writeKeyFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "id_rsa_test.pub")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing key fixture: %v", err)
	}
	return path
}

const testKeyLine = "ssh-rsa AAAAB3NzaC1yc2EAAAADAQABAAAAAwECAw== test@example.com"

func TestInspect_FromFile(t *testing.T) {
	path := writeKeyFile(t, testKeyLine+"\n")
	out, err := runRoot(t, "inspect", path)
	if err != nil {
		t.Fatalf("inspect failed: %v", err)
	}
	for _, want := range []string{"65537", "0x10001", "66051", "0x10203", "17"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestInspect_FromKeyFlag(t *testing.T) {
	out, err := runRoot(t, "inspect", "--key", testKeyLine)
	if err != nil {
		t.Fatalf("inspect --key failed: %v", err)
	}
	if !strings.Contains(out, "65537") {
		t.Fatalf("output missing exponent:\n%s", out)
	}
}

func TestInspect_JSONOutput(t *testing.T) {
	path := writeKeyFile(t, testKeyLine)
	out, err := runRoot(t, "inspect", "--json", path)
	if err != nil {
		t.Fatalf("inspect --json failed: %v", err)
	}

	var rep Report
	if err := json.Unmarshal([]byte(out), &rep); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if rep.Exponent != "65537" || rep.Modulus != "66051" {
		t.Fatalf("unexpected report: %+v", rep)
	}
	if rep.HexExponent != "0x10001" || rep.HexModulus != "0x10203" {
		t.Fatalf("unexpected hex renderings: %+v", rep)
	}
	if rep.BitLength != 17 {
		t.Fatalf("unexpected bit length: %d", rep.BitLength)
	}
}

func TestInspect_NoSourceGiven(t *testing.T) {
	if _, err := runRoot(t, "inspect"); err == nil {
		t.Fatal("expected error when neither file nor --key is given")
	}
}

func TestInspect_BothSourcesGiven(t *testing.T) {
	path := writeKeyFile(t, testKeyLine)
	if _, err := runRoot(t, "inspect", path, "--key", testKeyLine); err == nil {
		t.Fatal("expected error when both file and --key are given")
	}
}

func TestInspect_UnsupportedKeyType(t *testing.T) {
	path := writeKeyFile(t, "ssh-ed25519 AAAAC3NzaC1lZDI1NTE5AAAAIBk user@host")
	_, err := runRoot(t, "inspect", path)
	if err == nil {
		t.Fatal("expected error for non-RSA key")
	}
	if !strings.Contains(err.Error(), "unsupported key type") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestInspect_MissingFile(t *testing.T) {
	_, err := runRoot(t, "inspect", filepath.Join(t.TempDir(), "nope.pub"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "Could not read key") {
		t.Fatalf("expected the I/O error wording, got: %v", err)
	}
}

func TestResolveBuildVersion_WithBuildInfo(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Path: "github.com/toeirei/keyspect", Version: "v1.2.3"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "deadbeef"},
			{Key: "vcs.time", Value: "2026-01-01T00:00:00Z"},
		},
	}

	v, c, d := resolveBuildVersion(info)
	if v != "v1.2.3" {
		t.Fatalf("expected version v1.2.3, got %s", v)
	}
	if c != "deadbeef" {
		t.Fatalf("expected commit deadbeef, got %s", c)
	}
	if d != "2026-01-01T00:00:00Z" {
		t.Fatalf("expected date set, got %s", d)
	}
}

func TestGetConfigPathFromCli_FlagNotSet(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().String("config", "", "config file")

	p, err := getConfigPathFromCli(cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != nil {
		t.Fatalf("expected nil path when flag not set, got %v", *p)
	}
}

func TestGetConfigPathFromCli_WithValidFile(t *testing.T) {
	file, err := os.CreateTemp("", "kscfg-*.yaml")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer func() { _ = os.Remove(file.Name()) }()
	_ = file.Close()

	cmd := &cobra.Command{}
	cmd.Flags().String("config", "", "config file")
	if err := cmd.Flags().Set("config", file.Name()); err != nil {
		t.Fatalf("setting flag: %v", err)
	}

	p, err := getConfigPathFromCli(cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p == nil || *p != file.Name() {
		t.Fatalf("expected path %q, got %v", file.Name(), p)
	}
}
