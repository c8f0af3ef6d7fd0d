// Copyright (c) 2026 Keyspect Team
// Keyspect - SSH public key inspection tool
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/keyspect/internal/i18n"
	"github.com/toeirei/keyspect/internal/logging"
	"github.com/toeirei/keyspect/internal/sshkey"
)

// newInspectCmd builds the inspect subcommand. The key comes either from a
// file argument or from the --key flag as a literal line; both paths share
// the same decoder.
func newInspectCmd() *cobra.Command {
	var keyLiteral string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "inspect [public-key-file]",
		Short: "Extract the RSA components from an SSH public key",
		Long: `Decodes an ssh-rsa public key line and prints the public exponent e and
the modulus n, their hex renderings, the modulus bit length, and the key
fingerprint. The key is read from the given file, or passed inline with
--key.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var comps *sshkey.Components
			var err error

			switch {
			case keyLiteral != "" && len(args) > 0:
				return errors.New(i18n.T("inspect.error_source"))
			case keyLiteral != "":
				logging.Debugf("inspecting key from --key flag")
				comps, err = sshkey.FromString(keyLiteral)
			case len(args) == 1:
				logging.Debugf("inspecting key file %s", args[0])
				comps, err = sshkey.FromFile(args[0])
			default:
				return errors.New(i18n.T("inspect.error_source"))
			}
			if err != nil {
				return errors.New(localizeError(err))
			}

			report := buildReport(comps)
			if jsonOutput || appConfig.Output == "json" {
				return report.renderJSON(cmd.OutOrStdout())
			}
			fmt.Fprint(cmd.OutOrStdout(), report.render())
			return nil
		},
	}

	cmd.Flags().StringVarP(&keyLiteral, "key", "k", "", "public key line to inspect (instead of a file)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "emit the report as JSON")

	return cmd
}

// localizeError maps the decoder's error kinds onto user-facing messages.
// The kind is preserved in the wording; the error is never reinterpreted.
func localizeError(err error) string {
	var formatErr *sshkey.FormatError
	var truncatedErr *sshkey.TruncatedError
	switch {
	case errors.As(err, &formatErr):
		return i18n.T("inspect.error_format", err)
	case errors.As(err, &truncatedErr):
		return i18n.T("inspect.error_truncated", err)
	default:
		return i18n.T("inspect.error_io", err)
	}
}
