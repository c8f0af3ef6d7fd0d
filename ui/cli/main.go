// Copyright (c) 2026 Keyspect Team
// Keyspect - SSH public key inspection tool
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface (CLI) for the Keyspect
// application using the Cobra library. It defines the root command, the
// inspect and version subcommands, flags, and the main entry point for
// execution.

package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/toeirei/keyspect/buildvars"
	"github.com/toeirei/keyspect/internal/config"
	"github.com/toeirei/keyspect/internal/i18n"
	"github.com/toeirei/keyspect/internal/logging"
)

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)
var cfgFile string
var verbose bool
var showVersionFlag bool

var appConfig config.Config

// setupDefaultServices loads the configuration and initializes i18n and
// logging for every command run.
func setupDefaultServices(cmd *cobra.Command, args []string) error {
	// Load optional config file argument from cli
	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	defaults := map[string]any{
		"language": "en",
		"output":   "text",
	}

	appConfig, err = config.LoadConfig[config.Config](cmd, defaults, optionalConfigPath)
	// A "file not found" error is expected on first run, so we handle it
	// specifically: run on defaults and persist a fresh config file.
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		if writeErr := config.WriteConfigFile(&appConfig, false); writeErr != nil {
			log.Warnf("%s", i18n.T("config.warn_write_default", writeErr))
		}
	} else if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	i18n.Init(appConfig.Language)
	logging.SetDebug(verbose || appConfig.Debug)
	logging.Debugf("configuration loaded: language=%s output=%s", appConfig.Language, appConfig.Output)

	return nil
}

// Execute runs the CLI entrypoint. The root main package should call this
// function and handle process exit.
func Execute() error {
	rootCmd := NewRootCmd()
	return rootCmd.Execute()
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if cmd.Flags().Changed("config") {
		path, err := cmd.Flags().GetString("config")
		if err != nil {
			// This is unlikely if Changed() is true, but good practice.
			return nil, fmt.Errorf("could not read --config flag: %w", err)
		}

		// If the flag is set but the value is empty, do nothing.
		if path == "" {
			return nil, nil
		}

		// Make sure the user-provided file exists to avoid unwanted behavior.
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
		}
		return &path, nil
	}
	return nil, nil
}

// NewRootCmd creates and configures a new root cobra command. This function
// is used to create the main application command as well as fresh instances
// for isolated testing.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keyspect",
		Short: "Keyspect extracts the RSA components from SSH public keys.",
		Long: `Keyspect parses an OpenSSH RSA public key line (the authorized_keys
format) and recovers the two integers that make up the public key: the
exponent e and the modulus n. It reports them in decimal and hex together
with the modulus bit length and the key fingerprint.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if showVersionFlag {
				v, c, d := resolveBuildVersion(nil)
				compositeVersion := v
				if c != "" && c != "dev" {
					compositeVersion = compositeVersion + " (" + c + ")"
				}
				if d != "" {
					compositeVersion = compositeVersion + " built: " + d
				}
				fmt.Printf("%s\n", compositeVersion)
				os.Exit(0)
			}
			return setupDefaultServices(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Running without a subcommand just shows usage.
			return cmd.Help()
		},
	}

	v, c, d := resolveBuildVersion(nil)
	compositeVersion := v
	if c != "" && c != "dev" {
		compositeVersion = compositeVersion + " (" + c + ")"
	}
	if d != "" {
		compositeVersion = compositeVersion + " built: " + d
	}
	cmd.Version = compositeVersion

	// Define flags
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose (debug) output")
	cmd.PersistentFlags().BoolVarP(&showVersionFlag, "version", "V", false, "Print version and exit")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	cmd.PersistentFlags().String("language", "en", `output language ("en", "de")`)

	// A lightweight `version` subcommand so users and CI can run
	// `keyspect version`.
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			resolvedVersion, resolvedCommit, resolvedDate := resolveBuildVersion(nil)
			fmt.Printf("version: %s\n", resolvedVersion)
			fmt.Printf("commit: %s\n", resolvedCommit)
			if resolvedDate != "" {
				fmt.Printf("built: %s\n", resolvedDate)
			}
		},
	}

	cmd.AddCommand(
		newInspectCmd(),
		versionCmd,
	)

	return cmd
}

// resolveBuildVersion reconciles the linker-injected version variables with
// whatever the Go runtime recorded about the build.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault(version)
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	var ok bool
	if info == nil {
		if infoLocal, found := debug.ReadBuildInfo(); found {
			info = infoLocal
			ok = true
		}
	} else {
		ok = true
	}

	if ok && info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}
