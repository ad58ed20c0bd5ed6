// Package cmd implements the toon CLI's cobra command tree: encode,
// decode, fmt, and version.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/toonlang/go-toon/internal/config"
	"github.com/toonlang/go-toon/internal/tlog"
)

var (
	// Version is set by build flags.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	configPath string
	logFormat  string
	logLevel   string

	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "toon",
	Short: "Encode and decode Token-Oriented Object Notation (TOON)",
	Long: `toon is a command-line codec for TOON, a compact, indentation-based
text format for JSON-equivalent value trees.

  toon encode   convert JSON to TOON
  toon decode   convert TOON to JSON
  toon fmt      reformat TOON source to its canonical layout`,
	Version:           Version,
	PersistentPreRunE: loadConfigAndLogger,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".toonrc.yaml", "path to a YAML config file of CLI defaults")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log output format: text or json")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, or error")
}

// loadConfigAndLogger reads the optional .toonrc.yaml, applies any of its
// values to flags the user did not set explicitly, and builds the
// command's logger.
func loadConfigAndLogger(cmd *cobra.Command, args []string) error {
	file, err := config.Load(configPath)
	if err != nil {
		return err
	}
	applyConfigDefaults(cmd, file)

	l, err := tlog.NewFromStrings(os.Stderr, logLevel, logFormat)
	if err != nil {
		return err
	}
	logger = l
	return nil
}

// applyConfigDefaults assigns a config file value to a flag only when the
// user did not set that flag on the command line, so explicit flags always
// win over the config file.
func applyConfigDefaults(cmd *cobra.Command, file config.File) {
	set := func(name, value string) {
		if value == "" {
			return
		}
		if f := cmd.Flags().Lookup(name); f != nil && !f.Changed {
			_ = f.Value.Set(value)
		}
	}
	set("delimiter", file.Delimiter)
	set("indent", file.Indent)
	set("log-format", file.LogFormat)
	set("log-level", file.LogLevel)
	if file.LengthMarker != nil {
		set("length-marker", boolFlagString(*file.LengthMarker))
	}
	if file.Strict != nil {
		set("strict", boolFlagString(*file.Strict))
	}
}

func boolFlagString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
