package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toonlang/go-toon/internal/parse"
	"github.com/toonlang/go-toon/internal/tconv"
)

var (
	decodeDelimiter string
	decodeIndent    string
	decodeStrict    bool
	decodePretty    bool
)

var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Convert TOON to JSON",
	Long: `decode reads TOON text (from a file or, with no argument, from
standard input) and writes its JSON equivalent to standard output.

Examples:
  toon decode data.toon
  cat data.toon | toon decode --pretty
  toon decode --strict=false legacy.toon`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)

	decodeCmd.Flags().StringVar(&decodeDelimiter, "delimiter", "", "override the delimiter read from each array header: comma, tab, or pipe")
	decodeCmd.Flags().StringVar(&decodeIndent, "indent", "  ", "indentation unit used to resolve line depth")
	decodeCmd.Flags().BoolVar(&decodeStrict, "strict", true, "enable strict-mode validation")
	decodeCmd.Flags().BoolVar(&decodePretty, "pretty", false, "pretty-print the JSON output")
}

func runDecode(cmd *cobra.Command, args []string) error {
	src, err := readInput(args)
	if err != nil {
		return err
	}

	opts := parse.Options{Indent: decodeIndent, Strict: &decodeStrict}
	if decodeDelimiter != "" {
		d, err := parseDelimiterFlag(decodeDelimiter)
		if err != nil {
			return err
		}
		opts.Delimiter = &d
	}

	v, err := parse.Decode(string(src), opts)
	if err != nil {
		return err
	}
	logger.Debug("decoded value", "kind", v.Kind().String())

	jsonIndent := ""
	if decodePretty {
		jsonIndent = "  "
	}
	out, err := tconv.ToJSON(v, jsonIndent)
	if err != nil {
		return fmt.Errorf("rendering JSON output: %w", err)
	}

	fmt.Println(string(out))
	return nil
}
