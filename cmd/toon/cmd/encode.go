package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/toonlang/go-toon/internal/format"
	"github.com/toonlang/go-toon/internal/tconv"
	"github.com/toonlang/go-toon/internal/tokclass"
)

var (
	encodeDelimiter    string
	encodeIndent       string
	encodeLengthMarker bool
)

var encodeCmd = &cobra.Command{
	Use:   "encode [file]",
	Short: "Convert JSON to TOON",
	Long: `encode reads a JSON value (from a file or, with no argument, from
standard input) and writes its TOON encoding to standard output.

Examples:
  toon encode data.json
  cat data.json | toon encode
  toon encode --delimiter pipe --length-marker data.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEncode,
}

func init() {
	rootCmd.AddCommand(encodeCmd)

	encodeCmd.Flags().StringVar(&encodeDelimiter, "delimiter", "comma", "array delimiter: comma, tab, or pipe")
	encodeCmd.Flags().StringVar(&encodeIndent, "indent", "  ", "indentation unit")
	encodeCmd.Flags().BoolVar(&encodeLengthMarker, "length-marker", false, "emit the optional '#' length marker in array headers")
}

func runEncode(cmd *cobra.Command, args []string) error {
	src, err := readInput(args)
	if err != nil {
		return err
	}

	v, err := tconv.FromJSON(src)
	if err != nil {
		return fmt.Errorf("parsing JSON input: %w", err)
	}

	delim, err := parseDelimiterFlag(encodeDelimiter)
	if err != nil {
		return err
	}

	text, err := format.Encode(v, format.Options{
		Delimiter:    delim,
		LengthMarker: encodeLengthMarker,
		Indent:       encodeIndent,
	})
	if err != nil {
		return err
	}
	logger.Debug("encoded value", "bytes", len(text))

	fmt.Println(text)
	return nil
}

func parseDelimiterFlag(name string) (tokclass.Delimiter, error) {
	switch name {
	case "", "comma":
		return tokclass.Comma, nil
	case "tab":
		return tokclass.Tab, nil
	case "pipe":
		return tokclass.Pipe, nil
	default:
		return 0, fmt.Errorf("unknown delimiter %q: use comma, tab, or pipe", name)
	}
}

// readInput reads args[0] if present, otherwise all of stdin.
func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}
