package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/toonlang/go-toon/internal/format"
	"github.com/toonlang/go-toon/internal/parse"
)

var (
	fmtWrite bool
	fmtList  bool
	fmtDiff  bool
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Reformat TOON source to its canonical layout",
	Long: `fmt decodes TOON source and re-encodes it with default options,
canonicalizing indentation, array shape, and quoting.

By default fmt writes the result to standard output. If no path is given
it reads from standard input.

Examples:
  toon fmt file.toon
  toon fmt -w file1.toon file2.toon
  toon fmt -l file1.toon file2.toon
  toon fmt -d file.toon`,
	RunE: runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)

	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "write result to (source) file instead of stdout")
	fmtCmd.Flags().BoolVarP(&fmtList, "list", "l", false, "list files whose formatting differs")
	fmtCmd.Flags().BoolVarP(&fmtDiff, "diff", "d", false, "display diffs instead of rewriting files")
}

func runFmt(cmd *cobra.Command, args []string) error {
	if fmtWrite && fmtList {
		return fmt.Errorf("cannot use -w and -l together")
	}
	if fmtWrite && fmtDiff {
		return fmt.Errorf("cannot use -w and -d together")
	}

	if len(args) == 0 {
		return formatStdin()
	}

	hasErrors := false
	for _, path := range args {
		if err := formatFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error formatting %s: %v\n", path, err)
			hasErrors = true
		}
	}
	if hasErrors {
		return fmt.Errorf("formatting failed for one or more files")
	}
	return nil
}

func formatStdin() error {
	src, err := readInput(nil)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	formatted, err := formatSource(string(src))
	if err != nil {
		return err
	}
	fmt.Print(formatted)
	return nil
}

func formatFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}
	original := string(src)

	formatted, err := formatSource(original)
	if err != nil {
		return err
	}
	changed := original != formatted

	switch {
	case fmtList:
		if changed {
			fmt.Println(path)
		}
	case fmtDiff:
		if changed {
			fmt.Printf("--- %s (original)\n", path)
			fmt.Printf("+++ %s (formatted)\n", path)
			showDiff(original, formatted)
		}
	case fmtWrite:
		if changed {
			if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
				return fmt.Errorf("writing file: %w", err)
			}
			logger.Info("reformatted", "path", path)
		}
	default:
		fmt.Print(formatted)
	}
	return nil
}

func formatSource(source string) (string, error) {
	v, err := parse.Decode(source, parse.Options{})
	if err != nil {
		return "", err
	}
	text, err := format.Encode(v, format.Options{})
	if err != nil {
		return "", err
	}
	return text + "\n", nil
}

// showDiff prints a simple line-by-line diff of the original and
// formatted text.
func showDiff(original, formatted string) {
	origLines := splitLines(original)
	fmtLines := splitLines(formatted)

	max := len(origLines)
	if len(fmtLines) > max {
		max = len(fmtLines)
	}
	for i := 0; i < max; i++ {
		var o, f string
		if i < len(origLines) {
			o = origLines[i]
		}
		if i < len(fmtLines) {
			f = fmtLines[i]
		}
		if o != f {
			if o != "" {
				fmt.Printf("- %s\n", o)
			}
			if f != "" {
				fmt.Printf("+ %s\n", f)
			}
		}
	}
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
