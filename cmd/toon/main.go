// Command toon is a CLI codec for TOON: encode, decode, fmt, and version.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/toonlang/go-toon/cmd/toon/cmd"
	"github.com/toonlang/go-toon/internal/toonerr"
)

func main() {
	if err := cmd.Execute(); err != nil {
		var te *toonerr.Error
		if errors.As(err, &te) {
			fmt.Fprintln(os.Stderr, te.Diagnostic())
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
