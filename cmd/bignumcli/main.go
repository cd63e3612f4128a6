// Command bignumcli is a line-oriented REPL exposing the bignum
// engine's operations, grounded on agbruneau-FibGo/cmd/fibcalc's thin
// main() that delegates everything to internal/app.
package main

import (
	"context"
	"os"

	"github.com/dchatterjee/bignum/internal/app"
)

func main() {
	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(0)
		}
		os.Exit(1)
	}

	os.Exit(application.Run(context.Background(), os.Stdin, os.Stdout))
}
