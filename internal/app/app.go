// Package app wires the CLI's configuration, logging, and REPL
// command dispatch together, grounded on agbruneau-FibGo/internal/app:
// a thin Application type that New constructs from argv and Run
// drives to completion, keeping cmd/bignumcli/main.go to a few lines.
package app

import (
	"bufio"
	"context"
	goerrors "errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/dchatterjee/bignum/bignum"
	"github.com/dchatterjee/bignum/internal/config"
	"github.com/dchatterjee/bignum/internal/logging"
)

// Application is the calculator CLI's top-level object.
type Application struct {
	Config    config.Config
	ErrWriter io.Writer
	Logger    logging.Logger
}

// New parses args (including the program name at index 0, matching
// os.Args) into a ready-to-run Application.
func New(args []string, errWriter io.Writer) (*Application, error) {
	programName := "bignumcli"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	cfg, err := config.ParseConfig(fs, cmdArgs)
	if err != nil {
		return nil, err
	}

	level := zerolog.InfoLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	if cfg.Quiet {
		level = zerolog.WarnLevel
	}
	zl := zerolog.New(zerolog.ConsoleWriter{Out: errWriter}).Level(level).With().Timestamp().Logger()

	return &Application{
		Config:    cfg,
		ErrWriter: errWriter,
		Logger:    logging.NewZerologAdapter(zl),
	}, nil
}

// IsHelpError reports whether err came from the -h/-help flag.
func IsHelpError(err error) bool {
	return goerrors.Is(err, flag.ErrHelp)
}

// Run drives the REPL against in and writes results to out, returning
// a process exit code.
func (a *Application) Run(ctx context.Context, in io.Reader, out io.Writer) int {
	fmt.Fprintln(out, "bignum calculator. Type 'help' for commands, 'quit' to exit.")

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return 0
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return 0
		}
		if line == "help" {
			printHelp(out)
			continue
		}

		if err := a.dispatch(out, line); err != nil {
			a.Logger.Error("command failed", err)
			fmt.Fprintf(a.ErrWriter, "error: %v\n", err)
		}
	}
	return 0
}

func printHelp(out io.Writer) {
	fmt.Fprint(out, `commands (operands are hex, e.g. "ff" or "-1a"):
  add X Y        X+Y
  sub X Y        X-Y
  mul X Y        X*Y
  div X Y        X/Y (truncating)
  mod X Y        X mod Y
  pow X N M      X^N mod M
  gcd X Y        gcd(X, Y)
  egcd X Y       extended gcd: g, s, t with g = X*s + Y*t
  modinv X M     inverse of X mod M
  isprime X [N]  Miller-Rabin primality test, N rounds (default configured)
  genprime BITS  generate a random BITS-bit prime
  quit           exit
`)
}

func (a *Application) dispatch(out io.Writer, line string) error {
	fields := strings.Fields(line)
	cmd := fields[0]
	args := fields[1:]

	switch cmd {
	case "add":
		return a.binary(out, args, (*bignum.Int).Add)
	case "sub":
		return a.binary(out, args, (*bignum.Int).Sub)
	case "mul":
		return a.binary(out, args, (*bignum.Int).Mul)
	case "div":
		return a.binary(out, args, (*bignum.Int).Div)
	case "mod":
		return a.binary(out, args, (*bignum.Int).Mod)
	case "gcd":
		return a.binary(out, args, bignum.Gcd)
	case "modinv":
		return a.binary(out, args, bignum.ModInverse)
	case "egcd":
		return a.egcd(out, args)
	case "pow":
		return a.pow(out, args)
	case "isprime":
		return a.isPrime(out, args)
	case "genprime":
		return a.genPrime(out, args)
	default:
		return errors.Errorf("unknown command %q", cmd)
	}
}

// parseOperand parses a hex operand. FromHex panics with a
// ModulusError on malformed input rather than returning one,
// matching the engine's own error-handling contract (see DESIGN.md);
// dispatch does not recover, so a malformed operand aborts the process
// with a stack trace rather than a quiet REPL error line.
func parseOperand(s string) (*bignum.Int, error) {
	return bignum.FromHex(s), nil
}

func (a *Application) binary(out io.Writer, args []string, op func(x, y *bignum.Int) *bignum.Int) error {
	if len(args) != 2 {
		return errors.New("expected 2 operands")
	}
	x, err := parseOperand(args[0])
	if err != nil {
		return errors.Wrap(err, "parsing first operand")
	}
	y, err := parseOperand(args[1])
	if err != nil {
		return errors.Wrap(err, "parsing second operand")
	}
	fmt.Fprintln(out, op(x, y).ToHex())
	return nil
}

func (a *Application) egcd(out io.Writer, args []string) error {
	if len(args) != 2 {
		return errors.New("expected 2 operands")
	}
	x, err := parseOperand(args[0])
	if err != nil {
		return errors.Wrap(err, "parsing first operand")
	}
	y, err := parseOperand(args[1])
	if err != nil {
		return errors.Wrap(err, "parsing second operand")
	}
	g, s, t := bignum.ExtendedGcd(x, y)
	fmt.Fprintf(out, "g=%s s=%s t=%s\n", g.ToHex(), s.ToHex(), t.ToHex())
	return nil
}

func (a *Application) pow(out io.Writer, args []string) error {
	if len(args) != 3 {
		return errors.New("expected 3 operands: base exp mod")
	}
	base, err := parseOperand(args[0])
	if err != nil {
		return errors.Wrap(err, "parsing base")
	}
	exp, err := parseOperand(args[1])
	if err != nil {
		return errors.Wrap(err, "parsing exponent")
	}
	mod, err := parseOperand(args[2])
	if err != nil {
		return errors.Wrap(err, "parsing modulus")
	}
	fmt.Fprintln(out, bignum.ModPow(base, exp, mod).ToHex())
	return nil
}

func (a *Application) isPrime(out io.Writer, args []string) error {
	if len(args) < 1 {
		return errors.New("expected at least 1 operand")
	}
	x, err := parseOperand(args[0])
	if err != nil {
		return errors.Wrap(err, "parsing operand")
	}
	rounds := a.Config.MillerRabinRounds
	if len(args) >= 2 {
		if _, err := fmt.Sscanf(args[1], "%d", &rounds); err != nil {
			return errors.Wrap(err, "parsing round count")
		}
	}
	fmt.Fprintln(out, x.IsProbablePrime(rounds))
	return nil
}

func (a *Application) genPrime(out io.Writer, args []string) error {
	bits := a.Config.PrimeBits
	if len(args) >= 1 {
		if _, err := fmt.Sscanf(args[0], "%d", &bits); err != nil {
			return errors.Wrap(err, "parsing bit length")
		}
	}

	var s *spinner.Spinner
	if !a.Config.Quiet {
		s = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.Suffix = fmt.Sprintf(" searching for a %d-bit prime...", bits)
		s.Start()
	}

	p := bignum.RandomPrime(bits)

	if s != nil {
		s.Stop()
	}

	fmt.Fprintln(out, p.ToHex())
	return nil
}
