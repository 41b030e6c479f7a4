// Package cli implements the passgen command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/export"
)

var errCancelled = errors.New("generation cancelled by user")

type options struct {
	length int
	count  int

	noUppercase bool
	noLowercase bool
	noDigits    bool
	noSpecial   bool

	excludeAmbiguous bool
	customChars      string

	minUppercase int
	minLowercase int
	minDigits    int
	minSpecial   int

	output string
	format string

	check        string
	quiet        bool
	showStrength bool
	verbose      bool
}

// generatorOptions maps the command-line flags onto generator options.
// Minimums of excluded classes are dropped.
func (o *options) generatorOptions() crypto.GeneratorOptions {
	opts := crypto.GeneratorOptions{
		Length:           o.length,
		ExcludeAmbiguous: o.excludeAmbiguous,
		CustomChars:      o.customChars,
	}
	opts.Rules[crypto.Lowercase] = rule(!o.noLowercase, o.minLowercase)
	opts.Rules[crypto.Uppercase] = rule(!o.noUppercase, o.minUppercase)
	opts.Rules[crypto.Digit] = rule(!o.noDigits, o.minDigits)
	opts.Rules[crypto.Special] = rule(!o.noSpecial, o.minSpecial)
	return opts
}

func rule(include bool, minimum int) crypto.ClassRule {
	if !include {
		return crypto.ClassRule{}
	}
	return crypto.ClassRule{Include: true, Min: minimum}
}

// NewRootCommand builds the passgen command tree.
func NewRootCommand() *cobra.Command {
	o := &options{}

	cmd := &cobra.Command{
		Use:   "passgen",
		Short: "Generate secure random passwords and check password strength",
		Long: `passgen generates passwords from a cryptographically secure random source.
Each character class can be excluded or given a minimum count, ambiguous
characters (i, l, 1, L, o, 0, O) can be left out, and extra characters can be
added to the pool. Use --check to analyse an existing password instead.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd.ErrOrStderr(), o.verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("check") {
				return runCheck(cmd, o)
			}
			return runGenerate(cmd, o)
		},
	}

	addGeneratorFlags(cmd.Flags(), o)
	cmd.PersistentFlags().BoolVar(&o.verbose, "verbose", false, "Enable debug logging on stderr")

	cmd.AddCommand(newTokenCommand())

	return cmd
}

func addGeneratorFlags(fs *pflag.FlagSet, o *options) {
	fs.IntVarP(&o.length, "length", "l", crypto.DefaultLength, "Password length")
	fs.IntVarP(&o.count, "count", "c", 1, "Number of passwords to generate")

	fs.BoolVar(&o.noUppercase, "no-uppercase", false, "Exclude uppercase letters")
	fs.BoolVar(&o.noLowercase, "no-lowercase", false, "Exclude lowercase letters")
	fs.BoolVar(&o.noDigits, "no-digits", false, "Exclude digits")
	fs.BoolVar(&o.noSpecial, "no-special", false, "Exclude special characters")
	fs.BoolVar(&o.excludeAmbiguous, "exclude-ambiguous", false, "Exclude ambiguous characters (i,l,1,L,o,0,O)")
	fs.StringVar(&o.customChars, "custom-chars", "", "Additional custom characters to include")

	fs.IntVar(&o.minUppercase, "min-uppercase", 1, "Minimum uppercase letters")
	fs.IntVar(&o.minLowercase, "min-lowercase", 1, "Minimum lowercase letters")
	fs.IntVar(&o.minDigits, "min-digits", 1, "Minimum digits")
	fs.IntVar(&o.minSpecial, "min-special", 1, "Minimum special characters")

	fs.StringVarP(&o.output, "output", "o", "", "Save passwords to file")
	fs.StringVar(&o.format, "format", string(export.FormatText), "Output file format (txt, json, yaml)")

	fs.StringVar(&o.check, "check", "", `Check strength of the given password ("-" reads it without echo)`)
	fs.BoolVarP(&o.quiet, "quiet", "q", false, "Only output passwords")
	fs.BoolVar(&o.showStrength, "show-strength", false, "Show strength analysis for generated passwords")
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// Execute runs the command line with args and returns the process exit code.
func Execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
