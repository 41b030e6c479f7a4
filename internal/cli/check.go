package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vaultpass/passgen-go/internal/crypto"
)

const readFromInput = "-"

func runCheck(cmd *cobra.Command, o *options) error {
	password := o.check
	if password == readFromInput {
		var err error
		password, err = readSecret(cmd.InOrStdin(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
	}

	report := crypto.Analyze(password)
	w := cmd.OutOrStdout()

	if o.quiet {
		fmt.Fprintln(w, report.Strength)
		return nil
	}

	fmt.Fprintln(w, "\nPassword Strength Analysis")
	fmt.Fprintf(w, "Length: %d\n", report.Length)
	fmt.Fprintf(w, "Strength: %s (score %d/%d)\n", report.Strength, report.Score, crypto.MaxScore)
	fmt.Fprintf(w, "Entropy: %.2f bits\n", report.Entropy)
	fmt.Fprintf(w, "Has lowercase: %s\n", yesNo(report.HasLowercase))
	fmt.Fprintf(w, "Has uppercase: %s\n", yesNo(report.HasUppercase))
	fmt.Fprintf(w, "Has digits: %s\n", yesNo(report.HasDigits))
	fmt.Fprintf(w, "Has special chars: %s\n", yesNo(report.HasSpecial))
	fmt.Fprintf(w, "Unique characters: %d/%d\n", report.UniqueChars, report.Length)
	if report.Length > 0 {
		fmt.Fprintf(w, "Guessability: %d/4 (crack time: %s)\n", report.GuessScore, report.CrackTime)
	}
	if report.HasAmbiguous {
		fmt.Fprintln(w, "Warning: contains ambiguous characters")
	}
	return nil
}

// readSecret reads a password from in. On a terminal the input is not echoed;
// otherwise one line is read.
func readSecret(in io.Reader, prompt io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(prompt, "Password: ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
