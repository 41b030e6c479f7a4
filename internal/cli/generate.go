package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen-go/internal/config"
	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/export"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/repository"
	"github.com/vaultpass/passgen-go/internal/service"
)

func runGenerate(cmd *cobra.Command, o *options) error {
	ctx := cmd.Context()
	opts := o.generatorOptions()

	format, err := export.ParseFormat(o.format)
	if err != nil {
		return err
	}
	switch {
	case o.count < 1:
		return crypto.ErrInvalidCount
	case o.count > crypto.MaxCount:
		return crypto.ErrCountTooLarge
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	limits := service.Limits{MaxLength: cfg.MaxLength, MaxCount: cfg.MaxCount}
	if err := limits.Check(opts.Length, o.count); err != nil {
		return err
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	passwords, err := generateAll(ctx, opts, o.count)
	if err != nil {
		return err
	}
	slog.Debug("generated passwords", "count", len(passwords), "length", opts.Length)

	printPasswords(cmd.OutOrStdout(), passwords, o)

	if o.output != "" {
		if err := export.SaveFile(o.output, format, passwords, time.Now()); err != nil {
			return err
		}
		if !o.quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "\nSaved %d password(s) to %s (%s)\n", len(passwords), o.output, format)
		}
	}

	recordAudit(ctx, cfg, opts, len(passwords))
	return nil
}

// loadConfig reads the environment for the generate path. JWT_SECRET only
// matters to the token command, so the production secret check is skipped.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil && !errors.Is(err, config.ErrDefaultSecretInProduction) {
		return cfg, err
	}
	return cfg, nil
}

// generateAll draws count passwords, stopping early if ctx is cancelled.
// count must already be within limits.
func generateAll(ctx context.Context, opts crypto.GeneratorOptions, count int) ([]string, error) {
	var passwords []string
	for i := 0; i < count; i++ {
		if ctx.Err() != nil {
			return nil, errCancelled
		}
		pw, err := crypto.Generate(opts)
		if err != nil {
			return nil, err
		}
		passwords = append(passwords, pw)
	}
	return passwords, nil
}

func printPasswords(w io.Writer, passwords []string, o *options) {
	if o.quiet {
		for _, pw := range passwords {
			fmt.Fprintln(w, pw)
		}
		return
	}

	fmt.Fprintf(w, "\nGenerated %d password(s):\n", len(passwords))
	fmt.Fprintln(w, strings.Repeat("-", 50))
	for i, pw := range passwords {
		fmt.Fprintf(w, "%3d: %s\n", i+1, pw)
		if o.showStrength {
			report := crypto.Analyze(pw)
			fmt.Fprintf(w, "     Strength: %s (Entropy: %.1f bits)\n", report.Strength, report.Entropy)
		}
	}

	if !o.showStrength {
		fmt.Fprintln(w, "\nTip: use --show-strength to see password strength analysis")
	}
}

// recordAudit stores a generation event when DATABASE_DSN is configured.
func recordAudit(ctx context.Context, cfg config.Config, opts crypto.GeneratorOptions, count int) {
	if !cfg.AuditEnabled() {
		return
	}

	db, err := repository.NewDB(ctx, cfg.DatabaseDSN)
	if err != nil {
		slog.Warn("database unavailable, audit record skipped", "error", err)
		return
	}
	defer db.Close()

	svc := service.NewGeneratorService(service.Limits{}, repository.NewAuditRepository(db))
	svc.Record(ctx, model.SourceCLI, opts, count)
}
