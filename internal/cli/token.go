package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen-go/internal/config"
	"github.com/vaultpass/passgen-go/internal/crypto"
)

func newTokenCommand() *cobra.Command {
	var (
		subject string
		expiry  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print an operator token for the audit API",
		Long: `Signs a token with JWT_SECRET that grants read access to
GET /api/v1/audit on the passgen API server.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if expiry == 0 {
				expiry = cfg.JWTExpiry
			}

			token, err := crypto.GenerateToken(subject, crypto.ScopeAuditRead, cfg.JWTSecret, expiry)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Name of the operator the token is issued to")
	cmd.Flags().DurationVar(&expiry, "expiry", 0, "Token lifetime (default JWT_EXPIRY)")
	cmd.MarkFlagRequired("subject")

	return cmd
}
