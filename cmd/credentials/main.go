// Command credentials prints the secrets a sync driver needs: a webhook API key with the
// bcrypt hash to set as WEBHOOK_API_KEY_HASH, or a signed JWT for the /api/v1 routes.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/connec_payment_sync/internal/platform/config"
	"github.com/SscSPs/connec_payment_sync/internal/utils"
	"github.com/spf13/cobra"
)

const tokenIssuer = "connec-payment-sync"

type credentialOptions struct {
	jwtSubject string
	jwtExpiry  time.Duration
	keyBytes   int
}

func newRootCmd(loadConfig func() (*config.Config, error)) *cobra.Command {
	opts := credentialOptions{}

	cmd := &cobra.Command{
		Use:           "credentials",
		Short:         "Generate a webhook API key or a driver JWT",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.jwtSubject != "" {
				cfg, err := loadConfig()
				if err != nil {
					return fmt.Errorf("failed to load config: %w", err)
				}
				token, err := utils.GenerateJWT(opts.jwtSubject, cfg.JWTSecret, opts.jwtExpiry, tokenIssuer)
				if err != nil {
					return fmt.Errorf("failed to sign token: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), token)
				return nil
			}

			key, err := utils.GenerateAPIKey(opts.keyBytes)
			if err != nil {
				return fmt.Errorf("failed to generate API key: %w", err)
			}
			hash, err := utils.HashAPIKey(key)
			if err != nil {
				return fmt.Errorf("failed to hash API key: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "x-api-key: %s\nWEBHOOK_API_KEY_HASH=%s\n", key, hash)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.jwtSubject, "jwt-subject", "", "mint a JWT for this caller instead of an API key")
	cmd.Flags().DurationVar(&opts.jwtExpiry, "jwt-expiry", 24*time.Hour, "lifetime of the minted JWT")
	cmd.Flags().IntVar(&opts.keyBytes, "key-bytes", 32, "random bytes in a generated API key")
	return cmd
}

func main() {
	if err := newRootCmd(config.LoadConfig).Execute(); err != nil {
		slog.Error("Failed to generate credentials", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
