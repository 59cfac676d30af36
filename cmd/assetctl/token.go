package main

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/marcos-nsantos/asset-store/internal/infrastructure/auth"
)

type tokenResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func newTokenCmd(e *env, flags *globalFlags) *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print an API access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if subject == "" {
				return errors.New("--subject is required")
			}

			jwtCfg, err := e.loadJWT()
			if err != nil {
				return err
			}
			if ttl <= 0 {
				ttl = jwtCfg.AccessTokenTTL
			}

			token, expiresAt, err := auth.NewJWTService(jwtCfg.SecretKey, ttl, jwtCfg.Issuer).GenerateAccessToken(subject)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if flags.json {
				return writeJSON(out, tokenResult{Token: token, ExpiresAt: expiresAt})
			}
			return writePlain(out, "%s\n", token)
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (default JWT_ACCESS_TOKEN_TTL)")

	return cmd
}
