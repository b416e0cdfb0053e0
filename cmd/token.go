// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token [email]",
	Short: "Issue an access and refresh token pair for a user",
	Long: `Issue an access and refresh token pair for a user without a password,
for operators and local testing. The tenant defaults to the first enabled membership.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tenantID, _ := cmd.Flags().GetString("tenant")
		asJSON, _ := cmd.Flags().GetBool("json")

		return withApp(func(a *app) error {
			user, err := a.identity.FindByEmail(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to find user: %w", err)
			}

			pair, err := a.accounts.SignIn(cmd.Context(), user, tenantID)
			if err != nil {
				return fmt.Errorf("failed to issue tokens: %w", err)
			}

			if asJSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(pair)
			}

			cmd.Println(pair.AccessToken)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().String("tenant", "", "Tenant ID the token is scoped to")
	tokenCmd.Flags().Bool("json", false, "Print the whole token pair as JSON")
}
