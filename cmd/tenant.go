// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/canonical/tenant-identity-service/internal/types"
	"github.com/canonical/tenant-identity-service/pkg/tenant"
)

var tenantCmd = &cobra.Command{
	Use:   "tenant",
	Short: "Administer tenants directly against the database",
}

// withApp runs fn with a freshly wired app, closing it afterwards.
func withApp(fn func(a *app) error) error {
	specs, err := loadSpecs()
	if err != nil {
		return err
	}

	a, err := newApp(specs)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(a)
}

var createTenantCmd = &cobra.Command{
	Use:   "create [trade name]",
	Short: "Register an ACTIVE tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		legalName, _ := cmd.Flags().GetString("legal-name")
		document, _ := cmd.Flags().GetString("document")

		return withApp(func(a *app) error {
			t, err := a.tenants.Register(cmd.Context(), &tenant.RegisterRequest{
				TradeName: args[0],
				LegalName: legalName,
				Document:  document,
			})
			if err != nil {
				return fmt.Errorf("failed to create tenant: %w", err)
			}

			cmd.Printf("Tenant created: %s (ID: %s)\n", t.TradeName, t.ID)
			return nil
		})
	},
}

var listTenantsCmd = &cobra.Command{
	Use:   "list",
	Short: "List tenants",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, _ := cmd.Flags().GetInt64("page")
		size, _ := cmd.Flags().GetInt64("size")

		return withApp(func(a *app) error {
			tenants, err := a.tenants.ListTenants(cmd.Context(), page, size)
			if err != nil {
				return fmt.Errorf("failed to list tenants: %w", err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tSTATUS\tENABLED\tCREATED_AT")
			for _, t := range tenants {
				fmt.Fprintf(w, "%s\t%s\t%s\t%v\t%s\n", t.ID, t.TradeName, t.Status, t.Enabled, t.CreatedAt.Format("2006-01-02T15:04:05Z07:00"))
			}

			return w.Flush()
		})
	},
}

var statusTenantCmd = &cobra.Command{
	Use:   "status [id] [ACTIVE|SUSPENDED|INACTIVE]",
	Short: "Change the lifecycle status of a tenant",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app) error {
			t, err := a.tenants.UpdateStatus(cmd.Context(), args[0], types.TenantStatus(strings.ToUpper(args[1])))
			if err != nil {
				return fmt.Errorf("failed to update tenant status: %w", err)
			}

			cmd.Printf("Tenant %s is now %s\n", t.ID, t.Status)
			return nil
		})
	},
}

var assignUserCmd = &cobra.Command{
	Use:   "assign-user [tenant id] [user id]",
	Short: "Add an existing user to a tenant",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		role, _ := cmd.Flags().GetString("role")

		return withApp(func(a *app) error {
			m, err := a.tenants.AssignUser(cmd.Context(), args[0], args[1], types.Role(role))
			if err != nil {
				return fmt.Errorf("failed to assign user: %w", err)
			}

			cmd.Printf("User %s joined tenant %s as %s\n", m.UserID, m.TenantID, m.Role)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(tenantCmd)
	tenantCmd.AddCommand(createTenantCmd)
	tenantCmd.AddCommand(listTenantsCmd)
	tenantCmd.AddCommand(statusTenantCmd)
	tenantCmd.AddCommand(assignUserCmd)

	createTenantCmd.Flags().String("legal-name", "", "Registered legal name")
	createTenantCmd.Flags().String("document", "", "Tax or registration document")
	listTenantsCmd.Flags().Int64("page", 1, "Page number")
	listTenantsCmd.Flags().Int64("size", 20, "Page size")
	assignUserCmd.Flags().String("role", string(types.RoleUser), "Tenant role (Owner, Admin, User)")
}
