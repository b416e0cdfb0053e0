// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/canonical/tenant-identity-service/migrations"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down [version]|status|check]",
	Short:     "Run database migrations",
	Long:      `Apply or inspect the embedded schema migrations. Without arguments pending migrations are applied.`,
	Args:      migrateArgs,
	ValidArgs: []string{"up", "down", "status", "check"},
	RunE:      runMigrate,
}

func init() {
	migrateCmd.Flags().String("dsn", "", "PostgreSQL DSN connection string, defaults to $DSN")
	migrateCmd.Flags().StringP("format", "f", "text", "Output format (text or json)")

	rootCmd.AddCommand(migrateCmd)
}

// migrateArgs accepts no argument, a single command, or "down" with a
// target version.
func migrateArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.RangeArgs(0, 2)(cmd, args); err != nil {
		return err
	}

	if len(args) == 0 {
		return nil
	}

	switch args[0] {
	case "up", "down", "status", "check":
	default:
		return fmt.Errorf("invalid command %q", args[0])
	}

	if len(args) == 2 {
		if args[0] != "down" {
			return fmt.Errorf("only down takes a version, got %q", args)
		}

		if v, err := strconv.ParseInt(args[1], 10, 64); err != nil || v < 0 {
			return fmt.Errorf("invalid version number %q", args[1])
		}
	}

	return nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	command := "up"
	if len(args) > 0 {
		command = args[0]
	}

	target := int64(-1)
	if len(args) > 1 {
		target, _ = strconv.ParseInt(args[1], 10, 64)
	}

	dsn, _ := cmd.Flags().GetString("dsn")
	if dsn == "" {
		dsn = os.Getenv("DSN")
	}

	format, _ := cmd.Flags().GetString("format")

	db, err := openMigrationDB(cmd.Context(), dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	m, err := newMigrator(db, cmd.OutOrStdout(), format == "json")
	if err != nil {
		return err
	}

	switch command {
	case "down":
		return m.down(cmd.Context(), target)
	case "status":
		return m.status(cmd.Context())
	case "check":
		return m.check(cmd.Context())
	}

	return m.up(cmd.Context())
}

func openMigrationDB(ctx context.Context, dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("a DSN is required, pass --dsn or set DSN")
	}

	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid DSN: %w", err)
	}

	db := stdlib.OpenDB(*config)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	return db, nil
}

// migrator runs goose over the embedded migrations and renders the outcome
// as text or json.
type migrator struct {
	provider *goose.Provider
	out      io.Writer
	json     bool
}

func newMigrator(db *sql.DB, out io.Writer, asJSON bool) (*migrator, error) {
	var opts []goose.ProviderOption
	if asJSON {
		// keep stdout parseable
		opts = append(opts, goose.WithLogger(goose.NopLogger()))
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.EmbedMigrations, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create goose provider: %w", err)
	}

	return &migrator{provider: provider, out: out, json: asJSON}, nil
}

func (m *migrator) up(ctx context.Context) error {
	results, err := m.provider.Up(ctx)
	if err != nil {
		return err
	}

	return m.results(results)
}

// down rolls back one migration, or everything above target when given.
func (m *migrator) down(ctx context.Context, target int64) error {
	if target >= 0 {
		results, err := m.provider.DownTo(ctx, target)
		if err != nil {
			return err
		}

		return m.results(results)
	}

	result, err := m.provider.Down(ctx)
	if err != nil {
		return err
	}

	return m.results([]*goose.MigrationResult{result})
}

func (m *migrator) status(ctx context.Context) error {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return err
	}

	if m.json {
		return json.NewEncoder(m.out).Encode(statuses)
	}

	w := tabwriter.NewWriter(m.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "APPLIED AT\tMIGRATION")
	for _, s := range statuses {
		appliedAt := "Pending"
		if s.State == goose.StateApplied {
			appliedAt = s.AppliedAt.Format(time.RFC3339)
		}
		fmt.Fprintf(w, "%s\t%s\n", appliedAt, s.Source.Path)
	}

	return w.Flush()
}

// check fails while migrations are pending.
func (m *migrator) check(ctx context.Context) error {
	pending, err := m.provider.HasPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to check pending migrations: %w", err)
	}

	current, versionErr := m.provider.GetDBVersion(ctx)

	state := "ok"
	switch {
	case pending:
		state = "pending"
	case versionErr != nil:
		state = "unknown"
	}

	if m.json {
		if err := json.NewEncoder(m.out).Encode(map[string]interface{}{"status": state, "version": current}); err != nil {
			return err
		}
	} else if !pending {
		fmt.Fprintf(m.out, "Database is up to date (version %d)\n", current)
	}

	if pending {
		return fmt.Errorf("migrations are pending: current version %d", current)
	}

	return nil
}

func (m *migrator) results(results []*goose.MigrationResult) error {
	if m.json {
		if results == nil {
			results = []*goose.MigrationResult{}
		}
		return json.NewEncoder(m.out).Encode(map[string]interface{}{"applied": results})
	}

	if len(results) == 0 {
		fmt.Fprintln(m.out, "No migrations to apply")
		return nil
	}

	for _, r := range results {
		fmt.Fprintf(m.out, "%s %s (%s)\n", r.Direction, r.Source.Path, r.Duration)
	}

	return nil
}
