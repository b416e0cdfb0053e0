// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/tenant-identity-service/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server and the outbox worker",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// pingDependency checks a backing service at startup, the ping itself
// updates the availability gauge.
func (a *app) pingDependency(ctx context.Context, name string, ping func(context.Context) error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := ping(ctx); err != nil {
		a.logger.Errorf("%s unavailable at startup: %v", name, err)
	}
}

func serve() error {
	specs, err := loadSpecs()
	if err != nil {
		return err
	}

	a, err := newApp(specs)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	externalService, codeCache := a.externalLogin(ctx)
	defer codeCache.Close()

	a.pingDependency(ctx, "postgres", a.db.Ping)
	a.pingDependency(ctx, "redis", codeCache.Ping)

	router := web.NewRouter(
		web.Services{
			Tenants:           a.tenants,
			Accounts:          a.accounts,
			External:          externalService,
			ExternalReturnURL: specs.ExternalLoginReturnURL,
		},
		a.auth,
		specs.DefaultTenantID,
		specs.CORSAllowedOrigins,
		a.tracer,
		a.monitor,
		a.logger,
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var wg sync.WaitGroup

	if specs.OutboxEnabled {
		worker := a.outboxWorker()

		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}

	var serverError error

	go func() {
		a.logger.Infof("Starting HTTP server on port %v", specs.Port)
		a.logger.Security().SystemStartup()

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			stop()
		}
	}()

	<-ctx.Done()

	// Create a deadline to wait for.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	a.logger.Security().SystemShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil && serverError == nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	wg.Wait()

	return serverError
}
