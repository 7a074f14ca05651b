// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-bwenv/internal/app"
	"github.com/MKhiriev/go-bwenv/internal/config"
	"github.com/MKhiriev/go-bwenv/internal/logger"
	"github.com/MKhiriev/go-bwenv/internal/service"
	"github.com/MKhiriev/go-bwenv/internal/store"
	"github.com/MKhiriev/go-bwenv/internal/utils"
	"github.com/MKhiriev/go-bwenv/internal/validators"
)

// role is the logger role and the root command name.
const role = "bwenv"

// App is the bwenv command-line application.
type App struct {
	root  *cobra.Command
	flags *config.Flags
	opts  options

	logger   *logger.Logger
	services *service.Services
}

// NewApp builds the command tree. Nothing touches the vault or the file
// system until Run.
func NewApp(opts ...Option) *App {
	a := &App{opts: defaultOptions()}
	for _, opt := range opts {
		opt(&a.opts)
	}

	a.root = a.newRootCmd()
	a.flags = config.BindFlags(a.root.PersistentFlags())
	a.root.AddCommand(
		a.newInitCmd(),
		a.newGetCmd(),
		a.newSetCmd(),
		a.newSyncCmd(),
		a.newVersionCmd(),
	)

	return a
}

var _ Client = (*App)(nil)

// Run implements [Client].
func (a *App) Run(ctx context.Context, args []string) error {
	a.logger = a.bootstrapLogger()

	a.root.SetArgs(args)
	a.root.SetIn(a.opts.stdin)
	a.root.SetOut(a.opts.stdout)
	a.root.SetErr(a.opts.stderr)

	err := a.root.ExecuteContext(ctx)
	if err != nil && !isStartupError(err) {
		a.logger.Error().Err(err).Msg(app.MsgCommandFailed)
	}
	return err
}

func (a *App) newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   role,
		Short: "Sync Bitwarden vault items with .env files",
		Long: `bwenv keeps .env files in a Bitwarden folder. Every item of the folder is a
secure note whose custom fields hold the KEY=VALUE pairs of one env file.

Run "bwenv init FOLDER" once per project, then "bwenv set" and "bwenv get"
to push and pull env files.

Environment variables:
  BW_SESSION         Vault session token from "bw unlock" (required)
  BWENV_CONFIG       Folder config file (default: bwenv.json)
  BWENV_BW_BINARY    Vault CLI executable (default: bw)
  BWENV_BACKEND      cli or serve (default: cli)
  BWENV_SERVE_URL    bw serve base URL (default: http://localhost:8087)
  BWENV_LOOKUP       search or exact (default: search)
  BWENV_STRICT_SYNC  Fail when a vault sync fails
  BWENV_TIMEOUT      Timeout of a single vault call (default: 60s)
  BWENV_LOG_LEVEL    Log level (default: info)
  BWENV_LOG_FORMAT   auto, console or json (default: auto)`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if skipsSetup(cmd) {
				return nil
			}
			return a.setup(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}

// skipsSetup reports whether cmd runs without a session or vault.
func skipsSetup(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "version", "help", "completion":
		return true
	}
	return cmd.Parent() != nil && cmd.Parent().Name() == "completion"
}

// setup resolves settings and wires the services for the selected verb.
func (a *App) setup(cmd *cobra.Command) error {
	logCfg := config.GetLogSettings(a.opts.environ, a.flags)
	runID := a.opts.ids.Generate()
	a.logger = logger.New(role, a.opts.stderr, logCfg.Level, logCfg.Format).WithStr("run_id", runID)

	ctx := utils.WithRunID(cmd.Context(), runID)
	cmd.SetContext(ctx)

	settings, err := config.GetSettings(a.opts.environ, a.flags)
	if err != nil {
		if errors.Is(err, config.ErrMissingSession) {
			a.fatal().Msg(app.MsgNoSession)
			return startupError{err}
		}
		return err
	}

	configStore := store.NewFolderConfigStore(settings.ConfigPath, a.logger)
	vaultOpts := service.VaultOptions{
		ExactLookup: settings.Vault.Lookup == config.LookupExact,
		StrictSync:  settings.Vault.StrictSync,
	}

	if cmd.Name() != "init" {
		folderCfg, err := configStore.Load()
		if err == nil {
			if verr := validators.NewVaultValidator().Validate(ctx, folderCfg); verr != nil {
				err = fmt.Errorf("%w %s: %w", store.ErrMissingConfig, configStore.Path(), verr)
			}
		}
		if err != nil {
			a.fatal().Err(err).Msgf(app.MsgMissingConfigf, configStore.Path())
			return startupError{err}
		}
		vaultOpts.FolderID = folderCfg.FolderID
	}

	vaultAdapter, err := a.opts.adapters(settings, a.logger)
	if err != nil {
		return fmt.Errorf("create vault adapter: %w", err)
	}

	a.logger.Debug().
		Str("command", cmd.Name()).
		Str("version", a.opts.buildInfo.BuildVersion()).
		Str("backend", settings.Vault.Backend).
		Str("folder_id", vaultOpts.FolderID).
		Msg("starting")

	envFiles := store.NewEnvFileStore(a.opts.stdin, a.opts.stdout)
	a.services = service.NewServices(vaultAdapter, vaultOpts, configStore, envFiles, a.logger)
	return nil
}

// fatal logs at fatal level without exiting; the caller returns the error
// and main decides the exit status.
func (a *App) fatal() *zerolog.Event {
	return a.logger.WithLevel(zerolog.FatalLevel)
}

// bootstrapLogger logs failures that happen before setup, such as flag
// parsing errors.
func (a *App) bootstrapLogger() *logger.Logger {
	d := config.Defaults().Log
	return logger.New(role, a.opts.stderr, d.Level, d.Format)
}

// startupError marks a failure that was already logged during setup.
type startupError struct {
	err error
}

func (e startupError) Error() string { return e.err.Error() }

func (e startupError) Unwrap() error { return e.err }

func isStartupError(err error) bool {
	var se startupError
	return errors.As(err, &se)
}
