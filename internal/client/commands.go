// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-bwenv/internal/store"
	"github.com/MKhiriev/go-bwenv/models"
)

func (a *App) newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init FOLDER",
		Short: "Bind the working directory to a vault folder",
		Long: `Resolve FOLDER by name and write its id to the folder config file.
The search must match exactly one folder. An existing config is overwritten.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := a.services.Env.Init(cmd.Context(), args[0])
			return err
		},
	}
}

func (a *App) newGetCmd() *cobra.Command {
	req := models.GetRequest{}

	cmd := &cobra.Command{
		Use:   "get NAME",
		Short: "Write the fields of a vault item as an env file",
		Example: `  # Print to stdout
  bwenv get db

  # Sync first, then write .env
  bwenv get db -s -o .env`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Item = args[0]
			return a.services.Env.Get(cmd.Context(), req)
		},
	}

	cmd.Flags().StringVarP(&req.Output, "output", "o", store.StdStream, "output file, - for stdout")
	cmd.Flags().BoolVarP(&req.Sync, "sync", "s", false, "sync the vault before reading")
	cmd.Flags().StringVar(&req.Format, "format", "raw", "env file dialect: raw or dotenv")

	return cmd
}

func (a *App) newSetCmd() *cobra.Command {
	req := models.SetRequest{}

	cmd := &cobra.Command{
		Use:   "set NAME",
		Short: "Store an env file as the fields of a vault item",
		Long: `Read KEY=VALUE lines and replace the field list of the item NAME with
them. The item is created as a secure note in the configured folder when no
item matches.`,
		Example: `  # Read from stdin
  bwenv set db < .env

  # Read .env and sync afterwards
  bwenv set db -i .env -s`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Item = args[0]
			return a.services.Env.Set(cmd.Context(), req)
		},
	}

	cmd.Flags().StringVarP(&req.Input, "input", "i", store.StdStream, "input file, - for stdin")
	cmd.Flags().BoolVarP(&req.Sync, "sync", "s", false, "sync the vault after writing")
	cmd.Flags().StringVar(&req.Format, "format", "raw", "env file dialect: raw or dotenv")

	return cmd
}

func (a *App) newSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Pull the latest vault state from the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.services.Env.Sync(cmd.Context())
		},
	}
}

func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), a.opts.buildInfo.String())
			return err
		},
	}
}
