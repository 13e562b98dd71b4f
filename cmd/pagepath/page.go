package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yanizio/pagepath/internal/config"
	"github.com/yanizio/pagepath/internal/database"
	"github.com/yanizio/pagepath/internal/pageset"
	"github.com/yanizio/pagepath/internal/theme"
	"github.com/yanizio/pagepath/internal/vault"
	"github.com/yanizio/pagepath/internal/view"
)

func pageCmd() *cobra.Command {
	var (
		in        inputs
		pageID    string
		themeDir  string
		themeName string
	)
	cmd := &cobra.Command{
		Use:   "page",
		Short: "Render the HTML page of an entity document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := in.document(cmd)
			if err != nil {
				return err
			}
			p := view.Build(view.PageInput{Doc: doc, RelativePrefixToRoot: in.prefix, PageID: pageID})
			e := view.NewEngine(&theme.Manager{BaseDir: themeDir}, themeName, 1, view.CacheSkip)
			return e.Render(cmd.OutOrStdout(), p)
		},
	}
	in.bind(cmd, false, false)
	cmd.Flags().StringVar(&pageID, "page-id", "", "@id of the current page in the JSON-LD")
	cmd.Flags().StringVar(&themeDir, "theme-dir", "", "directory holding theme overrides")
	cmd.Flags().StringVar(&themeName, "theme", theme.DefaultName, "theme name")
	return cmd
}

func pageSetsCmd() *cobra.Command {
	var siteID uint64
	cmd := &cobra.Command{
		Use:   "pagesets",
		Short: "List the stored page sets of a site",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.Database.DSN == "" {
				return fmt.Errorf("database.dsn is not configured")
			}
			if cfg.NeedsSecrets() {
				vc, err := vault.New(ctx)
				if err != nil {
					return err
				}
				if err := config.ResolveSecrets(ctx, cfg, vc); err != nil {
					return err
				}
			}
			db, err := database.Open(ctx, cfg.DatabaseDSN())
			if err != nil {
				return err
			}
			defer db.Close()

			rows, err := pageset.BySite(ctx, db, siteID)
			if err != nil {
				return err
			}
			out := make([]*pageset.PageSet, 0, len(rows))
			for i := range rows {
				ps, err := rows[i].Decode()
				if err != nil {
					return err
				}
				out = append(out, ps)
			}
			return printJSON(cmd, out)
		},
	}
	cmd.Flags().Uint64Var(&siteID, "site", 0, "site id")
	_ = cmd.MarkFlagRequired("site")
	return cmd
}
