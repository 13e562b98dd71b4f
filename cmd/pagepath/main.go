// cmd/pagepath/main.go
//
// pagepath – offline resolver CLI.
//
// Every subcommand reads one or more JSON documents (comments and trailing
// commas allowed), runs the same resolvers the HTTP service runs, and
// prints JSON (or HTML for `page`) to stdout.
//
//	pagepath url --doc store.jsonc --prefix ../
//	pagepath child --doc directory.jsonc --profile profile.jsonc
//	pagepath page --doc store.jsonc --pageset locations.jsonc > out.html
//	pagepath pagesets --site 7
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yanizio/pagepath/internal/logger"
)

var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var logLevel string
	root := &cobra.Command{
		Use:           "pagepath",
		Short:         "Resolve entity URLs, child links, and breadcrumbs from JSON documents",
		SilenceUsage:  true,
		PersistentPreRun: func(*cobra.Command, []string) {
			logger.Console(logLevel)
		},
	}
	root.Version = version
	root.SetVersionTemplate("{{.Version}}\n")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "debug, info, warn, or error")

	root.AddCommand(urlCmd())
	root.AddCommand(childCmd())
	root.AddCommand(locatorCmd())
	root.AddCommand(locationPathCmd())
	root.AddCommand(breadcrumbsCmd())
	root.AddCommand(listChildCmd())
	root.AddCommand(listingCmd())
	root.AddCommand(pageCmd())
	root.AddCommand(pageSetsCmd())
	return root
}
