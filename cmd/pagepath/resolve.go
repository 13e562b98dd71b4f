package main

import (
	"github.com/spf13/cobra"

	"github.com/yanizio/pagepath/internal/breadcrumb"
	"github.com/yanizio/pagepath/internal/urls"
)

func urlCmd() *cobra.Command {
	var in inputs
	cmd := &cobra.Command{
		Use:   "url",
		Short: "Resolve the URL of an entity document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := in.document(cmd)
			if err != nil {
				return err
			}
			res, err := urls.ResolveEntity(doc, in.prefix)
			if err != nil {
				return err
			}
			return printJSON(cmd, res)
		},
	}
	in.bind(cmd, false, false)
	return cmd
}

func childCmd() *cobra.Command {
	var in inputs
	cmd := &cobra.Command{
		Use:   "child",
		Short: "Resolve the URL of a child profile listed on a parent page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parent, err := in.document(cmd)
			if err != nil {
				return err
			}
			profile, err := readDoc(cmd, in.profile)
			if err != nil {
				return err
			}
			res, err := urls.ResolveChild(profile, parent, in.prefix)
			if err != nil {
				return err
			}
			return printJSON(cmd, res)
		},
	}
	in.bind(cmd, true, false)
	return cmd
}

func locatorCmd() *cobra.Command {
	var in inputs
	cmd := &cobra.Command{
		Use:   "locator",
		Short: "Resolve the URL of a locator search result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parent, err := in.document(cmd)
			if err != nil {
				return err
			}
			profile, err := readDoc(cmd, in.profile)
			if err != nil {
				return err
			}
			res, err := urls.ResolveLocatorResult(profile, parent, in.prefix)
			if err != nil {
				return err
			}
			return printJSON(cmd, res)
		},
	}
	in.bind(cmd, true, false)
	return cmd
}

func locationPathCmd() *cobra.Command {
	var in inputs
	cmd := &cobra.Command{
		Use:   "location-path",
		Short: "Build the structural region/city/address path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := in.document(cmd)
			if err != nil {
				return err
			}
			path, err := urls.LocationPath(doc, in.prefix)
			if err != nil {
				return err
			}
			return printJSON(cmd, urls.Resolution{URL: path, Strategy: urls.StrategyLocationPath})
		},
	}
	in.bind(cmd, false, false)
	return cmd
}

func breadcrumbsCmd() *cobra.Command {
	var (
		in     inputs
		pageID string
	)
	cmd := &cobra.Command{
		Use:   "breadcrumbs",
		Short: "Resolve the breadcrumb trail and its JSON-LD",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := in.document(cmd)
			if err != nil {
				return err
			}
			trail := breadcrumb.ResolveWith(doc, breadcrumb.Options{})
			return printJSON(cmd, struct {
				breadcrumb.Trail
				Schema *breadcrumb.BreadcrumbList `json:"schema,omitempty"`
			}{trail, breadcrumb.Schema(doc, trail.Links, in.prefix, pageID)})
		},
	}
	in.bind(cmd, false, false)
	cmd.Flags().StringVar(&pageID, "page-id", "", "@id of the current page in the JSON-LD")
	return cmd
}

func listChildCmd() *cobra.Command {
	var in inputs
	cmd := &cobra.Command{
		Use:   "list-child",
		Short: "Build the href of one child on a directory page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := in.document(cmd)
			if err != nil {
				return err
			}
			child, err := readDoc(cmd, in.child)
			if err != nil {
				return err
			}
			href, ok := urls.ListChildLink(doc, child)
			if !ok {
				return printJSON(cmd, map[string]any{"href": child["slug"]})
			}
			return printJSON(cmd, map[string]string{"href": in.prefix + href})
		},
	}
	in.bind(cmd, false, true)
	return cmd
}

func listingCmd() *cobra.Command {
	var in inputs
	cmd := &cobra.Command{
		Use:   "listing",
		Short: "List every directory child with label and href",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := in.document(cmd)
			if err != nil {
				return err
			}
			links := urls.DirectoryListing(doc, in.prefix)
			if links == nil {
				links = []urls.ListLink{}
			}
			return printJSON(cmd, links)
		},
	}
	in.bind(cmd, false, false)
	return cmd
}
