package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/jsonc"

	"github.com/yanizio/pagepath/internal/document"
	"github.com/yanizio/pagepath/internal/pageset"
)

// inputs holds the flags shared by the resolver subcommands.
type inputs struct {
	doc, profile, child, pageSet string
	prefix                       string
}

func (in *inputs) bind(cmd *cobra.Command, withProfile, withChild bool) {
	f := cmd.Flags()
	f.StringVar(&in.doc, "doc", "", "document file (JSON or JSONC, - for stdin)")
	f.StringVar(&in.prefix, "prefix", "", "relativePrefixToRoot prepended to results")
	f.StringVar(&in.pageSet, "pageset", "", "page-set file applied to the document where it has no config of its own")
	_ = cmd.MarkFlagRequired("doc")
	if withProfile {
		f.StringVar(&in.profile, "profile", "", "child profile file")
		_ = cmd.MarkFlagRequired("profile")
	}
	if withChild {
		f.StringVar(&in.child, "child", "", "directory child file")
		_ = cmd.MarkFlagRequired("child")
	}
}

// document reads --doc and applies --pageset.
func (in *inputs) document(cmd *cobra.Command) (document.Document, error) {
	doc, err := readDoc(cmd, in.doc)
	if err != nil || in.pageSet == "" {
		return doc, err
	}
	var ps pageset.PageSet
	if err := readJSONC(cmd, in.pageSet, &ps); err != nil {
		return nil, err
	}
	return pageset.Enrich(doc, &ps), nil
}

func readDoc(cmd *cobra.Command, path string) (document.Document, error) {
	var d document.Document
	if err := readJSONC(cmd, path, &d); err != nil {
		return nil, err
	}
	if d == nil {
		return nil, fmt.Errorf("%s: not a JSON object", path)
	}
	return d, nil
}

// readJSONC strips comments and trailing commas, then unmarshals into dst.
func readJSONC(cmd *cobra.Command, path string, dst any) error {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	dec.UseNumber()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
