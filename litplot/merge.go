// Copyright 2026 The litplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/aclements/go-gg/table"
	"github.com/cockroachdb/errors"
	"github.com/litstudy/litplot/clean"
	"github.com/litstudy/litplot/docset"
	"github.com/litstudy/litplot/plot"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) mergeCmd() *cobra.Command {
	merge := &cobra.Command{
		Use:   "merge",
		Short: "Manage source and affiliation name merges",
	}

	var kind string
	suggest := &cobra.Command{
		Use:   "suggest [docs]",
		Short: "Record likely spelling variants in the translation file",
		Long: `suggest groups source or affiliation names that differ only in case,
accents, punctuation or a few edits, and records each group under
"suggestions" in the translation file. Move a group under "merges" to
apply it to the histograms.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				path string
				key  plot.Key
			)
			switch kind {
			case "sources":
				path = a.cfg.Clean.Sources
				key = func(d *docset.Document) []string { return []string{d.Source} }
			case "affiliations":
				path = a.cfg.Clean.Affiliations
				key = func(d *docset.Document) []string { return docset.Affiliations(d, docset.AttrName) }
			default:
				return errors.WithHint(errors.Newf("unknown kind %q", kind), "use sources or affiliations")
			}

			s, err := a.load(cmd, args)
			if err != nil {
				return err
			}
			t, err := clean.Load(path)
			if err != nil {
				return err
			}
			groups := t.Suggest(plot.Count(s.Docs, key).Map(), a.cfg.Clean.MaxDistance)
			a.log.Info("found merge suggestions", zap.Int("groups", len(groups)), zap.String("file", path))
			if len(groups) > 0 {
				t.AddSuggestions(groups)
				if err := t.Save(path); err != nil {
					return err
				}
			}

			canon, variants := []string{}, []string{}
			for _, g := range groups {
				for _, v := range g.Variants {
					canon = append(canon, g.Canonical)
					variants = append(variants, v)
				}
			}
			tab := new(table.Builder).
				Add("canonical", canon).
				Add("variant", variants).
				Done()
			return a.output(cmd, func(w io.Writer) error {
				table.Fprint(w, tab)
				return nil
			})
		},
	}
	suggest.Flags().StringVar(&kind, "kind", "sources", "names to merge: sources or affiliations")
	merge.AddCommand(suggest)
	return merge
}
