// Copyright 2026 The litplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command litplot draws exploratory plots of a bibliographic document
// set.
//
// The input is a YAML or JSON file holding a list of documents (or a
// mapping with a "docs" list); "-" or no argument reads standard
// input. Each subcommand draws one plot as SVG to standard output or
// to the file given with -o. With -table, histograms print their
// counts as text instead.
//
// Settings come from built-in defaults, an optional config file
// (-config), LITPLOT_* environment variables and flags, in increasing
// order of precedence. For example, LITPLOT_TOPK_AUTHORS=5 limits the
// author histogram to five bars.
package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/cockroachdb/errors"
	"github.com/litstudy/litplot/docset"
	"github.com/litstudy/litplot/internal/config"
	"github.com/litstudy/litplot/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "litplot: %v\n", err)
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintf(os.Stderr, "hint: %s\n", hint)
		}
		os.Exit(1)
	}
}

// app is the state shared by the subcommands of one invocation.
type app struct {
	cfg *config.Config
	log *zap.Logger

	configPath string
	out        string
	table      bool
	logJSON    bool
	verbose    bool
	cpuProfile string
	memProfile string

	stopCPU func()
}

// flagKeys maps configuration keys to the persistent flags that
// override them.
var flagKeys = map[string]string{
	"width":            "width",
	"height":           "height",
	"seed":             "seed",
	"corpus.stopwords": "stopwords",
	"corpus.bigrams":   "bigrams",
	"topics.count":     "topics",
	"topics.model":     "model",
	"clean.enabled":    "clean",
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	a := new(app)
	root := &cobra.Command{
		Use:   "litplot",
		Short: "Plot statistics and topics of a bibliographic document set",
		Long: `litplot draws histograms of document metadata and word frequencies,
word clouds of topic models and a topic map of the documents.

Examples:
  litplot year docs.yaml -o year.svg
  litplot authors -table docs.yaml
  litplot clouds --topics 6 docs.yaml -o clouds.svg
  litplot cloud docs.yaml 2 -o topic2.png
  litplot merge suggest --kind sources docs.yaml
  litplot batch plots.txt`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.teardown()
		},
	}
	root.SetOut(stdout)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "read settings from `file` (YAML, TOML or JSON)")
	pf.StringVarP(&a.out, "output", "o", "", "write output to `file` (default: stdout)")
	pf.BoolVar(&a.table, "table", false, "output a table instead of a plot")
	pf.BoolVar(&a.logJSON, "log-json", false, "log as JSON")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log debug messages")
	pf.StringVar(&a.cpuProfile, "cpuprofile", "", "write CPU profile to `file`")
	pf.StringVar(&a.memProfile, "memprofile", "", "write heap profile to `file`")
	pf.Int("width", 800, "figure width in pixels")
	pf.Int("height", 600, "figure height in pixels")
	pf.Int64("seed", 0, "random seed for NMF training, topic map dot order and word cloud layout")
	pf.String("stopwords", "", "read extra stop words from `file`")
	pf.String("bigrams", "", "read bigram merges from `file`")
	pf.Int("topics", 10, "number of topics")
	pf.String("model", "nmf", "topic model: nmf or lda")
	pf.Bool("clean", false, "merge source and affiliation name variants")

	for _, h := range histograms {
		root.AddCommand(a.histogramCmd(h))
	}
	root.AddCommand(a.cloudsCmd(), a.cloudCmd(), a.topicMapCmd(), a.mergeCmd())
	root.AddCommand(batchCmd(stdout))
	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	var err error
	a.log, err = logger.New(logger.Options{JSON: a.logJSON, Verbose: a.verbose})
	if err != nil {
		return errors.Wrap(err, "creating logger")
	}

	v, err := config.New(a.configPath)
	if err != nil {
		return err
	}
	if err := bindFlags(v, cmd); err != nil {
		return err
	}
	if a.cfg, err = config.Load(v); err != nil {
		return err
	}

	if a.cpuProfile != "" {
		f, err := os.Create(a.cpuProfile)
		if err != nil {
			return errors.Wrap(err, "creating CPU profile")
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			f.Close()
			return errors.Wrap(err, "starting CPU profile")
		}
		a.stopCPU = func() {
			pprof.StopCPUProfile()
			f.Close()
		}
	}
	return nil
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for key, name := range flagKeys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return errors.Wrapf(err, "binding flag -%s", name)
		}
	}
	return nil
}

func (a *app) teardown() error {
	if a.stopCPU != nil {
		a.stopCPU()
	}
	if a.memProfile != "" {
		runtime.GC()
		f, err := os.Create(a.memProfile)
		if err != nil {
			return errors.Wrap(err, "creating heap profile")
		}
		defer f.Close()
		if err := pprof.WriteHeapProfile(f); err != nil {
			return errors.Wrap(err, "writing heap profile")
		}
	}
	// Syncing stderr fails on some terminals; nothing is lost.
	_ = a.log.Sync()
	return nil
}

// load reads the document set named by args, or standard input.
func (a *app) load(cmd *cobra.Command, args []string) (*docset.DocumentSet, error) {
	path := "-"
	if len(args) > 0 {
		path = args[0]
	}
	if path == "-" {
		s, err := docset.Read(cmd.InOrStdin())
		return s, errors.Wrap(err, "reading documents from stdin")
	}
	s, err := docset.Load(path)
	if err != nil {
		return nil, err
	}
	a.log.Debug("loaded documents", zap.String("path", path), zap.Int("docs", s.Len()))
	return s, nil
}

// output calls write with the output file, or standard output.
func (a *app) output(cmd *cobra.Command, write func(w io.Writer) error) error {
	if a.out == "" {
		return write(cmd.OutOrStdout())
	}
	f, err := os.Create(a.out)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "closing output")
}
