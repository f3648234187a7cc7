// Copyright 2026 The litplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"
)

func batchCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "batch [file]",
		Short: "Run one litplot command per line of file",
		Long: `batch runs each line of file (or standard input) as the arguments
of a litplot command, for example

  year docs.yaml -o year.svg
  clouds docs.yaml --topics 8 -o "topic clouds.svg"

Lines are split with shell quoting rules. Blank lines and lines
starting with # are skipped. batch stops at the first failing line.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) > 0 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return errors.Wrap(err, "opening batch file")
				}
				defer f.Close()
				in = f
			}
			return runBatch(in, stdout)
		},
	}
}

func runBatch(in io.Reader, stdout io.Writer) error {
	scanner := bufio.NewScanner(in)
	for lineno := 1; scanner.Scan(); lineno++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words, err := shellquote.Split(line)
		if err != nil {
			return errors.Wrapf(err, "line %d", lineno)
		}
		if len(words) > 0 && words[0] == "batch" {
			return errors.Newf("line %d: batch cannot nest", lineno)
		}
		root := newRootCmd(stdout)
		root.SetArgs(words)
		if err := root.Execute(); err != nil {
			return errors.Wrapf(err, "line %d", lineno)
		}
	}
	return errors.Wrap(scanner.Err(), "reading batch file")
}
