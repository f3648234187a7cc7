// Copyright 2026 The litplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/litstudy/litplot/clean"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDocs = `
- title: Graph neural networks for citation analysis
  year: 2019
  source: Journal of Things
  source_type: journal
  language: English
  authors:
  - name: Ada
    affiliations:
    - {name: UvA, country: Netherlands, type: academic}
- title: Citation graphs at scale
  year: 2021
  source: Journal of things.
  source_type: journal
  language: English
  authors:
  - name: Ada
  - name: Bob
- title: Word clouds of topics
  source: Journal of Things
  source_type: conference
  language: German
`

func writeDocs(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "docs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testDocs), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer
	root := newRootCmd(&out)
	root.SetArgs(args)
	root.SetErr(&out)
	err := root.Execute()
	return out.String(), err
}

func TestYear(t *testing.T) {
	docs := writeDocs(t)
	out, err := run(t, "year", docs, "--width", "500")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "<?xml"), "not SVG: %.80s", out)
	assert.Contains(t, out, `width="500"`)
	assert.Contains(t, out, ">Publications per year<")
	assert.Contains(t, out, ">2020<")
}

func TestTable(t *testing.T) {
	docs := writeDocs(t)
	out, err := run(t, "authors", "--table", docs)
	require.NoError(t, err)
	assert.Equal(t, "key  count\nAda      2\nBob      1\n", out)
}

func TestOutputFile(t *testing.T) {
	docs := writeDocs(t)
	path := filepath.Join(t.TempDir(), "langs.svg")
	out, err := run(t, "languages", docs, "-o", path)
	require.NoError(t, err)
	assert.Empty(t, out)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), ">German<")
}

func TestSeedUsage(t *testing.T) {
	f := newRootCmd(&bytes.Buffer{}).PersistentFlags().Lookup("seed")
	require.NotNil(t, f)
	assert.Contains(t, f.Usage, "dot order")
	assert.NotContains(t, f.Usage, "topic maps")
}

func TestBadConfig(t *testing.T) {
	docs := writeDocs(t)
	_, err := run(t, "year", docs, "--model", "lsa")
	assert.ErrorContains(t, err, `unknown topic model "lsa"`)
}

func TestMergeSuggest(t *testing.T) {
	docs := writeDocs(t)
	path := filepath.Join(t.TempDir(), "sources.yml")
	t.Setenv("LITPLOT_CLEAN_SOURCES", path)

	out, err := run(t, "merge", "suggest", "--kind", "sources", docs)
	require.NoError(t, err)
	assert.Contains(t, out, "Journal of things.")

	tr, err := clean.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Journal of things."}, tr.Suggestions["Journal of Things"])

	_, err = run(t, "merge", "suggest", "--kind", "people", docs)
	assert.Error(t, err)
}

func TestBatch(t *testing.T) {
	docs := writeDocs(t)
	dir := t.TempDir()
	script := strings.Join([]string{
		"# histograms",
		"year " + docs + " -o " + filepath.Join(dir, "year.svg"),
		"",
		"sources " + docs + ` -o "` + filepath.Join(dir, "my sources.svg") + `"`,
	}, "\n")
	batch := filepath.Join(dir, "plots.txt")
	require.NoError(t, os.WriteFile(batch, []byte(script), 0o644))

	_, err := run(t, "batch", batch)
	require.NoError(t, err)
	for _, name := range []string{"year.svg", "my sources.svg"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, "%s not written", name)
	}

	err = runBatch(strings.NewReader("year /does/not/exist.yaml\n"), &bytes.Buffer{})
	assert.ErrorContains(t, err, "line 1")
	err = runBatch(strings.NewReader("batch x\n"), &bytes.Buffer{})
	assert.ErrorContains(t, err, "cannot nest")
}
