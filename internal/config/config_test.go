// Copyright 2026 The litplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	v, err := New("")
	require.NoError(t, err)
	c, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, 20, c.TopK.Authors)
	assert.Equal(t, 30, c.TopK.AuthorAffiliations)
	assert.Equal(t, 25, c.TopK.Words)
	assert.Equal(t, "nmf", c.Topics.Model)
	assert.Equal(t, 3, c.Topics.CloudCols)
	assert.Equal(t, "translations_sources.yml", c.Clean.Sources)
	assert.Equal(t, "translations_affiliations.yml", c.Clean.Affiliations)
	assert.False(t, c.Clean.Enabled)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "litplot.yaml")
	data := "width: 1200\ntopk:\n  authors: 5\ntopics:\n  model: lda\n  count: 4\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	v, err := New(path)
	require.NoError(t, err)
	c, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, 1200, c.Width)
	assert.Equal(t, 600, c.Height)
	assert.Equal(t, 5, c.TopK.Authors)
	assert.Equal(t, "lda", c.Topics.Model)
	assert.Equal(t, 4, c.Topics.Count)
}

func TestEnvironment(t *testing.T) {
	t.Setenv("LITPLOT_TOPK_SOURCES", "7")
	v, err := New("")
	require.NoError(t, err)
	c, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 7, c.TopK.Sources)
}

func TestValidate(t *testing.T) {
	for _, test := range []struct {
		key string
		val interface{}
	}{
		{"width", 0},
		{"topics.model", "pca"},
		{"topics.count", 0},
		{"topics.cloud_cols", 0},
	} {
		v, err := New("")
		require.NoError(t, err)
		v.Set(test.key, test.val)
		_, err = Load(v)
		assert.Error(t, err, "%s=%v", test.key, test.val)
	}
}

func TestMissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
