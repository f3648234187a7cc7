// Copyright 2026 The litplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads litplot settings from defaults, an optional
// config file, LITPLOT_* environment variables and command-line flags,
// in increasing order of precedence.
package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// Config is the resolved litplot configuration.
type Config struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`

	// Seed drives NMF initialization, dot order in topic maps and
	// word placement in clouds. t-SNE layouts are not reproducible.
	Seed int64 `mapstructure:"seed"`

	TopK TopK `mapstructure:"topk"`

	Corpus Corpus `mapstructure:"corpus"`
	Topics Topics `mapstructure:"topics"`
	Clean  Clean  `mapstructure:"clean"`
}

// TopK holds the number of bars of each top-k histogram.
type TopK struct {
	Authors            int `mapstructure:"authors"`
	AuthorAffiliations int `mapstructure:"author_affiliations"`
	Sources            int `mapstructure:"sources"`
	Affiliations       int `mapstructure:"affiliations"`
	Countries          int `mapstructure:"countries"`
	AffiliationTypes   int `mapstructure:"affiliation_types"`
	Words              int `mapstructure:"words"`
	Bigrams            int `mapstructure:"bigrams"`
}

// Corpus configures how documents are turned into bags of words.
type Corpus struct {
	Stopwords string `mapstructure:"stopwords"`
	Bigrams   string `mapstructure:"bigrams"`
	MinLength int    `mapstructure:"min_length"`
}

// Topics configures topic model training and its plots.
type Topics struct {
	Count       int     `mapstructure:"count"`
	Model       string  `mapstructure:"model"`
	MaxIter     int     `mapstructure:"max_iter"`
	CloudCols   int     `mapstructure:"cloud_cols"`
	MaxFontSize int     `mapstructure:"max_font_size"`
	Perplexity  float64 `mapstructure:"perplexity"`
}

// Clean configures the name-merge files of the source and
// affiliation histograms.
type Clean struct {
	Enabled      bool   `mapstructure:"enabled"`
	Sources      string `mapstructure:"sources"`
	Affiliations string `mapstructure:"affiliations"`
	MaxDistance  int    `mapstructure:"max_distance"`
}

// SetDefaults installs the default value of every key in v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("width", 800)
	v.SetDefault("height", 600)
	v.SetDefault("seed", 0)

	v.SetDefault("topk.authors", 20)
	v.SetDefault("topk.author_affiliations", 30)
	v.SetDefault("topk.sources", 10)
	v.SetDefault("topk.affiliations", 10)
	v.SetDefault("topk.countries", 10)
	v.SetDefault("topk.affiliation_types", 10)
	v.SetDefault("topk.words", 25)
	v.SetDefault("topk.bigrams", 25)

	v.SetDefault("corpus.stopwords", "")
	v.SetDefault("corpus.bigrams", "")
	v.SetDefault("corpus.min_length", 2)

	v.SetDefault("topics.count", 10)
	v.SetDefault("topics.model", "nmf")
	v.SetDefault("topics.max_iter", 500)
	v.SetDefault("topics.cloud_cols", 3)
	v.SetDefault("topics.max_font_size", 75)
	v.SetDefault("topics.perplexity", 20)

	v.SetDefault("clean.enabled", false)
	v.SetDefault("clean.sources", "translations_sources.yml")
	v.SetDefault("clean.affiliations", "translations_affiliations.yml")
	v.SetDefault("clean.max_distance", 3)
}

// New returns a Viper instance with defaults and environment binding.
// If path is not empty, that file is read as well; its format follows
// its extension.
func New(path string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix("LITPLOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %s", path)
		}
	}
	return v, nil
}

// Load unmarshals v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "decoding configuration")
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Newf("figure size %dx%d must be positive", c.Width, c.Height)
	}
	switch c.Topics.Model {
	case "nmf", "lda":
	default:
		return errors.WithHint(
			errors.Newf("unknown topic model %q", c.Topics.Model),
			"use nmf or lda")
	}
	if c.Topics.Count < 1 {
		return errors.Newf("topic count %d must be at least 1", c.Topics.Count)
	}
	if c.Topics.CloudCols < 1 {
		return errors.Newf("cloud columns %d must be at least 1", c.Topics.CloudCols)
	}
	return nil
}
