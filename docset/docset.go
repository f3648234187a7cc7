// Copyright 2026 The litplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package docset holds bibliographic records and reads them from
// YAML or JSON files.
//
// A document set file is a list of documents, optionally wrapped in a
// mapping with a "docs" key:
//
//	docs:
//	- title: A study of things
//	  year: 2019
//	  source: Journal of Things
//	  source_type: Journal
//	  language: English
//	  authors:
//	  - name: A. Turing
//	    affiliations:
//	    - {name: University of Manchester, country: UK, type: academic}
//
// Since JSON is a subset of YAML, the same reader accepts JSON.
package docset

import (
	"bytes"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Document is a single bibliographic record. Fields that are unknown
// are left at their zero value; Year and Authors use nil for unknown.
type Document struct {
	Title      string    `yaml:"title" json:"title"`
	Abstract   string    `yaml:"abstract" json:"abstract"`
	Year       *int      `yaml:"year" json:"year"`
	Authors    []*Author `yaml:"authors" json:"authors"`
	Source     string    `yaml:"source" json:"source"`
	SourceType string    `yaml:"source_type" json:"source_type"`
	Language   string    `yaml:"language" json:"language"`
}

// Author is a document author. Affiliations is nil if unknown.
type Author struct {
	Name         string         `yaml:"name" json:"name"`
	Affiliations []*Affiliation `yaml:"affiliations" json:"affiliations"`
}

// Affiliation is an institution an author belongs to.
type Affiliation struct {
	Name    string `yaml:"name" json:"name"`
	Country string `yaml:"country" json:"country"`
	Type    string `yaml:"type" json:"type"`
}

// DocumentSet is an ordered collection of documents.
type DocumentSet struct {
	Docs []*Document `yaml:"docs" json:"docs"`
}

// Len returns the number of documents in s.
func (s *DocumentSet) Len() int {
	return len(s.Docs)
}

// Load reads a document set from path. The path "-" reads standard
// input.
func Load(path string) (*DocumentSet, error) {
	if path == "-" {
		s, err := Read(os.Stdin)
		return s, errors.Wrap(err, "reading documents from stdin")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening document set")
	}
	defer f.Close()
	s, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading documents from %s", path)
	}
	return s, nil
}

// Read decodes a document set from r.
func Read(r io.Reader) (*DocumentSet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return &DocumentSet{}, nil
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, errors.Wrap(err, "parsing document set")
	}
	root := &node
	if root.Kind == yaml.DocumentNode && len(root.Content) == 1 {
		root = root.Content[0]
	}

	s := new(DocumentSet)
	switch root.Kind {
	case yaml.SequenceNode:
		err = root.Decode(&s.Docs)
	case yaml.MappingNode:
		err = root.Decode(s)
	default:
		return nil, errors.WithHint(
			errors.Newf("document set at line %d is neither a list nor a mapping", root.Line),
			"write a list of documents or a mapping with a docs key")
	}
	if err != nil {
		return nil, errors.Wrap(err, "decoding documents")
	}

	// Drop null entries so callers never see nil documents.
	docs := s.Docs[:0]
	for _, d := range s.Docs {
		if d != nil {
			docs = append(docs, d)
		}
	}
	s.Docs = docs
	return s, nil
}
