// Copyright 2026 The litplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package corpus

import (
	_ "embed"
	"strings"
)

//go:embed stopwords.txt
var stopwordsText string

// defaultStopwords is the built-in English stop word list.
var defaultStopwords = func() map[string]bool {
	m := make(map[string]bool)
	for _, w := range strings.Fields(stopwordsText) {
		m[w] = true
	}
	return m
}()

// IsStopword reports whether w is in the built-in English stop word
// list.
func IsStopword(w string) bool {
	return defaultStopwords[w]
}
