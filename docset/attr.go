// Copyright 2026 The litplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package docset

// Attr selects an attribute of an Affiliation.
type Attr int

const (
	AttrName Attr = iota
	AttrCountry
	AttrType
)

func (a Attr) of(aff *Affiliation) string {
	switch a {
	case AttrCountry:
		return aff.Country
	case AttrType:
		return aff.Type
	}
	return aff.Name
}

// set accumulates distinct strings in first-seen order.
type set struct {
	seen map[string]bool
	list []string
}

func (s *set) add(x string) {
	if s.seen == nil {
		s.seen = make(map[string]bool)
	}
	if !s.seen[x] {
		s.seen[x] = true
		s.list = append(s.list, x)
	}
}

// AuthorNames returns the distinct author names of d in order of
// appearance.
func AuthorNames(d *Document) []string {
	var s set
	for _, a := range d.Authors {
		if a != nil {
			s.add(a.Name)
		}
	}
	return s.list
}

// Affiliations returns the distinct, non-empty values of attribute
// attr over the affiliations of all authors of d.
func Affiliations(d *Document, attr Attr) []string {
	var s set
	for _, a := range d.Authors {
		if a == nil {
			continue
		}
		for _, aff := range a.Affiliations {
			if aff == nil {
				continue
			}
			if v := attr.of(aff); v != "" {
				s.add(v)
			}
		}
	}
	return s.list
}

// AuthorAffiliations returns "author, affiliation" for every pair of
// an author of d and one of their affiliations. An author without
// known affiliations yields "author, Unknown". This separates people
// who share a name but work at different institutions.
func AuthorAffiliations(d *Document) []string {
	var s set
	for _, a := range d.Authors {
		if a == nil {
			continue
		}
		if a.Affiliations == nil {
			s.add(a.Name + ", Unknown")
			continue
		}
		for _, aff := range a.Affiliations {
			if aff != nil {
				s.add(a.Name + ", " + aff.Name)
			}
		}
	}
	return s.list
}
