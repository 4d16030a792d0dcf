package services

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/hanamedu/academy-backend/model"
)

// SuggestLimit caps the typeahead result list. The cap is a UI bound, not a
// correctness guarantee that every match is surfaced.
const SuggestLimit = 10

// Normalize lowercases a searched value and strips all whitespace so queries
// match regardless of spacing. Empty and missing fields normalize to "".
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Searched field priorities, highest first.
const (
	rankName = iota + 1
	rankFounder
	rankAddress
	rankID
	rankNone
)

type candidate struct {
	academy *model.Academy
	rank    int
	name    string // normalized name
	prefix  bool   // normalized name starts with the query
}

// matchCandidates filters academies to those where any searched field
// contains the normalized query, recording the highest-priority matching
// field for each.
func matchCandidates(target string, academies []*model.Academy) []candidate {
	var matched []candidate
	for _, academy := range academies {
		name := Normalize(academy.Name)
		rank := rankNone
		switch {
		case strings.Contains(name, target):
			rank = rankName
		case strings.Contains(Normalize(academy.Founder.Name), target):
			rank = rankFounder
		case strings.Contains(Normalize(academy.Address), target):
			rank = rankAddress
		case strings.Contains(Normalize(academy.ID), target):
			rank = rankID
		}
		if rank == rankNone {
			continue
		}
		matched = append(matched, candidate{
			academy: academy,
			rank:    rank,
			name:    name,
			prefix:  rank == rankName && strings.HasPrefix(name, target),
		})
	}
	return matched
}

// rankCandidates orders matches by field priority (name > founder > address >
// id), optionally preferring name-prefix matches among name matches, then by
// collated normalized name. The sort is stable so equal entries keep their
// first-appearance order across runs.
func rankCandidates(matched []candidate, preferNamePrefix bool) []*model.Academy {
	// Collators keep internal buffers, so one is built per call rather than
	// shared across concurrent searches.
	collator := collate.New(language.Korean)
	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if a.rank != b.rank {
			return a.rank < b.rank
		}
		if preferNamePrefix && a.rank == rankName && a.prefix != b.prefix {
			return a.prefix
		}
		return collator.CompareString(a.name, b.name) < 0
	})

	results := make([]*model.Academy, len(matched))
	for i, c := range matched {
		results[i] = c.academy
	}
	return results
}

// Search returns every academy matching the query, ranked by field priority
// with a collated alphabetical tie-break. A blank query returns nothing
// without inspecting the collection.
func Search(query string, academies []*model.Academy) []*model.Academy {
	target := Normalize(query)
	if target == "" {
		return nil
	}
	return rankCandidates(matchCandidates(target, academies), false)
}

// Suggest returns the ranked typeahead list for a partial query, capped at
// SuggestLimit. Unlike Search it prefers academies whose name starts with the
// query over name matches elsewhere in the name; the submitted-search path
// deliberately keeps the plain containment order.
func Suggest(query string, academies []*model.Academy) []*model.Academy {
	target := Normalize(query)
	if target == "" {
		return nil
	}
	results := rankCandidates(matchCandidates(target, academies), true)
	if len(results) > SuggestLimit {
		results = results[:SuggestLimit]
	}
	return results
}
