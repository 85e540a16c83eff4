// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The suggestion model uses a flat dictionary with a precompiled
// deletion-edit index, following the approach of sajari/fuzzy
// (MIT licensed), ignoring frequency counts.

package dict

import (
	"sort"
	"strings"
	"sync"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"golang.org/x/exp/maps"
)

// suggestDepth is the number of deletion edits the index covers;
// 2 is the only sensible value.
const suggestDepth = 2

// Model holds the combined dictionary and the suggestion index over it.
// It has its own lock so that the index can be rebuilt while queries
// are in flight.
type Model struct {

	// Dict is the combined base and user dictionary.
	Dict Dict

	// UserDict holds words learned from the user, a subset of Dict.
	UserDict Dict

	// suggest maps deletion edits of known words to those words.
	suggest map[string][]string

	sim *metrics.JaroWinkler

	mu sync.RWMutex
}

// NewModel returns an empty model; call [Model.SetDicts] to populate it.
func NewModel() *Model {
	return &Model{
		UserDict: make(Dict),
		suggest:  make(map[string][]string),
		sim:      metrics.NewJaroWinkler(),
	}
}

// SetDicts sets the base and user dictionaries and builds the
// suggestion index over their union. The user dictionary may be nil.
func (md *Model) SetDicts(base, user Dict) {
	md.mu.Lock()
	defer md.mu.Unlock()
	if base == nil {
		base = make(Dict)
	}
	if user == nil {
		user = make(Dict)
	}
	md.Dict = base
	md.UserDict = user
	maps.Copy(md.Dict, md.UserDict)
	md.suggest = make(map[string][]string, len(md.Dict))
	for term := range md.Dict {
		md.indexTerm(term)
	}
}

// Exists reports whether the given lowercase word is known.
func (md *Model) Exists(word string) bool {
	md.mu.RLock()
	defer md.mu.RUnlock()
	return md.Dict.Exists(word)
}

// AddWord adds a new word to the user dictionary and indexes it for
// suggestions.
func (md *Model) AddWord(term string) {
	md.mu.Lock()
	defer md.mu.Unlock()
	if md.Dict.Exists(term) {
		return
	}
	md.UserDict.Add(term)
	md.Dict.Add(term)
	md.indexTerm(term)
}

// DeleteWord removes the given word from the dictionaries and the
// suggestion index, undoing learning.
func (md *Model) DeleteWord(term string) {
	md.mu.Lock()
	defer md.mu.Unlock()
	for _, edit := range editsMulti(term, suggestDepth) {
		sug := md.suggest[edit]
		for i := len(sug) - 1; i >= 0; i-- {
			if sug[i] == term {
				sug = append(sug[:i], sug[i+1:]...)
			}
		}
		if len(sug) == 0 {
			delete(md.suggest, edit)
		} else {
			md.suggest[edit] = sug
		}
	}
	delete(md.Dict, term)
	delete(md.UserDict, term)
}

// indexTerm records the term under each of its deletion edits.
// Callers must hold the write lock.
func (md *Model) indexTerm(term string) {
	for _, edit := range editsMulti(term, suggestDepth) {
		if len(edit) <= 1 {
			continue
		}
		known := false
		for _, hit := range md.suggest[edit] {
			if hit == term {
				known = true
				break
			}
		}
		if !known {
			md.suggest[edit] = append(md.suggest[edit], term)
		}
	}
}

// Suggestions returns up to n corrections for the given lowercase
// input, best first. A known input suggests only itself.
func (md *Model) Suggestions(input string, n int) []string {
	md.mu.RLock()
	sugs := md.suggestPotential(input)
	md.mu.RUnlock()
	if len(sugs) > 1 {
		// rank by string similarity to the input
		sort.SliceStable(sugs, func(i, j int) bool {
			return strutil.Similarity(input, sugs[i], md.sim) >
				strutil.Similarity(input, sugs[j], md.sim)
		})
	}
	if n > 0 && len(sugs) > n {
		sugs = sugs[:n]
	}
	return sugs
}

// suggestPotential gathers candidate corrections for the input.
// Callers must hold the read lock.
func (md *Model) suggestPotential(input string) []string {
	if md.Dict.Exists(input) {
		return []string{input}
	}
	seen := make(Dict)
	var sugs []string
	add := func(term string) {
		if !seen.Exists(term) {
			seen.Add(term)
			sugs = append(sugs, term)
		}
	}

	// input may itself be a deletion edit of a known word
	for _, pot := range md.suggest[input] {
		add(pot)
	}

	// deletion edits of the input may be known words
	edits := editsMulti(input, suggestDepth)
	got := false
	for _, edit := range edits {
		if len(edit) > 2 && md.Dict.Exists(edit) {
			got = true
			add(edit)
		}
	}
	if got {
		return sugs
	}

	// transposes and replaces: shared deletion edits, verified by
	// edit distance so that raw index hits like levals=[valves]
	// do not survive
	for _, edit := range edits {
		for _, pot := range md.suggest[edit] {
			if levenshtein(input, pot) <= suggestDepth+1 {
				add(pot)
			}
		}
	}
	return sugs
}

// editsMulti returns all deletion edits of the term up to the
// given depth.
func editsMulti(term string, depth int) []string {
	edits := edits1(term)
	for d := 1; d < depth; d++ {
		for _, edit := range edits {
			edits = append(edits, edits1(edit)...)
		}
	}
	return edits
}

// edits1 returns the terms that are one character deletion away from
// the given term, plus the ys/ies plural alternations.
func edits1(word string) []string {
	edits := make([]string, 0, len(word)+2)
	for i := 0; i < len(word); i++ {
		edits = append(edits, word[:i]+word[i+1:])
	}
	if rest, ok := strings.CutSuffix(word, "ies"); ok {
		edits = append(edits, rest+"ys")
	}
	if rest, ok := strings.CutSuffix(word, "ys"); ok {
		edits = append(edits, rest+"ies")
	}
	return edits
}

// levenshtein returns the edit distance between two strings.
func levenshtein(a, b string) int {
	la, lb := len(a), len(b)
	d := make([]int, la+1)
	for i := 1; i <= la; i++ {
		d[i] = i
	}
	for i := 1; i <= lb; i++ {
		d[0] = i
		lastdiag := i - 1
		for j := 1; j <= la; j++ {
			olddiag := d[j]
			min := d[j] + 1
			if d[j-1]+1 < min {
				min = d[j-1] + 1
			}
			cost := 1
			if a[j-1] == b[i-1] {
				cost = 0
			}
			if lastdiag+cost < min {
				min = lastdiag + cost
			}
			d[j] = min
			lastdiag = olddiag
		}
	}
	return d[la]
}
