// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dict

import (
	"strings"
	"time"
	"unicode"

	"cogentcore.org/spellbridge/segment"
	"cogentcore.org/spellbridge/spell"
)

// Checker is a dictionary-backed spelling provider. It implements the
// capability methods that [spell.Client] probes for, so it can be
// passed directly as the provider argument of [spell.NewClient], and
// serves as the in-process stand-in for an external checker.
type Checker struct {

	// Model holds the dictionaries and the suggestion index.
	Model *Model

	// Ignore holds words ignored for this session only.
	Ignore Dict

	// UserFile is the path learned words are persisted to; see
	// [Checker.OpenUser].
	UserFile string

	iter      segment.WordIterator
	openTime  time.Time // mod time of UserFile when last opened or saved
	learnTime time.Time // last learning since open; zero if none
}

// NewChecker returns a checker for the given BCP-47 language tag,
// answering queries from the given base dictionary.
func NewChecker(language string, base Dict) *Checker {
	ck := &Checker{Model: NewModel(), Ignore: make(Dict)}
	ck.Model.SetDicts(base, nil)
	ck.iter.Init(segment.NewProfile(language, true))
	return ck
}

// CheckWord reports whether the given word is correctly spelled,
// i.e. known to the dictionary or ignored this session.
func (ck *Checker) CheckWord(word string) bool {
	lw := strings.ToLower(word)
	return ck.Ignore.Exists(lw) || ck.Model.Exists(lw)
}

// AddWord learns the given word into the user dictionary, saving the
// dictionary file if enough time has passed since it was opened.
func (ck *Checker) AddWord(word string) {
	if ck.learnTime.IsZero() {
		ck.OpenUserCheck() // be sure we have the latest before learning
	}
	ck.Model.AddWord(strings.ToLower(word))
	ck.learnTime = time.Now()
	if ck.UserFile != "" && ck.learnTime.Sub(ck.openTime) > saveAfterLearnInterval {
		ck.SaveUser()
	}
}

// DeleteWord unlearns the given word, in case it was added by accident.
func (ck *Checker) DeleteWord(word string) {
	if ck.learnTime.IsZero() {
		ck.OpenUserCheck()
	}
	ck.Model.DeleteWord(strings.ToLower(word))
	ck.learnTime = time.Now()
	if ck.UserFile != "" && ck.learnTime.Sub(ck.openTime) > saveAfterLearnInterval {
		ck.SaveUser()
	}
}

// IgnoreWord ignores the given word for the rest of the session.
func (ck *Checker) IgnoreWord(word string) {
	ck.Ignore.Add(word)
}

// SpellCheck is the single-word capability method: it returns whether
// the word is correctly spelled, as a dynamically typed boolean.
func (ck *Checker) SpellCheck(word string) any {
	return ck.CheckWord(word)
}

// AutoCorrectWord is the correction capability method: it returns the
// best suggestion for the word with the word's capitalization pattern
// applied, or nil if there is none.
func (ck *Checker) AutoCorrectWord(word string) any {
	sugs := ck.Model.Suggestions(strings.ToLower(word), 1)
	if len(sugs) == 0 {
		return nil
	}
	return matchCase(word, sugs[0])
}

// RequestCheckingOfText is the block capability method: it segments the
// whole text and returns a []spell.Result span for every word not in
// the dictionary, in text order.
func (ck *Checker) RequestCheckingOfText(text string) any {
	results := []spell.Result{}
	ck.iter.SetText(text)
	for {
		w, ok := ck.iter.Next()
		if !ok {
			return results
		}
		if !ck.CheckWord(w.Text) {
			results = append(results, spell.Result{Location: w.Start, Length: w.Length})
		}
	}
}

// matchCase applies the capitalization pattern of src to the given
// suggestion: all-caps stays all-caps and a leading capital is kept.
func matchCase(src, sugg string) string {
	if src == strings.ToUpper(src) && len([]rune(src)) > 1 {
		return strings.ToUpper(sugg)
	}
	sr := []rune(src)
	gr := []rune(sugg)
	if len(sr) > 0 && len(gr) > 0 && unicode.IsUpper(sr[0]) {
		gr[0] = unicode.ToUpper(gr[0])
		return string(gr)
	}
	return sugg
}
