// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package segment

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"cogentcore.org/spellbridge/script"
)

// Word is one checkable token produced by a [WordIterator].
// Start and Length are byte offsets into the text passed to SetText,
// with Start+Length <= len(text).
type Word struct {
	Text   string
	Start  int
	Length int
}

// WordIterator is a restartable cursor that yields the words of a text
// buffer one at a time. It does not own the buffer: the string passed to
// SetText must remain valid while the iterator is in use. An iterator is
// private, single-owner mutable state; it is reused across calls but
// must not be shared concurrently.
type WordIterator struct {
	profile *Profile
	text    string
	pos     int
	state   int
	inited  bool
}

// IsInitialized reports whether Init has succeeded on this iterator.
func (wi *WordIterator) IsInitialized() bool {
	return wi.inited
}

// Init prepares the iterator with the given profile, running locale
// setup at most once per iterator. It reports whether setup succeeded;
// on failure the iterator yields no words, so an inability to segment is
// never surfaced as a false misspelling.
func (wi *WordIterator) Init(p *Profile) bool {
	if wi.inited {
		return true
	}
	if p == nil {
		return false
	}
	wi.profile = p
	wi.inited = true
	return true
}

// SetText re-targets the iterator at the given text and rewinds it.
// It may be called repeatedly without re-running locale setup.
func (wi *WordIterator) SetText(text string) {
	wi.text = text
	wi.pos = 0
	wi.state = -1
}

// Next returns the next word in the text, or false when the text is
// exhausted or the iterator was never initialized. Words are yielded
// strictly left to right.
func (wi *WordIterator) Next() (Word, bool) {
	if !wi.inited {
		return Word{}, false
	}
	if wi.profile.AllowContraction {
		return wi.nextWord()
	}
	return wi.nextSubWord()
}

// nextWord yields the next UAX #29 word segment that contains at least
// one word-bearing rune. Boundary rules WB6/WB7 keep letters joined by
// mid-word punctuation (apostrophes etc) in one segment, so contraction
// tokens come out whole; whitespace, punctuation, and digit-only runs
// are their own segments and are skipped.
func (wi *WordIterator) nextWord() (Word, bool) {
	for wi.pos < len(wi.text) {
		seg, _, state := uniseg.FirstWordInString(wi.text[wi.pos:], wi.state)
		if seg == "" {
			break
		}
		wi.state = state
		start := wi.pos
		wi.pos += len(seg)
		if !script.HasWordCharacters(seg, 0) {
			continue
		}
		return Word{Text: seg, Start: start, Length: len(seg)}, true
	}
	return Word{}, false
}

// nextSubWord yields the next maximal run of word-bearing runes,
// treating every other rune as a separator. This is the contraction
// profile's re-segmentation of a compound token into its components.
func (wi *WordIterator) nextSubWord() (Word, bool) {
	text := wi.text
	i := wi.pos
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if script.IsWordBearing(r) {
			break
		}
		i += size
	}
	if i >= len(text) {
		wi.pos = len(text)
		return Word{}, false
	}
	start := i
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !script.IsWordBearing(r) {
			break
		}
		i += size
	}
	wi.pos = i
	return Word{Text: text[start:i], Start: start, Length: i - start}, true
}
