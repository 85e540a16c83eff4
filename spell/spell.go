// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spell bridges a text-rendering host to an external spelling
// provider. The bridge does the segmentation work: it splits arbitrary
// mixed-script Unicode text into checkable words, filters out scripts
// that have no spelling concept, rescues concatenated words through a
// contraction fallback, and satisfies the host's asynchronous completion
// contract. It never judges a word itself; the bound provider does.
//
// The failure policy is fail-open throughout: an unbound or partially
// bound provider, a result of the wrong type, or a failure to set up
// segmentation all resolve to "correctly spelled" or a clean cancel,
// never to an error or an invented misspelling. The one exception is
// the retired [Client.CheckTextOfParagraph] path, where being called at
// all is a caller bug and panics.
//
// All methods run synchronously on the calling thread; a Client is not
// safe for concurrent use.
package spell

import (
	"log/slog"

	"cogentcore.org/spellbridge/segment"
)

// Misspelling is the span of the first misspelled word found in a
// checked text, in byte offsets.
type Misspelling struct {
	Start  int
	Length int
}

// Result is one misspelled span inside an asynchronously checked block,
// in byte offsets. Results for a block are non-overlapping; ordering is
// the provider's responsibility.
type Result struct {
	Location int
	Length   int
}

// CheckingTypes is a bitmask of text checking categories.
type CheckingTypes int32

const (
	// CheckingTypeSpelling requests spelling checks.
	CheckingTypeSpelling CheckingTypes = 1 << iota

	// CheckingTypeGrammar requests grammar checks, which this bridge
	// does not perform.
	CheckingTypeGrammar
)

// Checking is the capability surface the host rendering engine consumes.
// [Client] implements it.
type Checking interface {

	// CheckSingleSpan synchronously checks the given text span and
	// reports the first misspelled word's span, if any.
	CheckSingleSpan(text string) (Misspelling, bool)

	// RequestBlockCheck asynchronously checks a whole text block,
	// resolving via exactly one call on the given completion handle.
	RequestBlockCheck(text string, c Completion)

	// GetAutoCorrection returns the provider's suggested correction for
	// the given word, if it has one.
	GetAutoCorrection(word string) (string, bool)

	// CheckTextOfParagraph is a retired synchronous entry point that
	// hosts must no longer call; see the method on [Client].
	CheckTextOfParagraph(text string, mask CheckingTypes) []Result

	// ShowSpellingUI, IsShowingSpellingUI, and
	// UpdateSpellingUIWithMisspelledWord are UI affordance hooks owned
	// by UI collaborators; this bridge only stubs them.
	ShowSpellingUI(show bool)
	IsShowingSpellingUI() bool
	UpdateSpellingUIWithMisspelledWord(word string)
}

// Client is the spelling bridge for one host view. It owns the locale
// profiles and the word iterators, and holds the provider's capability
// methods, resolved once at construction.
type Client struct {
	// profile is the locale word-breaking profile; contraction tokens
	// come out of it as single words.
	profile *segment.Profile

	// contractionProfile treats punctuation as separators, for
	// re-segmenting a rejected compound token into its components.
	contractionProfile *segment.Profile

	// textIterator splits host text into words and contractions.
	// contractionIterator splits a contraction into sub-words.
	// Both are lazily initialized on first use and reused across calls.
	textIterator        segment.WordIterator
	contractionIterator segment.WordIterator

	provider providerFuncs
}

var _ Checking = (*Client)(nil)

// NewClient returns a bridge for the given BCP-47 language tag, bound to
// the given provider. The provider may be nil or may implement any
// subset of the capability methods (see [WordChecker], [AutoCorrector],
// and [BlockChecker]); whatever is absent degrades to its fail-open
// default. The provider methods are resolved here, once, and are not
// re-resolved per call.
func NewClient(language string, provider any) *Client {
	return &Client{
		profile:            segment.NewProfile(language, true),
		contractionProfile: segment.NewProfile(language, false),
		provider:           resolveProvider(provider),
	}
}

// CheckSingleSpan checks the given span and reports the span of the
// first misspelled word, in byte offsets. Only the first misspelling is
// ever reported per call. An empty span or an unbound provider reports
// no misspelling.
func (cl *Client) CheckSingleSpan(text string) (Misspelling, bool) {
	if text == "" || cl.provider.spellCheck == nil {
		return Misspelling{}, false
	}
	if !cl.textIterator.IsInitialized() && !cl.textIterator.Init(cl.profile) {
		// treat the span as correctly spelled rather than erroring
		slog.Debug("spell: failed to initialize word iterator")
		return Misspelling{}, false
	}
	cl.textIterator.SetText(text)
	for {
		w, ok := cl.textIterator.Next()
		if !ok {
			break
		}
		if cl.checkSpelling(w.Text) {
			continue
		}
		// a concatenation of two or more valid words (e.g. "hello:hello")
		// is treated as a valid word
		if cl.isValidContraction(w.Text) {
			continue
		}
		return Misspelling{Start: w.Start, Length: w.Length}, true
	}
	return Misspelling{}, false
}

// isValidContraction reports whether the given token, already rejected
// as a whole word, is a concatenation of individually valid words
// (e.g. "in'n'out"). It is the fallback for compound tokens that the
// word iterator yields in one piece but that are not dictionary entries.
func (cl *Client) isValidContraction(word string) bool {
	if !cl.contractionIterator.IsInitialized() && !cl.contractionIterator.Init(cl.contractionProfile) {
		slog.Debug("spell: failed to initialize contraction iterator")
		return true
	}
	cl.contractionIterator.SetText(word)
	for {
		w, ok := cl.contractionIterator.Next()
		if !ok {
			return true
		}
		if !cl.checkSpelling(w.Text) {
			return false
		}
	}
}

// GetAutoCorrection returns the provider's suggested correction for the
// given word verbatim, or false if the provider lacks the capability or
// its result is not a string.
func (cl *Client) GetAutoCorrection(word string) (string, bool) {
	return callProvider[string](cl.provider.autoCorrect, word)
}

// CheckTextOfParagraph is a retired synchronous entry point. The current
// host contract routes all block checking through [Client.RequestBlockCheck];
// reaching this method with spelling requested means the host is on the
// retired protocol path, which is a programming error, so it panics
// rather than silently no-op and mask the protocol mismatch.
func (cl *Client) CheckTextOfParagraph(text string, mask CheckingTypes) []Result {
	if mask&CheckingTypeSpelling == 0 {
		return nil
	}
	panic("spell: CheckTextOfParagraph should never be called; use RequestBlockCheck")
}

// ShowSpellingUI is a stub; no UI is implemented in this bridge.
func (cl *Client) ShowSpellingUI(show bool) {}

// IsShowingSpellingUI is a stub; it always reports not showing.
func (cl *Client) IsShowingSpellingUI() bool { return false }

// UpdateSpellingUIWithMisspelledWord is a stub.
func (cl *Client) UpdateSpellingUIWithMisspelledWord(word string) {}
