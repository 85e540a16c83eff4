// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spell

import "log/slog"

// The provider is an opaque object supplied by the embedding
// application. Its capability methods return dynamically typed values
// because the provider frequently lives on the far side of a scripting
// or IPC boundary, where the bridge cannot trust the result shape. Each
// method is optional; the bridge probes for them once at construction.

// WordChecker is the provider capability for single-word queries.
// The result must decode as bool; anything else counts as correct.
type WordChecker interface {
	SpellCheck(word string) any
}

// AutoCorrector is the provider capability for correction suggestions.
// The result must decode as string; anything else means no suggestion.
type AutoCorrector interface {
	AutoCorrectWord(word string) any
}

// BlockChecker is the provider capability for whole-block checks.
// The result must decode as a sequence of [Result]; anything else
// cancels the request.
type BlockChecker interface {
	RequestCheckingOfText(text string) any
}

// providerFuncs holds the provider capability methods resolved once at
// client construction. A nil field means the provider lacks that
// capability and the corresponding operation uses its fail-open default.
type providerFuncs struct {
	spellCheck  func(string) any
	autoCorrect func(string) any
	checkText   func(string) any
}

// resolveProvider probes the given provider object for each capability
// method and binds the ones present.
func resolveProvider(p any) providerFuncs {
	var pf providerFuncs
	if p == nil {
		return pf
	}
	if wc, ok := p.(WordChecker); ok {
		pf.spellCheck = wc.SpellCheck
	}
	if ac, ok := p.(AutoCorrector); ok {
		pf.autoCorrect = ac.AutoCorrectWord
	}
	if bc, ok := p.(BlockChecker); ok {
		pf.checkText = bc.RequestCheckingOfText
	}
	return pf
}

// callProvider invokes a resolved provider method and decodes its
// dynamically typed result as T. It reports failure, instead of
// producing a default, when the method is unbound or the result does
// not decode; the caller picks the fail-open value for its operation.
func callProvider[T any](fn func(string) any, text string) (T, bool) {
	var zero T
	if fn == nil {
		return zero, false
	}
	out, ok := fn(text).(T)
	if !ok {
		return zero, false
	}
	return out, true
}

// checkSpelling asks the provider whether the word is correctly
// spelled. Fail-open: with no bound method, or a result that is not a
// boolean, the word counts as correct. Note that this masks genuinely
// malformed provider integrations; the debug log is the only trace.
func (cl *Client) checkSpelling(word string) bool {
	if cl.provider.spellCheck == nil {
		return true
	}
	correct, ok := callProvider[bool](cl.provider.spellCheck, word)
	if !ok {
		slog.Debug("spell: provider SpellCheck result is not a boolean; treating word as correct", "word", word)
		return true
	}
	return correct
}

// resultsOf decodes a provider block-check result into a sequence of
// [Result]. Plain []Result passes through verbatim; a []any of Result
// or *Result elements, as produced by generic decoders, is converted.
// Anything else fails.
func resultsOf(v any) ([]Result, bool) {
	switch rv := v.(type) {
	case []Result:
		return rv, true
	case []any:
		res := make([]Result, 0, len(rv))
		for _, e := range rv {
			switch r := e.(type) {
			case Result:
				res = append(res, r)
			case *Result:
				if r == nil {
					return nil, false
				}
				res = append(res, *r)
			default:
				return nil, false
			}
		}
		return res, true
	}
	return nil, false
}
