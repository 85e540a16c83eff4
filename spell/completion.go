// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spell

import "cogentcore.org/spellbridge/script"

// Completion is the single-use handle through which the outcome of a
// [Client.RequestBlockCheck] call is delivered to the host: exactly one
// of DidFinish or DidCancel, exactly once. The host is assumed to hold
// internal state keyed on receiving exactly one signal.
type Completion interface {

	// DidFinish delivers the block's check results, possibly empty,
	// verbatim from the provider.
	DidFinish(results []Result)

	// DidCancel reports that the block was not checked.
	DidCancel()
}

// onceCompletion wraps a host completion handle and enforces the
// exactly-once delivery contract. The pending request lives exactly as
// long as this wrapper is unsignaled; a second signal is a bridge bug.
type onceCompletion struct {
	c    Completion
	done bool
}

func (oc *onceCompletion) signal() {
	if oc.done {
		panic("spell: completion signaled twice; exactly one of finish or cancel is allowed")
	}
	oc.done = true
}

func (oc *onceCompletion) DidFinish(results []Result) {
	oc.signal()
	oc.c.DidFinish(results)
}

func (oc *onceCompletion) DidCancel() {
	oc.signal()
	oc.c.DidCancel()
}

// RequestBlockCheck asks the provider to check the whole text block and
// resolves the given completion handle with exactly one of cancel or
// finish-with-results before returning:
//
//   - empty text, or text with no word-bearing characters, cancels
//     without ever invoking the provider;
//   - a provider without the block-check capability, or one whose
//     result does not decode as a sequence of [Result], cancels;
//   - otherwise the decoded results are handed to the host verbatim.
//
// At most one request may be outstanding per Client; callers must
// serialize their requests.
func (cl *Client) RequestBlockCheck(text string, c Completion) {
	oc := &onceCompletion{c: c}
	if text == "" || !script.HasWordCharacters(text, 0) {
		oc.DidCancel()
		return
	}
	if cl.provider.checkText == nil {
		oc.DidCancel()
		return
	}
	results, ok := resultsOf(cl.provider.checkText(text))
	if !ok {
		oc.DidCancel()
		return
	}
	oc.DidFinish(results)
}
