// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type countingCompletion struct {
	finished  int
	cancelled int
	results   []Result
}

func (c *countingCompletion) DidFinish(results []Result) {
	c.finished++
	c.results = results
}

func (c *countingCompletion) DidCancel() {
	c.cancelled++
}

func TestOnceCompletionFinish(t *testing.T) {
	cc := &countingCompletion{}
	oc := &onceCompletion{c: cc}
	oc.DidFinish([]Result{{Location: 1, Length: 2}})
	assert.Equal(t, 1, cc.finished)
	assert.Equal(t, 0, cc.cancelled)
	assert.Panics(t, func() { oc.DidFinish(nil) })
	assert.Panics(t, func() { oc.DidCancel() })
	assert.Equal(t, 1, cc.finished)
	assert.Equal(t, 0, cc.cancelled)
}

func TestOnceCompletionCancel(t *testing.T) {
	cc := &countingCompletion{}
	oc := &onceCompletion{c: cc}
	oc.DidCancel()
	assert.Equal(t, 1, cc.cancelled)
	assert.Panics(t, func() { oc.DidCancel() })
	assert.Panics(t, func() { oc.DidFinish(nil) })
	assert.Equal(t, 1, cc.cancelled)
	assert.Equal(t, 0, cc.finished)
}

func TestResultsOf(t *testing.T) {
	res, ok := resultsOf([]Result{{Location: 0, Length: 3}})
	assert.True(t, ok)
	assert.Equal(t, []Result{{Location: 0, Length: 3}}, res)

	res, ok = resultsOf([]any{Result{Location: 0, Length: 3}, &Result{Location: 4, Length: 2}})
	assert.True(t, ok)
	assert.Equal(t, []Result{{Location: 0, Length: 3}, {Location: 4, Length: 2}}, res)

	_, ok = resultsOf([]any{Result{}, "not a result"})
	assert.False(t, ok)
	_, ok = resultsOf(42)
	assert.False(t, ok)
	_, ok = resultsOf(nil)
	assert.False(t, ok)
	_, ok = resultsOf((*Result)(nil))
	assert.False(t, ok)

	res, ok = resultsOf([]Result{})
	assert.True(t, ok)
	assert.Empty(t, res)
}
