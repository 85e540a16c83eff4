// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func collect(wi *WordIterator, text string) []Word {
	wi.SetText(text)
	var words []Word
	for {
		w, ok := wi.Next()
		if !ok {
			return words
		}
		words = append(words, w)
	}
}

func TestWordIterator(t *testing.T) {
	var wi WordIterator
	assert.False(t, wi.IsInitialized())
	assert.True(t, wi.Init(NewProfile("en-US", true)))
	assert.True(t, wi.IsInitialized())

	words := collect(&wi, "Hello, world!")
	assert.Equal(t, []Word{
		{Text: "Hello", Start: 0, Length: 5},
		{Text: "world", Start: 7, Length: 5},
	}, words)
}

func TestWordIteratorRestart(t *testing.T) {
	var wi WordIterator
	wi.Init(NewProfile("en-US", true))
	first := collect(&wi, "one two")
	assert.Len(t, first, 2)
	second := collect(&wi, "three")
	assert.Equal(t, []Word{{Text: "three", Start: 0, Length: 5}}, second)
}

func TestWordIteratorContractionToken(t *testing.T) {
	var wi WordIterator
	wi.Init(NewProfile("en-US", true))

	// mid-word punctuation between letters stays inside one token
	words := collect(&wi, "in'n'out")
	assert.Equal(t, []Word{{Text: "in'n'out", Start: 0, Length: 8}}, words)

	words = collect(&wi, "hello:hello")
	assert.Equal(t, []Word{{Text: "hello:hello", Start: 0, Length: 11}}, words)

	words = collect(&wi, "don't stop")
	assert.Equal(t, []Word{
		{Text: "don't", Start: 0, Length: 5},
		{Text: "stop", Start: 6, Length: 4},
	}, words)
}

func TestWordIteratorSubWords(t *testing.T) {
	var wi WordIterator
	wi.Init(NewProfile("en-US", false))

	words := collect(&wi, "in'n'out")
	assert.Equal(t, []Word{
		{Text: "in", Start: 0, Length: 2},
		{Text: "n", Start: 3, Length: 1},
		{Text: "out", Start: 5, Length: 3},
	}, words)

	words = collect(&wi, "hello:hello")
	assert.Equal(t, []Word{
		{Text: "hello", Start: 0, Length: 5},
		{Text: "hello", Start: 6, Length: 5},
	}, words)

	// zero sub-words is a valid outcome
	assert.Empty(t, collect(&wi, "'''"))
}

func TestWordIteratorFiltersScriptless(t *testing.T) {
	var wi WordIterator
	wi.Init(NewProfile("en-US", true))

	words := collect(&wi, "123 abc 456 ...")
	assert.Equal(t, []Word{{Text: "abc", Start: 4, Length: 3}}, words)

	assert.Empty(t, collect(&wi, "12.5% + $100"))
	assert.Empty(t, collect(&wi, ""))
}

func TestWordIteratorMultibyte(t *testing.T) {
	var wi WordIterator
	wi.Init(NewProfile("de-DE", true))

	words := collect(&wi, "héllo wörld")
	assert.Equal(t, []Word{
		{Text: "héllo", Start: 0, Length: 6},
		{Text: "wörld", Start: 7, Length: 6},
	}, words)
	for _, w := range words {
		assert.LessOrEqual(t, w.Start+w.Length, len("héllo wörld"))
	}
}

func TestWordIteratorUninitialized(t *testing.T) {
	var wi WordIterator
	wi.SetText("hello")
	_, ok := wi.Next()
	assert.False(t, ok)

	assert.False(t, wi.Init(nil))
	assert.False(t, wi.IsInitialized())
}

func TestWordIteratorInitOnce(t *testing.T) {
	var wi WordIterator
	p := NewProfile("en-US", true)
	assert.True(t, wi.Init(p))
	// re-init does not re-run locale setup or replace the profile
	assert.True(t, wi.Init(NewProfile("fr-FR", false)))
	assert.Same(t, p, wi.profile)
}

func TestNewProfileFallback(t *testing.T) {
	p := NewProfile("!!not a tag!!", true)
	assert.NotNil(t, p)
	var wi WordIterator
	assert.True(t, wi.Init(p))
	words := collect(&wi, "still works")
	assert.Len(t, words, 2)
}

func TestNewProfileTag(t *testing.T) {
	p := NewProfile("en-US", true)
	assert.Equal(t, "en-US", p.Tag.String())
	assert.True(t, p.AllowContraction)
	c := NewProfile("en-US", false)
	assert.False(t, c.AllowContraction)
}
