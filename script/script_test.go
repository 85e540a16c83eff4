// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsWordBearing(t *testing.T) {
	wordBearing := []rune{'a', 'Z', 'é', 'ß', 'я', 'α', 'ع', '日', 'ひ', '한'}
	for _, r := range wordBearing {
		assert.True(t, IsWordBearing(r), "rune %q", r)
	}
	scriptless := []rune{' ', '\t', '\n', '!', '.', ',', '\'', '"', '-',
		'0', '7', '$', '%', '+', '€',
		'\u0301', // combining acute: script Inherited
		'\u200d', // zero width joiner
	}
	for _, r := range scriptless {
		assert.False(t, IsWordBearing(r), "rune %q", r)
	}
}

func TestHasWordCharacters(t *testing.T) {
	tests := []struct {
		text string
		from int
		want bool
	}{
		{"", 0, false},
		{"hello", 0, true},
		{"...!!!", 0, false},
		{"123 456", 0, false},
		{"12.5% + $3", 0, false},
		{"...x", 0, true},
		{"...é", 0, true},
		{"日本語", 0, true},
		{"abc...", 3, false},
		{"...abc", 3, true},
		{"hello", 10, false},
		{"\xff\xfe", 0, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HasWordCharacters(tt.text, tt.from), "text %q from %d", tt.text, tt.from)
	}
}

func TestHasWordCharactersNegativeIndex(t *testing.T) {
	assert.True(t, HasWordCharacters("abc", -3))
	assert.False(t, HasWordCharacters("...", -1))
}
