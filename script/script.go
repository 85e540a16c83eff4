// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package script classifies Unicode code points by whether they belong
// to a script that has word-boundary and spelling semantics. Punctuation,
// symbols, digits, and combining marks have the Common, Inherited, or
// Unknown script property and carry no spelling information; text made
// of only such characters never needs to reach a spelling checker.
package script

import (
	"unicode/utf8"

	"github.com/go-text/typesetting/language"
)

// IsWordBearing reports whether the given rune belongs to a script
// for which spelling and word boundaries are meaningful. Runes with
// the Common, Inherited, or Unknown script property are not word-bearing.
func IsWordBearing(r rune) bool {
	switch language.LookupScript(r) {
	case language.Common, language.Inherited, language.Unknown:
		return false
	}
	return true
}

// HasWordCharacters reports whether text contains any word-bearing rune
// at or after the given byte offset. Each code point is decoded in full,
// so multi-byte sequences are classified as single runes. Malformed bytes
// decode as utf8.RuneError, which is not word-bearing, and are skipped.
func HasWordCharacters(text string, from int) bool {
	if from < 0 {
		from = 0
	}
	for i := from; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if IsWordBearing(r) {
			return true
		}
		i += size
	}
	return false
}
