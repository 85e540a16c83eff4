// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package segment splits Unicode text into checkable words according to
// a per-locale character attribute profile. The primary profile keeps
// contraction tokens (words joined by mid-word punctuation such as
// apostrophes) together as single words; the contraction profile treats
// all non-word-constituent characters as separators, so a contraction
// can be re-segmented into its component words.
package segment

import (
	"log/slog"

	locale "github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"
)

// Profile is the immutable character attribute configuration for one
// locale. It is created once at bridge construction from a BCP-47
// language tag and never mutated afterward.
type Profile struct {

	// Tag is the parsed language tag driving segmentation.
	Tag language.Tag

	// Script is the primary script of the tag.
	Script language.Script

	// AllowContraction keeps tokens joined by mid-word punctuation
	// (e.g. "in'n'out") together as a single word. When false, every
	// non-word-constituent rune is a separator.
	AllowContraction bool
}

// NewProfile returns a profile for the given BCP-47 language tag.
// It never fails: an empty or unparseable tag falls back to the system
// locale, and to the undetermined language as a last resort.
func NewProfile(lang string, allowContraction bool) *Profile {
	tag := parseTag(lang)
	scr, _ := tag.Script()
	return &Profile{Tag: tag, Script: scr, AllowContraction: allowContraction}
}

// parseTag parses the given language tag, falling back to the system
// locale and then to [language.Und].
func parseTag(lang string) language.Tag {
	if lang != "" {
		if tag, err := language.Parse(lang); err == nil {
			return tag
		}
		slog.Debug("segment: unparseable language tag; falling back to system locale", "tag", lang)
	}
	if sys, err := locale.GetLocale(); err == nil {
		if tag, err := language.Parse(sys); err == nil {
			return tag
		}
	}
	return language.Und
}
