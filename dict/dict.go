// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dict is a dictionary-backed reference implementation of the
// spelling provider capability that [cogentcore.org/spellbridge/spell]
// probes for. It answers single-word queries from a word list, suggests
// corrections using a deletion-edit index, and checks whole text blocks
// with the same segmentation the bridge uses.
package dict

import (
	"bufio"
	"io/fs"
	"os"
	"sort"
	"strings"
)

// Dict is a set of known words, all lowercase.
type Dict map[string]struct{}

// NewDict returns a dictionary containing the given words, lowercased.
func NewDict(words ...string) Dict {
	d := make(Dict, len(words))
	for _, w := range words {
		d.Add(w)
	}
	return d
}

// Add adds the given word to the dictionary, lowercased.
func (d Dict) Add(word string) {
	d[strings.ToLower(word)] = struct{}{}
}

// Exists reports whether the given word is in the dictionary.
// The word must already be lowercase.
func (d Dict) Exists(word string) bool {
	_, ok := d[word]
	return ok
}

// List returns the words in the dictionary, in no particular order.
func (d Dict) List() []string {
	wl := make([]string, 0, len(d))
	for w := range d {
		wl = append(wl, w)
	}
	return wl
}

// Save writes the dictionary to the given file, one word per line,
// sorted, so saved dictionaries diff cleanly.
func (d Dict) Save(path string) error {
	wl := d.List()
	sort.Strings(wl)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	for _, wrd := range wl {
		w.WriteString(wrd)
		w.WriteByte('\n')
	}
	return w.Flush()
}

// OpenDict opens a dictionary from the given file, one word per line.
func OpenDict(path string) (Dict, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readDict(f)
}

// OpenDictFS opens a dictionary from the given filesystem,
// e.g. an embed.FS.
func OpenDictFS(fsys fs.FS, path string) (Dict, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readDict(f)
}

func readDict(f fs.File) (Dict, error) {
	d := make(Dict)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" {
			continue
		}
		d.Add(w)
	}
	return d, sc.Err()
}
