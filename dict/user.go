// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dict

import (
	"os"
	"time"

	"cogentcore.org/spellbridge/base/errors"
)

// saveAfterLearnInterval is how long after the user dictionary was
// opened or saved that learning triggers an immediate save.
const saveAfterLearnInterval = 20 * time.Second

// modTime returns the modification time of the given file path.
func modTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

// OpenUser loads the user dictionary of learned words from the given
// file and merges it into the model. The file is remembered, so
// subsequent learning is persisted back to it. A missing file is not an
// error: it leaves an empty user dictionary to be saved later.
func (ck *Checker) OpenUser(path string) error {
	ck.UserFile = path
	ck.learnTime = time.Time{}
	d, err := OpenDict(path)
	if err != nil {
		ck.Model.SetDicts(ck.Model.Dict, make(Dict))
		return err
	}
	ck.openTime = errors.Log1(modTime(path))
	ck.Model.SetDicts(ck.Model.Dict, d)
	return nil
}

// OpenUserCheck re-opens the user dictionary if the file has been
// modified since it was last opened, e.g. by another running instance.
func (ck *Checker) OpenUserCheck() error {
	if ck.UserFile == "" {
		return nil
	}
	tm, err := modTime(ck.UserFile)
	if err != nil {
		return err
	}
	if tm.After(ck.openTime) {
		ck.OpenUser(ck.UserFile)
		ck.openTime = tm
	}
	return nil
}

// SaveUser saves the user dictionary to the file it was opened from.
// This overwrites the existing file; be sure to have opened the current
// file before making any changes.
func (ck *Checker) SaveUser() error {
	if ck.UserFile == "" {
		return nil
	}
	ck.learnTime = time.Time{}
	err := errors.Log(ck.Model.UserDict.Save(ck.UserFile))
	if err == nil {
		ck.openTime = errors.Log1(modTime(ck.UserFile))
	}
	return err
}

// SaveUserIfLearn saves the user dictionary if learning has occurred
// since the last save or open. If there are no changes it instead
// checks whether the file has been modified and re-opens it if so.
func (ck *Checker) SaveUserIfLearn() error {
	if ck == nil || ck.UserFile == "" {
		return nil
	}
	if ck.learnTime.IsZero() {
		return ck.OpenUserCheck()
	}
	return ck.SaveUser()
}
