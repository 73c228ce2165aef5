/*  D3pixelpaint - Minimal pixel art editor with SVG export
    Copyright (C) 2019  David Vogel

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.  */

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func Test_openLogFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "log")

	f, err := openLogFile(dir, time.Date(2019, 6, 1, 12, 30, 15, 0, time.UTC))
	if err != nil {
		t.Fatalf("openLogFile() failed: %v", err)
	}
	f.Close()

	if want := filepath.Join(dir, "2019-06-01T123015.log"); f.Name() != want {
		t.Errorf("Log file is %q, want %q", f.Name(), want)
	}

	// A file in place of the directory
	blocked := filepath.Join(t.TempDir(), "blocked")
	if err := os.WriteFile(blocked, nil, 0666); err != nil {
		t.Fatal(err)
	}
	if f, err := openLogFile(blocked, time.Now()); err == nil {
		f.Close()
		t.Errorf("openLogFile(%q) succeeded, want an error", blocked)
	}
}
