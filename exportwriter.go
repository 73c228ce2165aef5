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
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Saves export documents into a directory.
// Every document gets its own file, named after the time it got written.
type exportWriter struct {
	Directory string
}

func newExportWriter(directory string) *exportWriter {
	return &exportWriter{
		Directory: directory,
	}
}

// Writes the document and returns the path of the new file.
func (ew *exportWriter) write(doc *exportDocument) (string, error) {
	if err := os.MkdirAll(ew.Directory, 0777); err != nil {
		return "", fmt.Errorf("Can't create directory %v: %v", ew.Directory, err)
	}

	name := sanitizeFileName(doc.FileName)
	prefix := time.Now().UTC().Format("2006-01-02T150405") // Use RFC3339 like encoding, but with : removed

	// Don't overwrite documents exported within the same second
	filePath := filepath.Join(ew.Directory, prefix+"-"+name)
	for i := 1; ; i++ {
		f, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0666)
		if os.IsExist(err) {
			filePath = filepath.Join(ew.Directory, fmt.Sprintf("%v-%v-%v", prefix, i, name))
			continue
		}
		if err != nil {
			return "", fmt.Errorf("Can't create file %v: %v", filePath, err)
		}

		if _, err := f.Write(doc.Data); err != nil {
			f.Close()
			return "", fmt.Errorf("Can't write to file %v: %v", filePath, err)
		}
		if err := f.Close(); err != nil {
			return "", fmt.Errorf("Can't close file %v: %v", filePath, err)
		}

		return filePath, nil
	}
}
