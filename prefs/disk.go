// This file is part of Periphery.
//
// Periphery is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Periphery is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Periphery.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/periphery/curated"
)

// WarningBoilerPlate is written as the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand while the program is running ***"

// the separator between key and value in the preferences file
const keySep = " :: "

// Error patterns returned by the Disk type.
const (
	DiskError   = "prefs: %v"
	KeyExists   = "prefs: key already added (%s)"
	InvalidLine = "prefs: invalid line in %s (%d)"
)

// Disk represents preference values as stored on disk. Entries are added to
// the Disk instance with Add() and the values can then be saved with Save()
// or restored with Load().
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, curated.Errorf(DiskError, "no path for preferences file")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Path returns the path of the preferences file.
func (dsk *Disk) Path() string {
	return dsk.path
}

// Add preference value to the Disk instance under the key. Keys can only be
// added once.
func (dsk *Disk) Add(key string, p pref) error {
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(KeyExists, key)
	}
	dsk.entries[key] = p
	return nil
}

// reads the preferences file into a map of key/value strings. a missing file
// results in an empty map and no error
func (dsk *Disk) read() (map[string]string, error) {
	kv := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return kv, nil
		}
		return nil, curated.Errorf(DiskError, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// first line is the boilerplate warning
	scanner.Scan()

	line := 1
	for scanner.Scan() {
		line++
		s := scanner.Text()
		if strings.TrimSpace(s) == "" {
			continue
		}
		p := strings.SplitN(s, keySep, 2)
		if len(p) != 2 {
			return nil, curated.Errorf(InvalidLine, dsk.path, line)
		}
		kv[strings.TrimSpace(p[0])] = p[1]
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(DiskError, err)
	}

	return kv, nil
}

// Save current preference values to disk. Values in the preferences file that
// have not been added to this Disk instance are preserved.
func (dsk *Disk) Save() error {
	kv, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		kv[k] = p.String()
	}

	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, kv[k]))
	}

	if err := os.WriteFile(dsk.path, []byte(s.String()), 0o600); err != nil {
		return curated.Errorf(DiskError, err)
	}

	return nil
}

// Load preference values from disk. Values for keys in the command line stack
// override values from the file.
//
// If saveOnFail is true and the file cannot be read then the current values
// are saved to disk, creating a new preferences file.
func (dsk *Disk) Load(saveOnFail bool) error {
	kv, err := dsk.read()
	if err != nil {
		if saveOnFail {
			return dsk.Save()
		}
		return err
	}

	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			kv[k] = v
		}
		if v, ok := kv[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(DiskError, err)
			}
		}
	}

	return nil
}

// Reset all values added to the Disk instance to their zero value.
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return err
		}
	}
	return nil
}
