// seehuhn.de/go/patterns - synthetic pattern datasets
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"slices"
	"strconv"

	"seehuhn.de/go/patterns/raster"
)

// ErrRecord is returned for malformed lines in a dataset file.
var ErrRecord = errors.New("malformed dataset record")

// Labels assigns consecutive integer IDs to shape names, in order of
// first appearance. The zero value is ready to use.
type Labels struct {
	ids   map[string]int
	names []string
}

// ID returns the ID of name, assigning a new ID if needed.
func (l *Labels) ID(name string) int {
	if id, ok := l.ids[name]; ok {
		return id
	}
	if l.ids == nil {
		l.ids = make(map[string]int)
	}
	id := len(l.names)
	l.ids[name] = id
	l.names = append(l.names, name)
	return id
}

// Lookup returns the ID of name, if one has been assigned.
func (l *Labels) Lookup(name string) (int, bool) {
	id, ok := l.ids[name]
	return id, ok
}

// Name returns the name for an ID, or the empty string for unknown IDs.
func (l *Labels) Name(id int) string {
	if id < 0 || id >= len(l.names) {
		return ""
	}
	return l.names[id]
}

// Len returns the number of known labels.
func (l *Labels) Len() int {
	return len(l.names)
}

// Names returns all known names, ordered by ID.
func (l *Labels) Names() []string {
	return slices.Clone(l.names)
}

// Record is one image of a dataset.
type Record struct {
	Label int // ID from the Labels used when reading
	Name  string
	Grid  *raster.Grid
}

// ReadRecords iterates over the records of a dataset file, as written by
// [Generator.Run]. Shape names are mapped to IDs using labels.
// Iteration stops after the first error.
func ReadRecords(r io.Reader, labels *Labels) iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		cr := csv.NewReader(r)
		cr.FieldsPerRecord = 4
		cr.ReuseRecord = true
		for {
			fields, err := cr.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(Record{}, fmt.Errorf("%w: %w", ErrRecord, err))
				return
			}
			line, _ := cr.FieldPos(0)

			rec, err := parseRecord(fields, labels)
			if err != nil {
				yield(Record{}, fmt.Errorf("line %d: %w", line, err))
				return
			}
			if !yield(rec, nil) {
				return
			}
		}
	}
}

func parseRecord(fields []string, labels *Labels) (Record, error) {
	name := fields[0]
	if name == "" {
		return Record{}, fmt.Errorf("%w: empty label", ErrRecord)
	}
	height, err := strconv.Atoi(fields[1])
	if err != nil {
		return Record{}, fmt.Errorf("%w: height: %w", ErrRecord, err)
	}
	width, err := strconv.Atoi(fields[2])
	if err != nil {
		return Record{}, fmt.Errorf("%w: width: %w", ErrRecord, err)
	}
	grid, err := raster.ParseBits(height, width, fields[3])
	if err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrRecord, err)
	}
	return Record{
		Label: labels.ID(name),
		Name:  name,
		Grid:  grid,
	}, nil
}
