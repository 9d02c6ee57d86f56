// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bench

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/ajroetker/go-experiments/arraygen"
)

// ErrMalformedRecord is returned by ReadRecords for lines it cannot parse.
var ErrMalformedRecord = errors.New("bench: malformed record")

// Writer writes records as "<length> <mode> <shape> <microseconds>" lines.
type Writer struct {
	w *bufio.Writer
}

// NewWriter buffers output to w. Call Flush when done.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Write emits one record.
func (w *Writer) Write(r Record) error {
	_, err := fmt.Fprintf(w.w, "%d %s %d\n", r.Length, r.Tag(), r.Elapsed.Microseconds())
	return err
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// ReadRecords parses the output of Writer. Blank lines are skipped.
func ReadRecords(r io.Reader) ([]Record, error) {
	var records []Record
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		rec, err := parseRecord(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func parseRecord(text string) (Record, error) {
	fields := strings.Fields(text)
	if len(fields) != 4 {
		return Record{}, fmt.Errorf("%w: want 4 fields, got %d in %q", ErrMalformedRecord, len(fields), text)
	}
	length, err := strconv.Atoi(fields[0])
	if err != nil || length < 0 {
		return Record{}, fmt.Errorf("%w: bad length %q", ErrMalformedRecord, fields[0])
	}
	shape, err := arraygen.ParseShape(fields[2])
	if err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	micros, err := strconv.ParseInt(fields[3], 10, 64)
	if err != nil || micros < 0 {
		return Record{}, fmt.Errorf("%w: bad duration %q", ErrMalformedRecord, fields[3])
	}
	return Record{
		Length:  length,
		Mode:    fields[1],
		Shape:   shape,
		Elapsed: time.Duration(micros) * time.Microsecond,
	}, nil
}
