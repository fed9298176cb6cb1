// Package recordio reads and writes record collections as JSON lines: one
// JSON object per line, no header. Field values are escaped by the JSON
// encoder, so text containing the separator, quotes or newlines is safe.
package recordio

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrMalformedRecord reports a line that does not decode into a record. The
// format has no versioning, so callers treat it as unrecoverable.
var ErrMalformedRecord = errors.New("malformed record")

// ErrRecordTooLarge reports a record whose encoded line would exceed
// MaxLineSize and so could not be read back.
var ErrRecordTooLarge = errors.New("record too large")

// MaxLineSize bounds a single record line, newline included, for both Encode
// and Decode.
const MaxLineSize = 1 << 20

// Decode reads every record from r in order. Blank lines are skipped. Unknown
// fields are rejected so that a file of the wrong kind fails loudly.
func Decode[T any](r io.Reader) ([]T, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

	records := make([]T, 0)
	line := 0
	for sc.Scan() {
		line++
		raw := bytes.TrimSpace(sc.Bytes())
		if len(raw) == 0 {
			continue
		}

		var rec T
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&rec); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedRecord, line, err)
		}
		if dec.More() {
			return nil, fmt.Errorf("%w: line %d: trailing data", ErrMalformedRecord, line)
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("%w: line %d: longer than %d bytes", ErrMalformedRecord, line+1, MaxLineSize)
		}
		return nil, fmt.Errorf("read records: %w", err)
	}
	return records, nil
}

// Encode writes records to w, one line each, in the given order. Every record
// is encoded before anything is written, so a record that is too large leaves
// w untouched.
func Encode[T any](w io.Writer, records []T) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	for i, rec := range records {
		start := buf.Len()
		// Encoder.Encode terminates each value with '\n'
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("encode record %d: %w", i, err)
		}
		if n := buf.Len() - start; n > MaxLineSize {
			return fmt.Errorf("%w: record %d is %d bytes, limit %d", ErrRecordTooLarge, i, n, MaxLineSize)
		}
	}
	_, err := buf.WriteTo(w)
	return err
}
