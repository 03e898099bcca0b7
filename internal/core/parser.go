package core

import (
	"strings"
)

// FieldSequence is the ordered list of values extracted from a single line.
type FieldSequence []string

// ParseLine splits a line using the first enabled delimiter present in the line.
//
// Delimiters are tried in the given order, not by position in the text. When a
// line contains several enabled delimiters, only the first one in the list is
// used and the others remain as literal characters inside the fields.
//
// There is no escaping. A delimiter present inside a field (ex: a ":" inside an
// HTML attribute) splits the field too.
func ParseLine(line string, enabled []Delimiter) (FieldSequence, bool) {
	for _, delimiter := range enabled {
		if delimiter.Char == "" || !strings.Contains(line, delimiter.Char) {
			continue
		}
		parts := strings.Split(line, delimiter.Char)
		fields := make(FieldSequence, len(parts))
		for i, part := range parts {
			fields[i] = strings.TrimSpace(part)
		}
		return fields, true
	}
	return nil, false
}

// Parse splits a line using the enabled delimiters of the set.
// ErrNoMatchingDelimiter is returned when none is present.
func (s *DelimiterSet) Parse(line string) (FieldSequence, error) {
	fields, ok := ParseLine(line, s.Enabled())
	if !ok {
		return nil, ErrNoMatchingDelimiter
	}
	return fields, nil
}
