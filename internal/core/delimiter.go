package core

import (
	"fmt"
	"strings"
)

// Delimiter is a single character used to split a line into field values.
type Delimiter struct {
	Name string
	Char string
}

func (d Delimiter) String() string {
	return d.Name
}

var (
	Tab          = Delimiter{Name: "Tab", Char: "\t"}
	Comma        = Delimiter{Name: "Comma", Char: ","}
	Semicolon    = Delimiter{Name: "Semicolon", Char: ";"}
	Colon        = Delimiter{Name: "Colon", Char: ":"}
	QuestionMark = Delimiter{Name: "QuestionMark", Char: "?"}
	Slash        = Delimiter{Name: "Slash", Char: "/"}
	Exclamation  = Delimiter{Name: "Exclamation", Char: "!"}
	Pipe         = Delimiter{Name: "Pipe", Char: "|"}
)

// Delimiters lists all supported delimiters in checklist order.
// The order defines the priority when a line contains several enabled delimiters.
var Delimiters = []Delimiter{Tab, Comma, Semicolon, Colon, QuestionMark, Slash, Exclamation, Pipe}

// LookupDelimiter finds a delimiter by name (case-insensitive) or by character.
func LookupDelimiter(nameOrChar string) (Delimiter, bool) {
	if nameOrChar == `\t` {
		return Tab, true
	}
	for _, delimiter := range Delimiters {
		if strings.EqualFold(delimiter.Name, nameOrChar) || delimiter.Char == nameOrChar {
			return delimiter, true
		}
	}
	return Delimiter{}, false
}

// DelimiterSet keeps the on/off state of every delimiter.
type DelimiterSet struct {
	enabled map[string]bool
}

// NewDelimiterSet creates a set where only the given delimiters are enabled.
func NewDelimiterSet(names ...string) (*DelimiterSet, error) {
	s := &DelimiterSet{
		enabled: make(map[string]bool),
	}
	for _, name := range names {
		if err := s.Enable(name); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// ParseDelimiterSet parses a comma-separated list of delimiter names.
// Ex: "Tab,Semicolon"
func ParseDelimiterSet(value string) (*DelimiterSet, error) {
	var names []string
	for _, name := range strings.Split(value, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			names = append(names, name)
		}
	}
	return NewDelimiterSet(names...)
}

func (s *DelimiterSet) Enable(nameOrChar string) error {
	delimiter, ok := LookupDelimiter(nameOrChar)
	if !ok {
		return fmt.Errorf("unknown delimiter %q", nameOrChar)
	}
	s.enabled[delimiter.Name] = true
	return nil
}

func (s *DelimiterSet) Disable(nameOrChar string) error {
	delimiter, ok := LookupDelimiter(nameOrChar)
	if !ok {
		return fmt.Errorf("unknown delimiter %q", nameOrChar)
	}
	delete(s.enabled, delimiter.Name)
	return nil
}

func (s *DelimiterSet) IsEnabled(delimiter Delimiter) bool {
	return s.enabled[delimiter.Name]
}

// Enabled returns the enabled delimiters in checklist order.
func (s *DelimiterSet) Enabled() []Delimiter {
	var result []Delimiter
	for _, delimiter := range Delimiters {
		if s.enabled[delimiter.Name] {
			result = append(result, delimiter)
		}
	}
	return result
}

// States returns the state of every delimiter indexed by name.
func (s *DelimiterSet) States() map[string]bool {
	result := make(map[string]bool)
	for _, delimiter := range Delimiters {
		result[delimiter.Name] = s.enabled[delimiter.Name]
	}
	return result
}

func (s *DelimiterSet) String() string {
	var names []string
	for _, delimiter := range s.Enabled() {
		names = append(names, delimiter.Name)
	}
	return strings.Join(names, ",")
}
