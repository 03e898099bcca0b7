package core

import (
	"bytes"
	"encoding/json"
	"log"
	"strconv"

	"gopkg.in/yaml.v3"
)

// NoteDraft is a note ready to be sent to the note store.
type NoteDraft struct {
	// Field names of the note type in schema order
	FieldNames []string `yaml:"-" json:"-"`

	// Values indexed by field name. Every field of the note type is present.
	Fields map[string]string `yaml:"-" json:"fields"`

	// List of tags in source order
	Tags []string `yaml:"tags" json:"tags"`
}

// Assemble maps the parsed values on the fields of a note type.
//
// Values are consumed by position. Fields without a value are left empty and
// values without a field are discarded. When numbered is set, every tag gets
// the 1-based card index appended (ex: "chapter" => "chapter3").
func Assemble(fields FieldSequence, schema []string, tags []string, numbered bool, cardIndex int) *NoteDraft {
	draft := &NoteDraft{
		FieldNames: append([]string{}, schema...),
		Fields:     make(map[string]string, len(schema)),
		Tags:       []string{},
	}
	for i, name := range schema {
		if i < len(fields) {
			draft.Fields[name] = fields[i]
		} else {
			draft.Fields[name] = ""
		}
	}
	if numbered {
		draft.Tags = NumberTags(tags, cardIndex)
	} else {
		draft.Tags = append(draft.Tags, tags...)
	}
	return draft
}

// Values returns the field values in schema order.
func (d *NoteDraft) Values() []string {
	var result []string
	for _, name := range d.FieldNames {
		result = append(result, d.Fields[name])
	}
	return result
}

// Map applies a function on every field value.
func (d *NoteDraft) Map(fn func(value string) string) {
	for name, value := range d.Fields {
		d.Fields[name] = fn(value)
	}
}

/* Format */

// MarshalYAML preserves the field order of the note type.
func (d *NoteDraft) MarshalYAML() (any, error) {
	fields := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range d.FieldNames {
		fields.Content = append(fields.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: d.Fields[name]},
		)
	}
	return struct {
		Fields *yaml.Node `yaml:"fields"`
		Tags   []string   `yaml:"tags"`
	}{
		Fields: fields,
		Tags:   d.Tags,
	}, nil
}

func (d *NoteDraft) ToYAML() string {
	var buf bytes.Buffer
	bufEncoder := yaml.NewEncoder(&buf)
	bufEncoder.SetIndent(2)
	err := bufEncoder.Encode(d)
	if err != nil {
		log.Fatal(err)
	}
	return buf.String()
}

func (d *NoteDraft) ToJSON() string {
	output, err := json.MarshalIndent(d, "", " ")
	if err != nil {
		log.Fatal(err)
	}
	return string(output)
}

// NumberTags appends the 1-based card index to every tag.
func NumberTags(tags []string, cardIndex int) []string {
	suffix := strconv.Itoa(cardIndex + 1)
	result := make([]string, 0, len(tags))
	for _, tag := range tags {
		result = append(result, tag+suffix)
	}
	return result
}
