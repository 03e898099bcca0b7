package core

import (
	"bytes"
	"html/template"
	"log"

	"github.com/julien-sobczak/nt-bulk/pkg/text"
)

// PreviewField is a field name with its value.
type PreviewField struct {
	Name  string
	Value string
}

// PreviewCard represents the note a single line would produce.
type PreviewCard struct {
	// 0-based index of the line
	Line   int
	Fields []PreviewField
	Tags   []string
}

// Preview returns the card for the line at the given index or nil when the line
// would not produce any note.
//
// Unlike Build, the card number used for numbered tags is the line number as
// only the current line is considered.
func Preview(lines []string, index int, schema []string, tagLines []string, delimiters []Delimiter, numbered bool) *PreviewCard {
	if index < 0 || index >= len(lines) {
		return nil
	}
	line := lines[index]
	if text.IsBlank(line) {
		return nil
	}
	fields, ok := ParseLine(line, delimiters)
	if !ok {
		return nil
	}

	card := &PreviewCard{
		Line: index,
		Tags: TagsForLine(tagLines, index),
	}
	if numbered {
		card.Tags = NumberTags(card.Tags, index)
	}
	// Only fields with a value are shown
	for j, value := range fields {
		if j >= len(schema) {
			break
		}
		card.Fields = append(card.Fields, PreviewField{
			Name:  schema[j],
			Value: value,
		})
	}
	return card
}

var previewTemplate = template.Must(template.New("preview").Funcs(template.FuncMap{
	// Field values are HTML written by the user
	"raw": func(s string) template.HTML { return template.HTML(s) },
	"tags": FormatTagLine,
}).Parse(`<html><body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 10px;">
<table style="width: 100%; border-collapse: separate; border-spacing: 0; box-shadow: 0 4px 8px rgba(0,0,0,0.1); border-radius: 8px; margin-bottom: 20px;">
{{- range .Fields }}
<tr><td style="background-color: #444; color: white; padding: 12px; text-align: center; font-weight: bold; font-size: 16px;">{{ .Name }}</td></tr>
<tr><td style="padding: 15px; border: 1px solid #ddd; background-color: white;">{{ raw .Value }}</td></tr>
{{- end }}
</table>
{{- if .Tags }}
<p><b>Tags:</b> {{ tags .Tags }}</p>
{{- end }}
</body></html>
`))

// HTML renders the card as a standalone HTML page.
func (c *PreviewCard) HTML() string {
	var buf bytes.Buffer
	if err := previewTemplate.Execute(&buf, c); err != nil {
		log.Fatal(err)
	}
	return buf.String()
}
