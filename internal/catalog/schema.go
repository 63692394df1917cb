package catalog

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/jsonschema-go/jsonschema"
)

// Schema returns the JSON Schema of the tool's arguments.
func (t Tool) Schema() *jsonschema.Schema {
	return objectSchema("", t.Params)
}

func objectSchema(description string, params []Param) *jsonschema.Schema {
	s := &jsonschema.Schema{
		Type:        "object",
		Description: description,
		Properties:  make(map[string]*jsonschema.Schema, len(params)),
	}
	for _, p := range params {
		s.Properties[p.Name] = paramSchema(p)
		if p.Required {
			s.Required = append(s.Required, p.Name)
		}
	}
	return s
}

func paramSchema(p Param) *jsonschema.Schema {
	if p.Type == "object" && len(p.Properties) > 0 {
		return objectSchema(p.Description, p.Properties)
	}

	s := &jsonschema.Schema{
		Type:        p.Type,
		Description: p.Description,
		Format:      p.Format,
		Minimum:     p.Min,
		Maximum:     p.Max,
	}
	for _, v := range p.Enum {
		s.Enum = append(s.Enum, v)
	}
	if p.Items != nil {
		s.Items = paramSchema(*p.Items)
	}
	return s
}

// formatTags maps Param.Format onto validator tags.
var formatTags = map[string]string{
	"email": "email",
	"url":   "url",
}

// checkFormats enforces Param.Format, which JSON Schema treats as an annotation.
func checkFormats(validate *validator.Validate, params []Param, args map[string]any, prefix string) error {
	for _, p := range params {
		value, ok := args[p.Name]
		if !ok || value == nil {
			continue
		}
		if err := checkFormat(validate, p, value, prefix+p.Name); err != nil {
			return err
		}
	}
	return nil
}

func checkFormat(validate *validator.Validate, p Param, value any, field string) error {
	if tag, ok := formatTags[p.Format]; ok {
		if s, isString := value.(string); isString {
			if err := validate.Var(s, tag); err != nil {
				return fmt.Errorf("%s must be a valid %s", field, p.Format)
			}
		}
	}

	switch v := value.(type) {
	case map[string]any:
		if len(p.Properties) > 0 {
			return checkFormats(validate, p.Properties, v, field+".")
		}
	case []any:
		if p.Items != nil {
			for i, item := range v {
				if err := checkFormat(validate, *p.Items, item, fmt.Sprintf("%s[%d]", field, i)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
