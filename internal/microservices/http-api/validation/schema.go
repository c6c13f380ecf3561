// Package validation checks request payloads against per-resource field schemas
// and strips unrecognized fields before anything reaches the stores.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// Field describes one recognized payload key. A Positive field, when it is
// present and a number, must be at least 1.
type Field struct {
	Required bool
	Positive bool
}

// Schema maps payload keys to their field rules.
type Schema map[string]Field

// ValidationError lists every problem found in a payload.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid payload: " + strings.Join(e.Problems, "; ")
}

// RequiredFields returns the required keys in sorted order.
func (s Schema) RequiredFields() []string {
	out := make([]string, 0, len(s))
	for name, f := range s {
		if f.Required {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// constrained reports whether any field carries a rule beyond presence.
func (s Schema) constrained() bool {
	for _, f := range s {
		if f.Positive {
			return true
		}
	}
	return false
}

// document renders the schema as a JSON Schema object. A required key must be
// present and must not be null.
func (s Schema) document() map[string]any {
	required := s.RequiredFields()
	props := make(map[string]any, len(s))
	for name, f := range s {
		prop := map[string]any{}
		if f.Required {
			prop["not"] = map[string]any{"type": "null"}
		}
		if f.Positive {
			prop["minimum"] = 1
		}
		if len(prop) > 0 {
			props[name] = prop
		}
	}
	doc := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		doc["required"] = required
	}
	return doc
}

// Check reports a *ValidationError when some required key is missing or null,
// or a positive field holds a number below 1. Unknown keys are ignored.
func Check(payload map[string]any, s Schema) error {
	required := s.RequiredFields()
	if len(required) == 0 && !s.constrained() {
		return nil
	}
	if payload == nil {
		if len(required) == 0 {
			return nil
		}
		return &ValidationError{Problems: []string{"request body is empty"}}
	}

	res, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(s.document()),
		gojsonschema.NewGoLoader(payload),
	)
	if err != nil {
		return &ValidationError{Problems: []string{err.Error()}}
	}
	if res.Valid() {
		return nil
	}

	problems := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		problems = append(problems, e.String())
	}
	return &ValidationError{Problems: problems}
}

// Validate is true iff every required field of s is present in payload with a
// non-null value.
func Validate(payload map[string]any, s Schema) bool {
	return Check(payload, s) == nil
}

// Extract returns a new map with only the payload keys that s declares.
// Required-ness is not re-checked.
func Extract(payload map[string]any, s Schema) map[string]any {
	out := make(map[string]any, len(s))
	for name := range s {
		if v, ok := payload[name]; ok {
			out[name] = v
		}
	}
	return out
}

// Decode converts an extracted payload into its typed request struct.
func Decode[T any](fields map[string]any) (T, error) {
	var out T
	raw, err := json.Marshal(fields)
	if err != nil {
		return out, &ValidationError{Problems: []string{err.Error()}}
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, &ValidationError{Problems: []string{describeDecodeError(err)}}
	}
	return out, nil
}

func describeDecodeError(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type.String())
	}
	return err.Error()
}

var schemaCache sync.Map // reflect.Type -> Schema

// SchemaOf derives a Schema from the `schema` tags of struct T. The payload key
// is taken from the json tag. Fields without a schema tag are not part of it.
// A ",positive" suffix marks ids and other counts that must be at least 1.
//
//	type CreateRental struct {
//		GameID uint   `json:"gameID" schema:"required,positive"`
//		Notes  string `json:"notes" schema:"optional"`
//	}
func SchemaOf[T any]() Schema {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if cached, ok := schemaCache.Load(t); ok {
		return cached.(Schema)
	}
	if t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("validation: SchemaOf needs a struct, got %s", t))
	}

	s := Schema{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		rule, ok := f.Tag.Lookup("schema")
		if !ok {
			continue
		}
		name := strings.Split(f.Tag.Get("json"), ",")[0]
		if name == "" || name == "-" {
			name = f.Name
		}
		opts := strings.Split(rule, ",")
		field := Field{Required: opts[0] == "required"}
		for _, opt := range opts[1:] {
			if opt == "positive" {
				field.Positive = true
			}
		}
		s[name] = field
	}

	schemaCache.Store(t, s)
	return s
}
