// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package schema declares, per section type, the shape of valid section
// content: required and optional fields, enum variants, array cardinality
// bounds, and defaults. The registry is built once at startup and is
// read-only afterwards; Validate is a pure function.
package schema

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"pagecraft/internal/models"
)

// Kind is the structural type of a content field.
type Kind string

const (
	KindString Kind = "string"
	KindBool   Kind = "bool"
	KindInt    Kind = "int"
	KindEnum   Kind = "enum"
	KindObject Kind = "object"
	KindArray  Kind = "array"
)

// Field describes one content field. Object fields nest via Fields; array
// fields describe their element shape via Elem plus MinItems/MaxItems bounds.
type Field struct {
	Name     string
	Kind     Kind
	Required bool
	Default  any      // starter value; also fills the field when optional and absent
	Enum     []string // KindEnum only
	MinItems int      // KindArray only
	MaxItems int      // KindArray only
	Fields   []Field  // KindObject only
	Elem     *Field   // KindArray only; Elem.Name is ignored
	MaxLen   int      // KindString/KindEnum; 0 means unbounded
}

// Schema is the closed content shape for one section type. Unknown keys are
// rejected: AI-generated content may not smuggle extra structure past the
// registry.
type Schema struct {
	Type   models.SectionType
	Fields []Field
}

// Issue is a single validation failure with the path of the offending field.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationError collects every issue found in one pass. Callers get a
// single diagnostic for partially malformed AI output instead of a
// first-failure abort.
type ValidationError struct {
	Type   models.SectionType `json:"type"`
	Issues []Issue            `json:"issues"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, iss := range e.Issues {
		parts[i] = iss.Path + ": " + iss.Message
	}
	return fmt.Sprintf("content for %q is invalid: %s", e.Type, strings.Join(parts, "; "))
}

// Get returns the content schema for a section type.
func Get(t models.SectionType) (Schema, bool) {
	s, ok := catalog[t]
	return s, ok
}

// IsValidType reports whether name is a known section type.
func IsValidType(name string) bool {
	return models.SectionType(name).IsValid()
}

// Validate checks content against the schema for t and returns a normalized
// deep copy: optional fields are filled from their declared defaults so
// renderers never branch on missing keys. On failure it returns a
// *ValidationError enumerating every offending field. The input is never
// mutated.
func Validate(t models.SectionType, content map[string]any) (map[string]any, error) {
	s, ok := catalog[t]
	if !ok {
		return nil, &ValidationError{Type: t, Issues: []Issue{{Path: "", Message: "unknown section type"}}}
	}

	verr := &ValidationError{Type: t}
	out := validateObject(s.Fields, content, "", verr)
	if len(verr.Issues) > 0 {
		return nil, verr
	}
	return out, nil
}

// DefaultsFor returns a complete content object built from the declared
// defaults for t. The result always passes Validate and is used as the
// starter content when a section is added to a page.
func DefaultsFor(t models.SectionType) map[string]any {
	s, ok := catalog[t]
	if !ok {
		return nil
	}
	return defaultsForFields(s.Fields)
}

func defaultsForFields(fields []Field) map[string]any {
	out := make(map[string]any, len(fields))
	for _, f := range fields {
		out[f.Name] = defaultValue(f)
	}
	return out
}

func defaultValue(f Field) any {
	if f.Default != nil {
		return deepCopy(f.Default)
	}
	switch f.Kind {
	case KindString:
		return ""
	case KindBool:
		return false
	case KindInt:
		return 0
	case KindEnum:
		if len(f.Enum) > 0 {
			return f.Enum[0]
		}
		return ""
	case KindObject:
		return defaultsForFields(f.Fields)
	case KindArray:
		items := make([]any, 0, f.MinItems)
		for i := 0; i < f.MinItems; i++ {
			items = append(items, defaultValue(*f.Elem))
		}
		return items
	}
	return nil
}

// validateObject walks an object against its field specs, collecting issues
// and building the normalized copy as it goes.
func validateObject(fields []Field, raw map[string]any, path string, verr *ValidationError) map[string]any {
	out := make(map[string]any, len(fields))

	known := make(map[string]bool, len(fields))
	for _, f := range fields {
		known[f.Name] = true
	}

	// Closed schemas: report extra keys deterministically.
	var extras []string
	for k := range raw {
		if !known[k] {
			extras = append(extras, k)
		}
	}
	sort.Strings(extras)
	for _, k := range extras {
		verr.Issues = append(verr.Issues, Issue{Path: joinPath(path, k), Message: "unknown field"})
	}

	for _, f := range fields {
		fp := joinPath(path, f.Name)
		v, present := raw[f.Name]
		if !present || v == nil {
			if f.Required {
				verr.Issues = append(verr.Issues, Issue{Path: fp, Message: "required field is missing"})
				continue
			}
			out[f.Name] = defaultValue(f)
			continue
		}
		if nv, ok := validateValue(f, v, fp, verr); ok {
			out[f.Name] = nv
		}
	}
	return out
}

func validateValue(f Field, v any, path string, verr *ValidationError) (any, bool) {
	fail := func(msg string) (any, bool) {
		verr.Issues = append(verr.Issues, Issue{Path: path, Message: msg})
		return nil, false
	}

	switch f.Kind {
	case KindString:
		s, ok := v.(string)
		if !ok {
			return fail(fmt.Sprintf("expected a string, got %s", typeName(v)))
		}
		if f.MaxLen > 0 && len(s) > f.MaxLen {
			return fail(fmt.Sprintf("too long (max %d characters)", f.MaxLen))
		}
		return s, true

	case KindBool:
		b, ok := v.(bool)
		if !ok {
			return fail(fmt.Sprintf("expected a boolean, got %s", typeName(v)))
		}
		return b, true

	case KindInt:
		n, ok := asInt(v)
		if !ok {
			return fail(fmt.Sprintf("expected an integer, got %s", typeName(v)))
		}
		return n, true

	case KindEnum:
		s, ok := v.(string)
		if !ok {
			return fail(fmt.Sprintf("expected a string, got %s", typeName(v)))
		}
		for _, allowed := range f.Enum {
			if s == allowed {
				return s, true
			}
		}
		return fail(fmt.Sprintf("must be one of: %s", strings.Join(f.Enum, ", ")))

	case KindObject:
		m, ok := v.(map[string]any)
		if !ok {
			return fail(fmt.Sprintf("expected an object, got %s", typeName(v)))
		}
		before := len(verr.Issues)
		nv := validateObject(f.Fields, m, path, verr)
		return nv, len(verr.Issues) == before

	case KindArray:
		items, ok := asSlice(v)
		if !ok {
			return fail(fmt.Sprintf("expected an array, got %s", typeName(v)))
		}
		if len(items) < f.MinItems {
			return fail(fmt.Sprintf("needs at least %d items, has %d", f.MinItems, len(items)))
		}
		if f.MaxItems > 0 && len(items) > f.MaxItems {
			return fail(fmt.Sprintf("allows at most %d items, has %d", f.MaxItems, len(items)))
		}
		out := make([]any, 0, len(items))
		okAll := true
		for i, item := range items {
			nv, itemOK := validateValue(*f.Elem, item, fmt.Sprintf("%s[%d]", path, i), verr)
			if itemOK {
				out = append(out, nv)
			} else {
				okAll = false
			}
		}
		return out, okAll
	}

	return fail("unsupported field kind")
}

// Describe renders a plain-text description of the schema for t, suitable for
// embedding in LLM prompts. It enumerates each field with its type, whether
// it is required, enum variants, and array bounds.
func Describe(t models.SectionType) string {
	s, ok := catalog[t]
	if !ok {
		return ""
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Content schema for a %q section (all fields listed; no other fields are allowed):\n", t)
	describeFields(&sb, s.Fields, 0)
	return sb.String()
}

func describeFields(sb *strings.Builder, fields []Field, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, f := range fields {
		req := "optional"
		if f.Required {
			req = "required"
		}
		switch f.Kind {
		case KindEnum:
			fmt.Fprintf(sb, "%s- %s (%s, one of: %s)\n", indent, f.Name, req, strings.Join(f.Enum, " | "))
		case KindObject:
			fmt.Fprintf(sb, "%s- %s (%s object):\n", indent, f.Name, req)
			describeFields(sb, f.Fields, depth+1)
		case KindArray:
			bounds := fmt.Sprintf("%d-%d", f.MinItems, f.MaxItems)
			if f.MaxItems == 0 {
				bounds = fmt.Sprintf("at least %d", f.MinItems)
			}
			switch f.Elem.Kind {
			case KindObject:
				fmt.Fprintf(sb, "%s- %s (%s array, %s items, each item is an object):\n", indent, f.Name, req, bounds)
				describeFields(sb, f.Elem.Fields, depth+1)
			default:
				fmt.Fprintf(sb, "%s- %s (%s array of %s, %s items)\n", indent, f.Name, req, f.Elem.Kind, bounds)
			}
		default:
			fmt.Fprintf(sb, "%s- %s (%s %s)\n", indent, f.Name, req, f.Kind)
		}
	}
}

// --- helpers ---

func joinPath(base, name string) string {
	if base == "" {
		return name
	}
	return base + "." + name
}

func typeName(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, int, int64:
		return "number"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case nil:
		return "null"
	}
	return fmt.Sprintf("%T", v)
}

// asInt accepts both native ints and JSON-decoded float64 values that are
// integral.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n == math.Trunc(n) {
			return int(n), true
		}
	}
	return 0, false
}

// asSlice accepts []any plus the typed slices produced by DefaultsFor.
func asSlice(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case []map[string]any:
		out := make([]any, len(s))
		for i, m := range s {
			out[i] = m
		}
		return out, true
	case []string:
		out := make([]any, len(s))
		for i, str := range s {
			out[i] = str
		}
		return out, true
	}
	return nil, false
}

func deepCopy(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = deepCopy(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = deepCopy(val)
		}
		return out
	case []map[string]any:
		out := make([]any, len(t))
		for i, m := range t {
			out[i] = deepCopy(m)
		}
		return out
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out
	}
	return v
}
