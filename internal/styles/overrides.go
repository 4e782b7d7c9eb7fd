// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package styles implements the style-override model: presentation patches
// addressed by selector paths, merged class-by-class on top of template
// defaults. Overrides never touch section content.
package styles

import (
	"fmt"
	"sort"

	"pagecraft/internal/models"
)

// Result is the outcome of validating an override patch. Warnings do not make
// the patch invalid — an override at an undeclared selector is inert at render
// time — but they are surfaced so model hallucination is caught early instead
// of silently dropped.
type Result struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// Decode converts an untrusted JSON value (as produced by an LLM response)
// into a StyleOverrides struct, enforcing the structural rules: "section"
// must be a string, "elements" must be a string-to-string map. Values typed
// as numbers, objects or arrays are rejected.
func Decode(raw any) (*models.StyleOverrides, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("styleOverrides must be an object, got %s", typeName(raw))
	}

	o := &models.StyleOverrides{}
	for k, v := range m {
		switch k {
		case "section":
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("styleOverrides.section must be a string, got %s", typeName(v))
			}
			o.Section = s
		case "elements":
			elems, ok := v.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("styleOverrides.elements must be an object, got %s", typeName(v))
			}
			o.Elements = make(map[string]string, len(elems))
			for sel, val := range elems {
				s, ok := val.(string)
				if !ok {
					return nil, fmt.Errorf("styleOverrides.elements[%q] must be a string, got %s", sel, typeName(val))
				}
				o.Elements[sel] = s
			}
		default:
			return nil, fmt.Errorf("styleOverrides has unknown field %q", k)
		}
	}
	return o, nil
}

// Validate checks an override patch for section type t. A patch that
// describes no change at all (no section classes and no elements) is invalid:
// it guards against AI responses that "succeed" without proposing anything.
// Selectors outside the declared vocabulary produce warnings, not errors.
func Validate(o *models.StyleOverrides, t models.SectionType) Result {
	var res Result

	if o.IsZero() {
		res.Errors = append(res.Errors, "override patch is empty: at least one of section or elements must be set")
		return res
	}

	// Deterministic order for error output.
	selectors := make([]string, 0, len(o.Elements))
	for sel := range o.Elements {
		selectors = append(selectors, sel)
	}
	sort.Strings(selectors)

	for _, raw := range selectors {
		if o.Elements[raw] == "" {
			res.Errors = append(res.Errors, fmt.Sprintf("selector %q has an empty class value", raw))
			continue
		}
		sel, err := ParseSelector(raw)
		if err != nil {
			res.Errors = append(res.Errors, err.Error())
			continue
		}
		if !KnownSelector(t, sel) {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("selector %q is not declared for %q sections and will have no effect", raw, t))
		}
	}

	res.Valid = len(res.Errors) == 0
	return res
}

// Merge layers an incoming override patch on top of an existing one. Per
// selector, the incoming classes are merged into the existing classes with
// MergeClasses, so an AI patch extends prior manual edits instead of
// replacing them wholesale. Neither input is mutated.
func Merge(existing, incoming *models.StyleOverrides) *models.StyleOverrides {
	if incoming.IsZero() {
		return existing.Clone()
	}
	if existing.IsZero() {
		return incoming.Clone()
	}

	out := existing.Clone()
	if incoming.Section != "" {
		out.Section = MergeClasses(out.Section, incoming.Section)
	}
	if len(incoming.Elements) > 0 {
		if out.Elements == nil {
			out.Elements = make(map[string]string, len(incoming.Elements))
		}
		for sel, classes := range incoming.Elements {
			out.Elements[sel] = MergeClasses(out.Elements[sel], classes)
		}
	}
	return out
}

func typeName(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, int:
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
