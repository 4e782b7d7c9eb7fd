// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package editor

import (
	"fmt"

	"pagecraft/internal/models"
)

// UnknownTemplateError reports a template id that is not in the registry.
type UnknownTemplateError struct {
	TemplateID string
}

func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("template %q is not registered", e.TemplateID)
}

// TemplateTypeMismatchError reports a template whose declared section type
// does not match the section it was asked to render.
type TemplateTypeMismatchError struct {
	TemplateID   string
	TemplateType models.SectionType
	SectionType  models.SectionType
}

func (e *TemplateTypeMismatchError) Error() string {
	return fmt.Sprintf("template %q renders %q sections, not %q",
		e.TemplateID, e.TemplateType, e.SectionType)
}

// ResponseParseError means the model's raw text contained no extractable JSON
// object. Recoverable: the user should retry with more specific details.
type ResponseParseError struct {
	Detail string
}

func (e *ResponseParseError) Error() string {
	return "ai response contains no valid JSON object: " + e.Detail
}

// ResponseSemanticError means the model's JSON parsed but had the wrong shape
// (missing required fields, values of the wrong type). Kept distinct from
// ResponseParseError so the UI can tell "didn't understand" apart from
// "answered the wrong shape".
type ResponseSemanticError struct {
	Detail string
}

func (e *ResponseSemanticError) Error() string {
	return "ai response has the wrong shape: " + e.Detail
}

// ProviderError wraps a failure of the completion service itself (HTTP error,
// timeout). Not locally recoverable; callers decide whether to retry.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string {
	return "ai provider failed: " + e.Err.Error()
}

func (e *ProviderError) Unwrap() error { return e.Err }
