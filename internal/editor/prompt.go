// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// prompt.go builds the instruction pairs sent to the completion service.
// Structural validation happens entirely on our side; prompts only cross the
// boundary once a request is classified and well-formed, and everything that
// comes back is re-validated before it is trusted.
package editor

import (
	"encoding/json"
	"fmt"
	"strings"

	"pagecraft/internal/models"
	"pagecraft/internal/schema"
	"pagecraft/internal/styles"
)

const styleEditSystemPrompt = `You are a design assistant for a landing page builder.
The user wants to change how a section LOOKS, not what it says.

Respond with ONLY a JSON object in exactly this shape:
{"explanation": "<one sentence describing the change>", "styleOverrides": {"section": "<optional utility classes for the section container>", "elements": {"<selector>": "<utility classes>"}}}

Rules:
- Use TailwindCSS utility classes only (e.g. "text-6xl font-black", "bg-slate-900").
- Element selectors MUST come from the allowed selector list supplied by the user.
- Every value in "elements" MUST be a string of space-separated classes. Never numbers, objects, or arrays.
- Omit "section" if the container itself does not change. Include at least one real change.
- NEVER change, add, or remove any text content.
- No markdown, no code fences, no commentary outside the JSON object.`

const contentEditSystemPrompt = `You are a copywriting assistant for a landing page builder.
The user wants to change what a section SAYS, not how it looks.

Respond with ONLY a JSON object in exactly this shape:
{"explanation": "<one sentence describing the change>", "updatedContent": {<the complete updated content object>}}

Rules:
- "updatedContent" must be the ENTIRE content object, conforming exactly to the schema supplied by the user. Keep every field you are not changing.
- Content is plain text only. Never embed HTML tags, markdown, or CSS classes in any text value — presentation is handled elsewhere.
- Respect every enum variant and array bound in the schema.
- No markdown, no code fences, no commentary outside the JSON object.`

const switchSystemPrompt = `You are a content-mapping assistant for a landing page builder.
A section is being switched to a template of a DIFFERENT section type, and its
content must be carried over into the destination shape.

Respond with ONLY a JSON object in exactly this shape:
{"mappedContent": {<content conforming to the destination schema>}, "notes": "<optional one sentence about what was kept or dropped>"}

Rules:
- "mappedContent" must conform exactly to the destination schema supplied by the user.
- Reuse the existing wording wherever it fits the new shape; invent as little as possible.
- Content is plain text only — no HTML, markdown, or CSS classes in text values.
- No markdown, no code fences, no commentary outside the JSON object.`

const generateSystemPrompt = `You are a landing page generator. From a business description, produce a
complete page as a sequence of typed sections.

Respond with ONLY a JSON object in exactly this shape:
{"title": "<short page title>", "sections": [{"type": "<section type>", "content": {<content conforming to that type's schema>}}]}

Rules:
- Choose 4 to 7 section types that fit the business. Start with "hero"; end with "cta" or "contact".
- Use each section type at most once.
- Every content object must conform exactly to its type's schema as supplied by the user.
- Content is plain text only — no HTML, markdown, or CSS classes in text values.
- Write specific, convincing copy grounded in the description; avoid filler like "Lorem ipsum".
- No markdown, no code fences, no commentary outside the JSON object.`

// buildStyleEditPrompt assembles the user prompt for a style edit: the
// section's selector vocabulary, its current override state, and the request.
func buildStyleEditPrompt(section *models.Section, comment string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Section type: %s\n\n", section.Type)

	sb.WriteString("Allowed element selectors (\"[]\" matches any index, e.g. \"features[2].title\"):\n")
	for _, sel := range styles.SelectorsFor(section.Type) {
		sb.WriteString("- " + sel + "\n")
	}

	sb.WriteString("\nCurrent style overrides:\n")
	sb.WriteString(marshalJSON(currentOverrides(section)))

	sb.WriteString("\n\nRequest: ")
	sb.WriteString(comment)
	return sb.String()
}

// buildContentEditPrompt assembles the user prompt for a content edit: the
// schema description, the current content, and the request.
func buildContentEditPrompt(section *models.Section, comment string) string {
	var sb strings.Builder
	sb.WriteString(schema.Describe(section.Type))
	sb.WriteString("\nCurrent content:\n")
	sb.WriteString(marshalJSON(section.Content))
	sb.WriteString("\n\nRequest: ")
	sb.WriteString(comment)
	return sb.String()
}

// buildSwitchPrompt assembles the user prompt for a cross-type template
// switch: the current content and the destination schema description.
func buildSwitchPrompt(section *models.Section, destType models.SectionType) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "The section is currently a %q section with this content:\n", section.Type)
	sb.WriteString(marshalJSON(section.Content))
	fmt.Fprintf(&sb, "\n\nIt is being switched to a %q section.\n\nDestination schema:\n", destType)
	sb.WriteString(schema.Describe(destType))
	return sb.String()
}

// buildGeneratePrompt assembles the user prompt for full-page generation:
// every section type's schema plus the business description.
func buildGeneratePrompt(description string) string {
	var sb strings.Builder
	sb.WriteString("Available section types and their schemas:\n\n")
	for _, t := range models.AllSectionTypes() {
		sb.WriteString(schema.Describe(t))
		sb.WriteString("\n")
	}
	sb.WriteString("Business description: ")
	sb.WriteString(description)
	return sb.String()
}

func currentOverrides(section *models.Section) any {
	if section.StyleOverrides.IsZero() {
		return map[string]any{}
	}
	return section.StyleOverrides
}

func marshalJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}
