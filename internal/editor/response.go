// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// response.go extracts structured data from raw LLM output. Model responses
// are untrusted text: they may wrap the JSON in markdown code fences, prefix
// it with prose ("Here is the updated content:"), or append commentary after
// the closing brace. We locate the first balanced top-level JSON object and
// parse only that.
package editor

import (
	"encoding/json"
	"strings"
)

// extractJSONObject finds and parses the first top-level JSON object in raw.
// Returns a *ResponseParseError when no candidate parses.
func extractJSONObject(raw string) (map[string]any, error) {
	text := stripCodeFences(raw)

	for start := strings.IndexByte(text, '{'); start != -1; {
		end := matchBrace(text, start)
		if end != -1 {
			var obj map[string]any
			if err := json.Unmarshal([]byte(text[start:end+1]), &obj); err == nil {
				return obj, nil
			}
		}
		next := strings.IndexByte(text[start+1:], '{')
		if next == -1 {
			break
		}
		start += 1 + next
	}

	detail := strings.TrimSpace(raw)
	if len(detail) > 120 {
		detail = detail[:120] + "..."
	}
	return nil, &ResponseParseError{Detail: detail}
}

// stripCodeFences removes a surrounding markdown code fence, if present
// (```json ... ``` or plain ```).
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if nl := strings.IndexByte(s, '\n'); nl != -1 {
		s = s[nl+1:]
	}
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}

// matchBrace returns the index of the brace closing the object opened at
// start, or -1 if the text ends first. String literals and escapes are
// honored so braces inside values do not confuse the scan.
func matchBrace(s string, start int) int {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// stringField reads an optional string field from a decoded JSON object,
// returning "" when absent or not a string.
func stringField(obj map[string]any, key string) string {
	if v, ok := obj[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}
