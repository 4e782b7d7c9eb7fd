// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// selector.go parses element selector paths. The grammar is deliberately
// small:
//
//	selector = segment *( "." segment )
//	segment  = identifier [ "[" index "]" ]
//
// where identifier is [A-Za-z][A-Za-z0-9_]* and index is a non-negative
// decimal integer. Anything else — empty segments, negative indices,
// stray brackets — is rejected rather than trusted as an addressing scheme.
package styles

import (
	"fmt"
	"strconv"
	"strings"
)

// segment is one step of a selector path, optionally indexed.
type segment struct {
	name    string
	index   int
	indexed bool
}

// Selector is a parsed element selector path.
type Selector struct {
	raw      string
	segments []segment
}

// ParseSelector validates a raw selector path against the grammar.
func ParseSelector(raw string) (Selector, error) {
	if raw == "" {
		return Selector{}, fmt.Errorf("selector is empty")
	}

	var segs []segment
	for _, part := range strings.Split(raw, ".") {
		seg, err := parseSegment(part)
		if err != nil {
			return Selector{}, fmt.Errorf("selector %q: %w", raw, err)
		}
		segs = append(segs, seg)
	}
	return Selector{raw: raw, segments: segs}, nil
}

func parseSegment(part string) (segment, error) {
	if part == "" {
		return segment{}, fmt.Errorf("empty path segment")
	}

	name := part
	var seg segment
	if open := strings.IndexByte(part, '['); open != -1 {
		if !strings.HasSuffix(part, "]") {
			return segment{}, fmt.Errorf("segment %q has an unclosed index", part)
		}
		idxStr := part[open+1 : len(part)-1]
		if idxStr != "" {
			// "[]" is the wildcard form used by the vocabulary itself.
			idx, err := strconv.Atoi(idxStr)
			if err != nil || idx < 0 || (len(idxStr) > 1 && idxStr[0] == '0') {
				return segment{}, fmt.Errorf("segment %q has an invalid index", part)
			}
			seg.index = idx
		}
		name = part[:open]
		seg.indexed = true
	} else if strings.ContainsAny(part, "]") {
		return segment{}, fmt.Errorf("segment %q has a stray bracket", part)
	}

	if !validIdentifier(name) {
		return segment{}, fmt.Errorf("segment %q is not a valid identifier", part)
	}
	seg.name = name
	return seg, nil
}

func validIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r == '_' && i > 0, r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// String returns the selector exactly as written, indices included.
func (s Selector) String() string { return s.raw }

// Normalized returns the selector with every concrete index replaced by "[]",
// the form used by the per-type vocabulary ("features[2].title" →
// "features[].title").
func (s Selector) Normalized() string {
	var sb strings.Builder
	for i, seg := range s.segments {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(seg.name)
		if seg.indexed {
			sb.WriteString("[]")
		}
	}
	return sb.String()
}
