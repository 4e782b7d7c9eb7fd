// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package editor

import "strings"

// EditKind is the routing decision for a free-text edit request: change the
// words (content) or change the look (style).
type EditKind string

const (
	EditStyle   EditKind = "style"
	EditContent EditKind = "content"
)

// styleKeywords is the presentation vocabulary that routes a comment to the
// style pipeline. This is a best-effort heuristic: "make it shorter" is
// content, "make it smaller" is style, and "make it punchier" is genuinely
// ambiguous. Misclassification is a recoverable UX issue — the edit API
// accepts an explicit kind so the user can say "no, I meant the other one".
var styleKeywords = []string{
	// size
	"size", "bigger", "big", "larger", "large", "smaller", "small",
	"huge", "tiny", "wider", "narrower", "taller",
	// weight / typography
	"bold", "bolder", "weight", "thin", "thinner", "heavier",
	"font", "italic", "underline", "typeface",
	// spacing
	"spacing", "padding", "margin", "gap", "tighter", "looser",
	"compact", "breathing room",
	// color
	"color", "colour", "darker", "lighter", "brighter", "background",
	"shade", "tint", "hue", "transparent",
	// alignment
	"align", "aligned", "alignment", "center", "centered", "centre",
	// border / shape
	"border", "rounded", "corners", "outline",
	// effects
	"shadow", "animation", "animate", "animated", "transition",
	"hover", "glow", "blur",
}

// Classify decides whether a free-text comment is a style edit or a content
// edit. Any presentation keyword routes to style; everything else defaults to
// content.
func Classify(comment string) EditKind {
	c := strings.ToLower(comment)

	words := make(map[string]bool)
	for _, w := range strings.FieldsFunc(c, func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9')
	}) {
		words[w] = true
	}

	for _, kw := range styleKeywords {
		if strings.ContainsRune(kw, ' ') {
			if strings.Contains(c, kw) {
				return EditStyle
			}
			continue
		}
		if words[kw] {
			return EditStyle
		}
	}
	return EditContent
}
