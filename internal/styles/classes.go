// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// classes.go merges utility-class strings. Naive concatenation is not enough:
// when a template default and an override both set the same CSS property
// family (say text-xl vs text-6xl), the browser would resolve the clash by
// stylesheet order, not by our intent. MergeClasses drops the conflicting
// default so the override always wins.
package styles

import (
	"strings"

	"pagecraft/internal/models"
)

// MergeClasses combines a base utility-class string with an override string.
// Override classes replace base classes from the same property family;
// everything else is kept. Order: surviving base classes first, then
// overrides, duplicates removed.
func MergeClasses(base, override string) string {
	overrideTokens := strings.Fields(override)
	if len(overrideTokens) == 0 {
		return strings.Join(strings.Fields(base), " ")
	}

	taken := make(map[string]bool, len(overrideTokens))
	for _, c := range overrideTokens {
		taken[conflictKey(c)] = true
	}

	var out []string
	seen := make(map[string]bool)
	for _, c := range strings.Fields(base) {
		if taken[conflictKey(c)] || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	for _, c := range overrideTokens {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return strings.Join(out, " ")
}

// ApplyElement merges a template element's default classes with the override
// registered for selector, if any. Overrides addressed at selectors the
// renderer never asks about are inert by construction.
func ApplyElement(baseClasses, selector string, o *models.StyleOverrides) string {
	if o == nil || o.Elements == nil {
		return MergeClasses(baseClasses, "")
	}
	return MergeClasses(baseClasses, o.Elements[selector])
}

// ApplySection merges a template's section-container classes with the
// section-level override, if any.
func ApplySection(baseClasses string, o *models.StyleOverrides) string {
	if o == nil {
		return MergeClasses(baseClasses, "")
	}
	return MergeClasses(baseClasses, o.Section)
}

// --- conflict detection ---

// exactGroups resolves the ambiguous utility prefixes where a plain prefix
// match would lump unrelated properties together (text size vs text color vs
// text alignment; font weight vs font family).
var exactGroups = map[string]string{
	"text-xs": "font-size", "text-sm": "font-size", "text-base": "font-size",
	"text-lg": "font-size", "text-xl": "font-size", "text-2xl": "font-size",
	"text-3xl": "font-size", "text-4xl": "font-size", "text-5xl": "font-size",
	"text-6xl": "font-size", "text-7xl": "font-size", "text-8xl": "font-size",
	"text-9xl": "font-size",

	"text-left": "text-align", "text-center": "text-align",
	"text-right": "text-align", "text-justify": "text-align",

	"font-thin": "font-weight", "font-extralight": "font-weight",
	"font-light": "font-weight", "font-normal": "font-weight",
	"font-medium": "font-weight", "font-semibold": "font-weight",
	"font-bold": "font-weight", "font-extrabold": "font-weight",
	"font-black": "font-weight",

	"font-sans": "font-family", "font-serif": "font-family", "font-mono": "font-family",

	"italic": "font-style", "not-italic": "font-style",
	"underline": "text-decoration", "overline": "text-decoration",
	"line-through": "text-decoration", "no-underline": "text-decoration",
	"uppercase": "text-transform", "lowercase": "text-transform",
	"capitalize": "text-transform", "normal-case": "text-transform",

	"block": "display", "inline-block": "display", "inline": "display",
	"flex": "display", "inline-flex": "display", "grid": "display",
	"hidden": "display",

	"shadow": "shadow", "rounded": "rounded", "border": "border",
	"transition": "transition",
}

// groupRoots are prefixes that identify a property family when followed by a
// value segment. Longer roots are listed before shorter ones that share a
// prefix so the most specific family wins.
var groupRoots = []string{
	"space-x", "space-y", "grid-cols", "grid-rows", "max-w", "max-h",
	"min-w", "min-h", "rounded-t", "rounded-b", "rounded-l", "rounded-r",
	"border-t", "border-b", "border-l", "border-r",
	"px", "py", "pt", "pb", "pl", "pr", "p",
	"mx", "my", "mt", "mb", "ml", "mr", "m",
	"w", "h", "bg", "text", "font", "leading", "tracking", "gap",
	"items", "justify", "content", "self", "flex", "grid", "order",
	"rounded", "shadow", "border", "opacity", "z", "animate",
	"transition", "duration", "delay", "ease", "scale", "rotate",
	"translate-x", "translate-y", "ring", "outline", "decoration",
	"list", "object", "overflow", "aspect", "col-span", "row-span",
}

// conflictKey maps a utility class to its property-family key. Variant
// prefixes (hover:, md:, dark:, ...) are part of the key, so "hover:text-lg"
// only conflicts with other hover text sizes. Unknown classes key to
// themselves and never displace anything.
func conflictKey(class string) string {
	variant := ""
	if i := strings.LastIndexByte(class, ':'); i != -1 {
		variant = class[:i+1]
		class = class[i+1:]
	}

	if group, ok := exactGroups[class]; ok {
		return variant + group
	}

	for _, root := range groupRoots {
		if strings.HasPrefix(class, root+"-") {
			return variant + root
		}
	}
	return variant + class
}
