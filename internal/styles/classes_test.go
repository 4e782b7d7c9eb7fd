package styles

import (
	"testing"

	"pagecraft/internal/models"
)

func TestMergeClasses(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		override string
		want     string
	}{
		{
			name:     "empty override keeps base",
			base:     "text-xl font-bold",
			override: "",
			want:     "text-xl font-bold",
		},
		{
			name:     "empty base keeps override",
			base:     "",
			override: "text-6xl",
			want:     "text-6xl",
		},
		{
			name:     "font size conflict",
			base:     "text-xl font-bold text-gray-900",
			override: "text-6xl",
			want:     "font-bold text-gray-900 text-6xl",
		},
		{
			name:     "text color does not displace size",
			base:     "text-xl",
			override: "text-red-500",
			want:     "text-xl text-red-500",
		},
		{
			name:     "font weight vs family",
			base:     "font-bold font-sans",
			override: "font-light",
			want:     "font-sans font-light",
		},
		{
			name:     "padding axis conflict",
			base:     "px-4 py-2",
			override: "px-8",
			want:     "py-2 px-8",
		},
		{
			name:     "variant prefix isolates conflicts",
			base:     "text-lg hover:text-xl",
			override: "hover:text-3xl",
			want:     "text-lg hover:text-3xl",
		},
		{
			name:     "alignment conflict",
			base:     "text-center text-sm",
			override: "text-left",
			want:     "text-sm text-left",
		},
		{
			name:     "bare border conflicts with width",
			base:     "border rounded-lg",
			override: "border-2",
			want:     "rounded-lg border-2",
		},
		{
			name:     "duplicates collapse",
			base:     "flex flex gap-4",
			override: "gap-4",
			want:     "flex gap-4",
		},
		{
			name:     "unknown classes never displace",
			base:     "prose custom-widget",
			override: "another-widget",
			want:     "prose custom-widget another-widget",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MergeClasses(tt.base, tt.override); got != tt.want {
				t.Errorf("MergeClasses(%q, %q) = %q, want %q", tt.base, tt.override, got, tt.want)
			}
		})
	}
}

// Merging is associative when the operands touch disjoint property families:
// a chain of patches lands on the same classes no matter how the
// intermediate merges were grouped.
func TestMergeClassesAssociative(t *testing.T) {
	a := "font-bold px-4"
	b := "text-5xl"
	c := "uppercase bg-slate-900"

	left := MergeClasses(MergeClasses(a, b), c)
	right := MergeClasses(a, MergeClasses(b, c))
	if left != right {
		t.Errorf("grouping changed the result: %q vs %q", left, right)
	}
	if left != "font-bold px-4 text-5xl uppercase bg-slate-900" {
		t.Errorf("merged classes = %q", left)
	}
}

func TestApplyElement(t *testing.T) {
	overrides := &models.StyleOverrides{
		Elements: map[string]string{"headline": "text-6xl"},
	}

	if got := ApplyElement("text-4xl font-bold", "headline", overrides); got != "font-bold text-6xl" {
		t.Errorf("override not applied: %q", got)
	}
	if got := ApplyElement("text-4xl font-bold", "subheadline", overrides); got != "text-4xl font-bold" {
		t.Errorf("unaddressed element changed: %q", got)
	}
	if got := ApplyElement("text-4xl", "headline", nil); got != "text-4xl" {
		t.Errorf("nil overrides changed classes: %q", got)
	}
}

func TestApplySection(t *testing.T) {
	overrides := &models.StyleOverrides{Section: "bg-slate-900 py-24"}

	if got := ApplySection("bg-white py-16", overrides); got != "bg-slate-900 py-24" {
		t.Errorf("section override not applied: %q", got)
	}
	if got := ApplySection("bg-white py-16", nil); got != "bg-white py-16" {
		t.Errorf("nil overrides changed classes: %q", got)
	}
}
