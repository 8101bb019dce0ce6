package stores

import "testing"

func TestExcerpt(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		limit int
		want  string
	}{
		{
			name: "strips inline markup",
			body: "A *store* holds **shared** `state`.",
			want: "A store holds shared state.",
		},
		{
			name: "first paragraph only",
			body: "First line\ncontinues.\n\nSecond paragraph.",
			want: "First line continues.",
		},
		{
			name: "skips headings",
			body: "# Title\n\nBody text.",
			want: "Body text.",
		},
		{
			name: "link text",
			body: "See [the docs](https://example.com).",
			want: "See the docs.",
		},
		{
			name:  "truncates to limit",
			body:  "abcdefghij",
			limit: 5,
			want:  "abcd…",
		},
		{
			name: "list first keeps items apart",
			body: "- one\n- two\n\nSecond paragraph here.",
			want: "one two",
		},
		{
			name: "loose list",
			body: "1. first\n\n2. second\n\nAfter.",
			want: "first second",
		},
		{
			name: "skips leading code block",
			body: "```go\nfmt.Println()\n```\n\nProse after code.",
			want: "Prose after code.",
		},
		{
			name: "skips indented code block",
			body: "    x := 1\n\nProse.",
			want: "Prose.",
		},
		{
			name: "heading then code then prose",
			body: "# Title\n\n```\ncode\n```\n\nFinally prose.",
			want: "Finally prose.",
		},
		{
			name: "heading only",
			body: "# Just a title",
			want: "",
		},
		{
			name: "block quote first",
			body: "> quoted\n> text\n\nAfter.",
			want: "quoted text",
		},
		{
			name: "empty",
			body: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Excerpt(tt.body, tt.limit); got != tt.want {
				t.Errorf("Excerpt(%q, %d) = %q, want %q", tt.body, tt.limit, got, tt.want)
			}
		})
	}
}
