package dot

import "testing"

func TestEscape(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain", "identifier", "identifier"},
		{"backslash", `a\b`, `a\\b`},
		{"quote", `say "hi"`, `say \"hi\"`},
		{"newline", "a\nb", `a\nb`},
		{"carriage return", "a\rb", `a\rb`},
		{"angle brackets", "<stdio.h>", `\<stdio.h\>`},
		{"curly braces", "{ }", `\{ \}`},
		{"vertical bar", "a|b", `a\|b`},
		{"crlf", "a\r\nb", `a\r\nb`},
		{"mixed", "\"{x}\"", `\"\{x\}\"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Escape(tt.input); got != tt.want {
				t.Errorf("Escape(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// A backslash followed by a quote must come out as an escaped backslash
// followed by an escaped quote, not a triple-escaped sequence. This only
// holds when backslashes are escaped before any rule that inserts one.
func TestEscapeOrdering(t *testing.T) {
	got := Escape(`\"`)
	want := `\\\"`
	if got != want {
		t.Errorf("Escape(`\\\"`) = %q, want %q", got, want)
	}

	// An existing backslash-n sequence in the source is two characters and
	// must not collapse into a single escaped newline.
	got = Escape(`\n`)
	want = `\\n`
	if got != want {
		t.Errorf("Escape(`\\n`) = %q, want %q", got, want)
	}
}
