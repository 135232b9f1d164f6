package dot

import "strings"

// Escape rewrites text for safe inclusion inside a double-quoted DOT label.
//
// The substitution order is a correctness invariant: backslashes must be
// doubled first, because every later rule inserts a backslash that must not
// be escaped again.
func Escape(text string) string {
	text = strings.ReplaceAll(text, `\`, `\\`)
	text = strings.ReplaceAll(text, `"`, `\"`)
	text = strings.ReplaceAll(text, "\n", `\n`)
	text = strings.ReplaceAll(text, "\r", `\r`)
	text = strings.ReplaceAll(text, "<", `\<`)
	text = strings.ReplaceAll(text, ">", `\>`)
	text = strings.ReplaceAll(text, "{", `\{`)
	text = strings.ReplaceAll(text, "}", `\}`)
	text = strings.ReplaceAll(text, "|", `\|`)
	return text
}
