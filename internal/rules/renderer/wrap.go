package renderer

import "unicode/utf8"

// wrapUserPrompt reframes short custom prompts as directives. Very short user
// text reads as noise to an instruction-following model unless framed as an
// imperative; mid-length text gets an enforcement suffix; anything 30 runes or
// longer passes through untouched.
func wrapUserPrompt(input string) string {
	n := utf8.RuneCountInString(input)
	if n < 10 {
		return "Instruction: " + input + ". (Strictly follow this during code generation)"
	}
	if n < 30 {
		return input + " (Important: strictly enforce this rule)"
	}
	return input
}
