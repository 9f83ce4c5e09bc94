package services

import "strings"

// The two tokens substituted at generation time. Any other bracketed token
// in a template structure is an authoring-time default and passes through
// untouched.
const (
	TokenTopic   = "[TOPIC]"
	TokenSubject = "[SUBJECT]"
)

// Substitute replaces every occurrence of [TOPIC] and [SUBJECT] in the
// template structure with rawInput, verbatim and in that order. There is no
// escaping: a [SUBJECT] introduced by the [TOPIC] pass is still rewritten by
// the following pass.
func Substitute(structure, rawInput string) string {
	out := strings.ReplaceAll(structure, TokenTopic, rawInput)
	out = strings.ReplaceAll(out, TokenSubject, rawInput)
	return out
}
