package extract

import "regexp"

// emailRe matches local-part@domain where both sides are word characters,
// dots, or hyphens. Deliberately loose: the address is a contact hint, not a
// validated identity.
var emailRe = regexp.MustCompile(`[\w.-]+@[\w.-]+`)

// FindEmail returns the first email address found in text, or the empty
// string when none exists. Absence is a valid outcome, not an error; the
// caller decides whether a missing address is fatal.
func FindEmail(text string) string {
	return emailRe.FindString(text)
}
