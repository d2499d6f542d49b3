// Package textnorm canonicalizes free-text company names before they are used as query terms.
package textnorm

import "golang.org/x/text/unicode/norm"

// Normalize applies Unicode compatibility composition (NFKC), folding full-width
// letters, digits and punctuation into their half-width forms.
func Normalize(text string) string {
	return norm.NFKC.String(text)
}
