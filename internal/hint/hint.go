// Package hint computes the partially revealed display form of a term.
// The reveal budget is the mistake count of the current question: letters
// whose position among letters only is below the budget are shown, the rest
// are masked. Non-letter characters are always shown as scaffolding.
package hint

const placeholder = '_'

// Mask returns the masked form of term for the given mistake count
func Mask(term string, mistakes int) string {
	symbols := 0
	out := make([]rune, 0, len(term))
	for i, c := range []rune(term) {
		if !isASCIILetter(c) {
			symbols++
			out = append(out, c)
		} else if i-symbols < mistakes {
			out = append(out, c)
		} else {
			out = append(out, placeholder)
		}
	}
	return string(out)
}

// Suffix returns the masked form of term with the runes the user has already
// typed skipped, so only the remaining portion is suggested inline.
func Suffix(term, typed string, mistakes int) string {
	masked := []rune(Mask(term, mistakes))
	skip := len([]rune(typed))
	if skip >= len(masked) {
		return ""
	}
	return string(masked[skip:])
}

func isASCIILetter(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
