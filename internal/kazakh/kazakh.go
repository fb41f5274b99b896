package kazakh

import "strings"

// Letters that only appear in Kazakh (or Cyrillic) text. The lowercase set
// covers the Kazakh-specific letters; the uppercase set covers the full
// alphabet as it shows up in generated lesson content.
const kazakhLetters = "әіңғүұқөһАӘБВГДЕЖЗИЙКЛМНОӨПРСТУҰҚФХҺЦЧШЩЫЭЮЯ"

// ContainsKazakh reports whether any rune of s belongs to the Kazakh
// alphabet. Empty input is not Kazakh.
func ContainsKazakh(s string) bool {
	return strings.ContainsAny(s, kazakhLetters)
}
