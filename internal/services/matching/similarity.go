package matching

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// shortLevThreshold bounds the strings worth running Levenshtein on. Token
// overlap alone misses typos, but edit distance on long statement histories
// is noise.
const shortLevThreshold = 16

var diacriticsFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize uppercases, folds diacritics, strips punctuation and collapses
// whitespace, so "Pagto. Condomínio" and "PAGTO CONDOMINIO" compare equal.
func Normalize(s string) string {
	folded, _, err := transform.String(diacriticsFolder, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToUpper(r))
		default:
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// Similarity scores how alike two free-text descriptions are, in [0,1].
// Token-set containment handles the common case of a payer name embedded in
// a longer statement history; Levenshtein backs it up when both strings are
// short enough for edit distance to mean anything.
func Similarity(a, b string) float64 {
	na, nb := Normalize(a), Normalize(b)
	if na == "" || nb == "" {
		return 0
	}
	if na == nb {
		return 1
	}

	score := tokenOverlap(na, nb)

	if len(na) <= shortLevThreshold && len(nb) <= shortLevThreshold {
		if lev := levenshteinRatio(na, nb); lev > score {
			score = lev
		}
	}

	return score
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, token := range strings.Fields(s) {
		set[token] = struct{}{}
	}

	return set
}

// tokenOverlap is the overlap coefficient of the two token sets: shared
// tokens over the smaller set, so full containment scores 1.
func tokenOverlap(a, b string) float64 {
	setA, setB := tokenSet(a), tokenSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	common := 0
	for token := range setA {
		if _, ok := setB[token]; ok {
			common++
		}
	}

	smaller := len(setA)
	if len(setB) < smaller {
		smaller = len(setB)
	}

	return float64(common) / float64(smaller)
}

// levenshteinRatio is 1 minus the edit distance normalized by the longer
// string length.
func levenshteinRatio(a, b string) float64 {
	runesA, runesB := []rune(a), []rune(b)

	longer := len(runesA)
	if len(runesB) > longer {
		longer = len(runesB)
	}
	if longer == 0 {
		return 1
	}

	return 1 - float64(levenshtein(runesA, runesB))/float64(longer)
}

func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	previous := make([]int, len(b)+1)
	current := make([]int, len(b)+1)
	for j := range previous {
		previous[j] = j
	}

	for i := 1; i <= len(a); i++ {
		current[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			current[j] = minInt(previous[j]+1, current[j-1]+1, previous[j-1]+cost)
		}
		previous, current = current, previous
	}

	return previous[len(b)]
}

func minInt(values ...int) int {
	result := values[0]
	for _, v := range values[1:] {
		if v < result {
			result = v
		}
	}

	return result
}
