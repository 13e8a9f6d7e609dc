package matching

import "github.com/example/husnabot/pkg/models"

// confusableShortNames holds canonical forms of short names that are close
// to one another in edit distance but must never be collapsed together
// ("Ali" is not "Wali", "Hakim" is not "Hakam").
var confusableShortNames = map[string]bool{
	"ali":   true,
	"wali":  true,
	"alim":  true,
	"azim":  true,
	"halim": true,
	"hakim": true,
	"hakam": true,
	"malik": true,
	"salam": true,
	"mumin": true,
}

// Matches reports whether a free-text answer counts as a recall of the name.
// The input is compared against the canonical transliteration and every
// alias after normalization: exact canonical matches are accepted outright,
// everything else goes through guarded edit-distance comparison. The
// function is pure and never fails; an unmatched reasonable answer is an
// accepted false negative.
func Matches(input string, name models.Name) bool {
	in := Normalize(input)
	if in == "" {
		return false
	}

	candidates := make([]string, 0, len(name.Aliases)+1)
	for _, raw := range name.Candidates() {
		c := Normalize(raw)
		if c == "" {
			continue
		}
		if in == c {
			return true
		}
		candidates = append(candidates, c)
	}

	// Short tokens are too ambiguous for fuzzy comparison.
	if len(in) <= 3 {
		return false
	}

	for _, c := range candidates {
		if fuzzyMatch(in, c) {
			return true
		}
	}
	return false
}

// fuzzyMatch applies the edit-distance rules for one candidate.
func fuzzyMatch(in, cand string) bool {
	dist := levenshtein(in, cand)

	// Two known-confusable short names stay distinct at near-equal length
	// even when the edit distance is 1; only a clear elongation (pure
	// insertions, more than one letter longer) is accepted.
	if confusableShortNames[in] && confusableShortNames[cand] {
		diff := len(in) - len(cand)
		return diff > 1 && dist == diff
	}

	// Strict mode for short inputs: a distance-1 match must be a
	// plausible elongation of the candidate.
	if len(in) <= 5 || confusableShortNames[in] {
		return dist == 1 && len(in) == len(cand)+1
	}

	return dist <= 1
}

// levenshtein computes the classic edit distance with unit insert, delete
// and substitute costs, using two rolling rows.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
