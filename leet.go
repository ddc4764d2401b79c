package passcheck

import "strings"

// leetMap maps leet-speak characters to the letters they usually stand for.
// Some characters are ambiguous and map to several letters.
var leetMap = map[rune][]rune{
	'@': {'a'},
	'4': {'a'},
	'8': {'b'},
	'(': {'c'},
	'{': {'c'},
	'3': {'e'},
	'6': {'g'},
	'#': {'h'},
	'!': {'i'},
	'1': {'i', 'l'},
	'|': {'i', 'l'},
	'0': {'o'},
	'9': {'g', 'q'},
	'5': {'s'},
	'$': {'s'},
	'7': {'t'},
	'+': {'t'},
	'2': {'z'},
	'%': {'x'},
}

// maxLeetAmbiguities bounds how many ambiguous positions are expanded.
const maxLeetAmbiguities = 2

// leetNormalize replaces every leet character with its first mapping.
func leetNormalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if replacements, ok := leetMap[r]; ok {
			b.WriteRune(replacements[0])
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// leetVariants returns the normalised forms of s, expanding the first
// maxLeetAmbiguities ambiguous characters into every option. The primary
// normalisation comes first and the order is stable. Forms equal to s
// itself are omitted.
func leetVariants(s string) []string {
	runes := []rune(s)
	base := []rune(leetNormalize(s))

	var ambiguous []int
	for i, r := range runes {
		if replacements, ok := leetMap[r]; ok && len(replacements) > 1 {
			ambiguous = append(ambiguous, i)
			if len(ambiguous) == maxLeetAmbiguities {
				break
			}
		}
	}

	seen := map[string]bool{s: true}
	var out []string
	var expand func(k int)
	expand = func(k int) {
		if k == len(ambiguous) {
			v := string(base)
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
			return
		}
		pos := ambiguous[k]
		for _, opt := range leetMap[runes[pos]] {
			base[pos] = opt
			expand(k + 1)
		}
	}
	expand(0)

	return out
}

// isLeetCommon reports whether a leet-speak reading of password is in d.
func isLeetCommon(password string, d *Dictionary) bool {
	for _, v := range leetVariants(strings.ToLower(password)) {
		if d.Contains(v) {
			return true
		}
	}
	return false
}
