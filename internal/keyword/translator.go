package keyword

import "strings"

// maxTerms caps the number of search terms kept per caption. Terms
// discovered first are kept, later ones are dropped.
const maxTerms = 4

// Set is an ordered list of English search terms derived from a caption.
// It is never empty for non-empty input.
type Set []string

// Query joins the terms into a single search query string.
func (s Set) Query() string {
	return strings.Join(s, " ")
}

// Heuristic marker sets applied, in priority order, when no dictionary
// entry matches any token of the caption.
var (
	saleMarkers    = []string{"%", "％", "원", "저렴", "싸게"}
	foodMarkers    = []string{"먹", "요리", "맛", "메뉴"}
	noveltyMarkers = []string{"새", "신", "첫", "런칭", "출시"}
)

// genericFallback is returned when neither the dictionary nor the
// heuristics produce a term.
var genericFallback = Set{"promotion", "marketing", "business"}

// Translate maps Korean promotional text to English search terms. Each
// whitespace token is tried against the dictionary: exact match first,
// then a substring scan where the first matching entry by dictionary
// order wins. If nothing matches, category heuristics and finally a
// generic fallback guarantee a non-empty result.
func Translate(text string) Set {
	var terms []string

	for _, token := range strings.Fields(text) {
		if en, ok := exactIndex[token]; ok {
			terms = appendTerms(terms, en)
			continue
		}

		for _, e := range dictionary {
			if strings.Contains(token, e.ko) {
				terms = appendTerms(terms, e.en)
				break
			}
		}

		if len(terms) >= maxTerms {
			break
		}
	}

	if len(terms) > 0 {
		if len(terms) > maxTerms {
			terms = terms[:maxTerms]
		}
		return Set(terms)
	}

	return heuristicTerms(text)
}

// appendTerms splits a dictionary value into its individual terms and
// appends them, respecting the overall cap.
func appendTerms(terms []string, en string) []string {
	for _, t := range strings.Fields(en) {
		if len(terms) >= maxTerms {
			break
		}
		terms = append(terms, t)
	}
	return terms
}

// heuristicTerms classifies a caption with no dictionary hits into a
// coarse category. Priority order is fixed: sale markers beat food
// markers beat novelty markers.
func heuristicTerms(text string) Set {
	if containsAny(text, saleMarkers) {
		return Set{"sale", "promotion"}
	}
	if containsAny(text, foodMarkers) {
		return Set{"food"}
	}
	if containsAny(text, noveltyMarkers) {
		return Set{"new", "product"}
	}
	return genericFallback
}

func containsAny(text string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}
