package dialogue

import (
	"regexp"
	"strconv"
	"strings"
)

// suggestionHeadingRe matches the numbered bold headings produced by
// the recommendation formatter, so place names can be read back out of
// a reply regardless of which path generated it.
var suggestionHeadingRe = regexp.MustCompile(`(?m)^(\d+)\.\s+\*\*(.+?)\*\*`)

// ParseSuggestedPlaces extracts place names from a reply's numbered
// markdown headings, in listed order.
func ParseSuggestedPlaces(reply string) []string {
	matches := suggestionHeadingRe.FindAllStringSubmatch(reply, -1)
	if len(matches) == 0 {
		return nil
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSpace(m[2]))
	}
	return names
}

var ordinalWords = map[string]int{
	"primero": 0, "primera": 0, "primer": 0,
	"segundo": 1, "segunda": 1,
	"tercero": 2, "tercera": 2, "tercer": 2,
}

var ordinalDigitRe = regexp.MustCompile(`(?:^|\s)(?:el|la|del|de la|al|numero|número)?\s*([1-9])(?:\s|$|\?|\.|,)`)

// OrdinalReference resolves phrases like "el segundo" or "cuéntame más
// del 2" to a zero-based index into the last suggestion list. The
// second return is false when the message carries no ordinal.
func OrdinalReference(message string) (int, bool) {
	lowered := strings.ToLower(message)
	for word, idx := range ordinalWords {
		if containsWord(lowered, word) {
			return idx, true
		}
	}
	if m := ordinalDigitRe.FindStringSubmatch(lowered); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil && n >= 1 {
			return n - 1, true
		}
	}
	return 0, false
}

var photoWordsRe = regexp.MustCompile(`(?i)\b(fotos?|fotograf[ií]as?|im[aá]genes?)\b`)

// WantsPhotos reports whether the guest is asking to see pictures.
func WantsPhotos(message string) bool {
	return photoWordsRe.MatchString(message)
}

// NamedPlace finds which candidate place name the message mentions.
// The longest hit wins so "Museo de Antioquia" beats a bare "Museo".
func NamedPlace(message string, candidates []string) (string, bool) {
	lowered := strings.ToLower(message)
	best := ""
	for _, name := range candidates {
		if name == "" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(name)) && len(name) > len(best) {
			best = name
		}
	}
	return best, best != ""
}

// placeQueryRe captures the trailing place name of detail and photo
// requests ("más información del Pueblito Paisa", "fotos de Guatapé").
var placeQueryRe = regexp.MustCompile(`(?i)\b(?:m[aá]s\s+(?:informaci[oó]n|detalles)|cu[eé]ntame(?:\s+m[aá]s)?|h[aá]blame|fotos?|fotograf[ií]as?|im[aá]genes?)\s+(?:de|del|sobre)\s+(?:la\s+|el\s+|los\s+|las\s+)?(.+)$`)

// PlaceQuery extracts the place name a detail or photo request asks
// about, for resolution against the catalog.
func PlaceQuery(message string) (string, bool) {
	m := placeQueryRe.FindStringSubmatch(message)
	if m == nil {
		return "", false
	}
	query := strings.Trim(strings.TrimSpace(m[1]), "¿?¡!.,")
	if len([]rune(query)) < 3 {
		return "", false
	}
	return query, true
}

func containsWord(text, word string) bool {
	idx := strings.Index(text, word)
	for idx >= 0 {
		before := idx == 0 || !isLetter(text[idx-1])
		afterIdx := idx + len(word)
		after := afterIdx >= len(text) || !isLetter(text[afterIdx])
		if before && after {
			return true
		}
		next := strings.Index(text[idx+1:], word)
		if next < 0 {
			return false
		}
		idx += 1 + next
	}
	return false
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b >= 0x80
}
