package analyzer

import (
	"regexp"
	"strings"

	"labelscan/internal/domain"
	"labelscan/internal/refdata"
)

var (
	labelPrefix = regexp.MustCompile(`(?i)^\s*ingredients?\s*[:\-]\s*`)
	wordAnd     = regexp.MustCompile(`\b(?i:and)\b`)
	subSplit    = regexp.MustCompile(`[,;\n&]|\b(?i:and)\b`)
	parenthetic = regexp.MustCompile(`\(([^)]*)\)`)
	numericOnly = regexp.MustCompile(`^[\d\s.%]+$`)
)

// Normalize splits raw label text into an ordered sequence of canonical
// ingredient tokens. It strips a leading "Ingredients:" label, splits on
// commas, semicolons, newlines, ampersands, and the word "and", flattens
// parenthetical sub-lists into child tokens tagged with their parent, and
// drops empty or purely numeric fragments. Duplicate canonical names keep
// only their first occurrence. Identical input always yields identical
// output.
func Normalize(raw string) []domain.IngredientToken {
	text := labelPrefix.ReplaceAllString(raw, "")

	seen := make(map[string]bool)
	var tokens []domain.IngredientToken

	add := func(fragment, parent string) string {
		trimmed := strings.Trim(fragment, " \t\r\n.:*-")
		canonical := refdata.Canonicalize(trimmed)
		if canonical == "" || numericOnly.MatchString(canonical) {
			return ""
		}
		if seen[canonical] {
			return canonical
		}
		seen[canonical] = true
		tokens = append(tokens, domain.IngredientToken{
			Raw:       strings.TrimSpace(fragment),
			Canonical: canonical,
			Position:  len(tokens),
			Parent:    parent,
		})
		return canonical
	}

	for _, item := range splitItems(text) {
		inner := parenthetic.FindAllStringSubmatch(item, -1)
		outer := parenthetic.ReplaceAllString(item, " ")

		parent := ""
		for _, piece := range wordAnd.Split(outer, -1) {
			if p := add(piece, ""); parent == "" {
				parent = p
			}
		}
		for _, group := range inner {
			for _, child := range subSplit.Split(group[1], -1) {
				add(child, parent)
			}
		}
	}
	return tokens
}

// splitItems splits label text on list separators, keeping parenthetical
// sub-lists attached to the item that opened them.
func splitItems(text string) []string {
	var items []string
	var cur strings.Builder
	depth := 0
	for _, r := range text {
		switch r {
		case '(':
			depth++
			cur.WriteRune(r)
		case ')':
			if depth > 0 {
				depth--
			}
			cur.WriteRune(r)
		case ',', ';', '\n', '&':
			if depth == 0 {
				items = append(items, cur.String())
				cur.Reset()
			} else {
				cur.WriteRune(r)
			}
		default:
			cur.WriteRune(r)
		}
	}
	items = append(items, cur.String())
	return items
}
