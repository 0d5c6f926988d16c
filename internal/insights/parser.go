package insights

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lakshcode9/tweetsight/internal/domain"
)

// itemRe matches a line starting with an enumeration marker: an optional
// bullet or bold wrapper, a numeral, and a separator ("1.", "2)", "3:", "1 -").
var itemRe = regexp.MustCompile(`^\s*(?:[-*]\s+)?(?:\*\*)?\s*\d+\s*[.):\-]\s*(.*)$`)

// markupRe strips markdown emphasis and code wrappers from an extracted item.
var markupRe = regexp.MustCompile("[*_`]+")

// Parse extracts up to three numbered insights from free-form model output,
// in document order. Lines without a marker continue the preceding item so
// wrapped output survives intact; a blank line ends the item.
//
// Fewer than three extracted items pad the set with domain.InsightSentinel.
// A response with no extractable item at all is domain.ErrParse.
func Parse(text string) (domain.InsightSet, error) {
	if strings.TrimSpace(text) == "" {
		return domain.InsightSet{}, fmt.Errorf("empty response: %w", domain.ErrParse)
	}

	var items []string
	cur := -1

	for _, line := range strings.Split(text, "\n") {
		if m := itemRe.FindStringSubmatch(line); m != nil {
			if len(items) == domain.InsightCount {
				break
			}
			items = append(items, strings.TrimSpace(m[1]))
			cur = len(items) - 1
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			cur = -1
			continue
		}
		if cur >= 0 {
			items[cur] += " " + trimmed
		}
	}

	cleaned := make([]string, 0, len(items))
	for _, item := range items {
		if c := cleanItem(item); c != "" {
			cleaned = append(cleaned, c)
		}
	}

	if len(cleaned) == 0 {
		return domain.InsightSet{}, fmt.Errorf("no numbered insights in response: %w", domain.ErrParse)
	}
	return domain.NewInsightSet(cleaned), nil
}

// cleanItem removes markup wrappers and collapses internal whitespace.
func cleanItem(s string) string {
	s = markupRe.ReplaceAllString(s, "")
	return strings.Join(strings.Fields(s), " ")
}
