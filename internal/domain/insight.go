package domain

// InsightCount is the fixed number of insights rendered per analysis.
const InsightCount = 3

// InsightSentinel fills insight slots the generator could not produce, keeping
// the rendered output fixed-length.
const InsightSentinel = "(insufficient insights generated)"

// InsightSet is the ordered, fixed-size set of insights produced for one
// analysis. Slots beyond what the generator yielded hold InsightSentinel.
type InsightSet [InsightCount]string

// NewInsightSet builds an InsightSet from up to InsightCount items, padding
// the remainder with InsightSentinel.
func NewInsightSet(items []string) InsightSet {
	var set InsightSet
	for i := range set {
		if i < len(items) {
			set[i] = items[i]
		} else {
			set[i] = InsightSentinel
		}
	}
	return set
}

// Padded reports how many slots hold the sentinel rather than a generated
// insight.
func (s InsightSet) Padded() int {
	n := 0
	for _, item := range s {
		if item == InsightSentinel {
			n++
		}
	}
	return n
}
