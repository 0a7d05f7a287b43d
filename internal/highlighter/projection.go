package highlighter

import "strings"

// ProjectToDisplay maps spans computed for a source line onto its
// display form, where tabs have been expanded to four spaces and the
// line may have been truncated with a trailing ellipsis. Reports
// false when displayLine is not a prefix of the normalized source
// line, in which case the caller should fall back to plain rendering.
func ProjectToDisplay(baseSpans []Span, sourceLine string, displayLine string) ([]Span, bool) {
	if displayLine == "" {
		return nil, true
	}

	displayRunes := []rune(displayLine)
	if len(displayRunes) == 0 {
		return nil, true
	}

	normalizedSource, normalizedToSource := normalizeLineForDisplayRunes(sourceLine)

	prefixLen := len(displayRunes)
	hasEllipsis := false
	if len(displayRunes) >= 3 && strings.HasSuffix(displayLine, "...") {
		hasEllipsis = true
		prefixLen = len(displayRunes) - 3
	}

	if prefixLen > len(normalizedSource) {
		return nil, false
	}
	if !runesEqual(displayRunes[:prefixLen], normalizedSource[:prefixLen]) {
		return nil, false
	}

	projected := make([]Span, 0, len(baseSpans)+2)
	spanIdx := 0
	for i := 0; i < prefixLen; i++ {
		srcIdx := normalizedToSource[i]
		cat := TokenPlain
		for spanIdx < len(baseSpans) && srcIdx >= baseSpans[spanIdx].End {
			spanIdx++
		}
		if spanIdx < len(baseSpans) {
			span := baseSpans[spanIdx]
			if srcIdx >= span.Start && srcIdx < span.End {
				cat = span.Cat
			}
		}
		projected = appendMergedSpan(projected, i, i+1, cat)
	}

	if hasEllipsis {
		projected = appendMergedSpan(projected, prefixLen, len(displayRunes), TokenPlain)
	}

	return normalizeSpans(projected, len(displayRunes)), true
}

func normalizeLineForDisplayRunes(line string) ([]rune, []int) {
	source := []rune(line)
	out := make([]rune, 0, len(source))
	indexMap := make([]int, 0, len(source))

	for i, r := range source {
		switch r {
		case '\r':
			continue
		case '\n':
			out = append(out, ' ')
			indexMap = append(indexMap, i)
		case '\t':
			for j := 0; j < 4; j++ {
				out = append(out, ' ')
				indexMap = append(indexMap, i)
			}
		default:
			out = append(out, r)
			indexMap = append(indexMap, i)
		}
	}

	return out, indexMap
}

func runesEqual(a []rune, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
