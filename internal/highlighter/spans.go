package highlighter

import (
	"sort"
	"strings"
	"unicode/utf8"
)

func plainSpans(text string) []Span {
	runeLen := utf8.RuneCountInString(text)
	if runeLen == 0 {
		return nil
	}
	return []Span{{Start: 0, End: runeLen, Cat: TokenPlain}}
}

func buildMergedSpans(text string, raw []rawSpan) []Span {
	runeLen := utf8.RuneCountInString(text)
	if runeLen == 0 {
		return nil
	}

	spans := make([]Span, 0, len(raw)+2)
	for _, rs := range raw {
		startRune := byteToRuneIndex(text, rs.Start)
		endRune := byteToRuneIndex(text, rs.End)
		if endRune <= startRune {
			continue
		}
		spans = append(spans, Span{Start: startRune, End: endRune, Cat: rs.Cat})
	}

	return normalizeSpans(spans, runeLen)
}

// normalizeSpans clips spans to [0, runeLen), orders them, resolves
// overlaps in favor of the span that starts first, fills gaps with
// plain spans, and merges adjacent same-category runs. The result
// covers every rune exactly once.
func normalizeSpans(spans []Span, runeLen int) []Span {
	if runeLen <= 0 {
		return nil
	}

	clean := make([]Span, 0, len(spans))
	for _, span := range spans {
		start := span.Start
		end := span.End
		if start < 0 {
			start = 0
		}
		if end > runeLen {
			end = runeLen
		}
		if end <= start {
			continue
		}
		clean = append(clean, Span{Start: start, End: end, Cat: span.Cat})
	}

	sort.SliceStable(clean, func(i, j int) bool {
		if clean[i].Start == clean[j].Start {
			return clean[i].End < clean[j].End
		}
		return clean[i].Start < clean[j].Start
	})

	out := make([]Span, 0, len(clean)+2)
	cursor := 0
	for _, span := range clean {
		start := span.Start
		end := span.End

		if start < cursor {
			start = cursor
		}
		if end <= start {
			continue
		}

		if start > cursor {
			out = appendMergedSpan(out, cursor, start, TokenPlain)
		}
		out = appendMergedSpan(out, start, end, span.Cat)

		cursor = end
	}

	if cursor < runeLen {
		out = appendMergedSpan(out, cursor, runeLen, TokenPlain)
	}

	return out
}

func appendMergedSpan(spans []Span, start int, end int, cat TokenCategory) []Span {
	if end <= start {
		return spans
	}

	if len(spans) > 0 {
		last := &spans[len(spans)-1]
		if last.End == start && last.Cat == cat {
			last.End = end
			return spans
		}
	}

	return append(spans, Span{Start: start, End: end, Cat: cat})
}

// SplitByLines rebases whole-buffer spans onto the buffer's lines.
// Element i holds line i's spans in line-local rune offsets, each
// line fully covered. The newline separators themselves carry no
// span.
func SplitByLines(text string, spans []Span) [][]Span {
	lines := strings.Split(text, "\n")
	out := make([][]Span, len(lines))

	offset := 0
	spanIdx := 0
	for i, line := range lines {
		lineLen := utf8.RuneCountInString(line)
		lo := offset
		hi := offset + lineLen

		var local []Span
		for j := spanIdx; j < len(spans); j++ {
			span := spans[j]
			if span.End <= lo {
				spanIdx = j + 1
				continue
			}
			if span.Start >= hi {
				break
			}
			start := max(span.Start, lo) - lo
			end := min(span.End, hi) - lo
			if end > start {
				local = append(local, Span{Start: start, End: end, Cat: span.Cat})
			}
		}

		out[i] = normalizeSpans(local, lineLen)
		offset = hi + 1
	}

	return out
}

func byteToRuneIndex(s string, b int) int {
	if b <= 0 {
		return 0
	}
	if b >= len(s) {
		return utf8.RuneCountInString(s)
	}
	return utf8.RuneCountInString(s[:b])
}
